package core

// Symbol is a dynamically resolved extension entry point. Callers assert
// it to the function type they expect, the way plugin.Lookup symbols are
// used.
type Symbol any

// Resolver looks up optional extension entry points by name against a
// live instance. Extension commands are not part of the core API and may
// be absent at runtime.
type Resolver interface {
	// Lookup resolves the named entry point. It returns an error
	// matching ErrExtensionUnavailable when the entry point is not
	// present on the host.
	Lookup(name string) (Symbol, error)
}

// Opaque backend object references. The Vulkan backend stores API
// handles in these, test backends store whatever suits them.
type (
	// InstanceHandle references the top level API context.
	InstanceHandle any

	// PhysicalHandle references driver owned physical device state.
	PhysicalHandle any

	// DeviceHandle references a logical device.
	DeviceHandle any

	// QueueHandle references a work submission queue. It is valid
	// only while the device it came from lives.
	QueueHandle any

	// DiagnosticHandle references an installed debug report callback.
	DiagnosticHandle any
)

// Backend abstracts the graphics API entry points needed to negotiate a
// device. The negotiation logic depends only on this interface, never on
// the raw bindings, so it can be exercised against a scripted backend.
type Backend interface {
	// AvailableLayers returns the names of layers installed on the
	// host.
	AvailableLayers() ([]string, error)

	// AvailableExtensions returns the names of instance extensions
	// supported by the host.
	AvailableExtensions() ([]string, error)

	// CreateInstance creates the top level API context with the given
	// extensions and layers enabled.
	CreateInstance(appName string, extensions, layers []string) (InstanceHandle, error)

	// DestroyInstance destroys a context created by CreateInstance.
	// Every dependent handle must be destroyed first.
	DestroyInstance(InstanceHandle)

	// PhysicalDevices lists candidate devices exposed by the context,
	// in enumeration order.
	PhysicalDevices(InstanceHandle) ([]PhysicalDevice, error)

	// CreateDevice creates a logical device bound to one queue family,
	// requesting a single queue at the given priority.
	CreateDevice(physical PhysicalHandle, familyIndex int, priority float32, layers []string) (DeviceHandle, error)

	// DestroyDevice destroys a device created by CreateDevice.
	DestroyDevice(DeviceHandle)

	// DeviceQueue retrieves a queue handle from a created device.
	DeviceQueue(handle DeviceHandle, familyIndex, queueIndex int) QueueHandle

	// Resolver returns an entry point resolver bound to the context.
	Resolver(InstanceHandle) Resolver
}
