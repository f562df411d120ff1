package core

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

const engineName = "VKTriangle"

// NewVulkanBackend initialises the Vulkan loader and returns the
// production Backend. procAddr is the loader entry point provided by the
// windowing collaborator (sdl.VulkanGetVkGetInstanceProcAddr); pass nil
// to fall back to the default loader.
func NewVulkanBackend(procAddr unsafe.Pointer) (Backend, error) {
	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, errors.Wrap(err, "vk.SetDefaultGetInstanceProcAddr()")
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, errors.Wrap(err, "vk.Init()")
	}
	return &VulkanBackend{}, nil
}

// VulkanBackend implements Backend on the Vulkan API. All variable
// length queries follow the size-query-then-fill enumeration pattern.
type VulkanBackend struct{}

// AvailableLayers implements interface
func (b *VulkanBackend) AvailableLayers() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties()")
	}
	properties := make([]vk.LayerProperties, count)
	if err := vk.Error(vk.EnumerateInstanceLayerProperties(&count, properties)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceLayerProperties()")
	}

	names := make([]string, 0, count)
	for _, layer := range properties {
		layer.Deref()
		names = append(names, vk.ToString(layer.LayerName[:]))
	}
	return names, nil
}

// AvailableExtensions implements interface
func (b *VulkanBackend) AvailableExtensions() ([]string, error) {
	var count uint32
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceExtensionProperties()")
	}
	properties := make([]vk.ExtensionProperties, count)
	if err := vk.Error(vk.EnumerateInstanceExtensionProperties("", &count, properties)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumerateInstanceExtensionProperties()")
	}

	names := make([]string, 0, count)
	for _, ext := range properties {
		ext.Deref()
		names = append(names, vk.ToString(ext.ExtensionName[:]))
	}
	return names, nil
}

// CreateInstance implements interface
func (b *VulkanBackend) CreateInstance(appName string, extensions, layers []string) (InstanceHandle, error) {
	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         vk.MakeVersion(1, 0, 0),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PApplicationName:   safeString(appName),
		PEngineName:        safeString(engineName),
	}

	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
		EnabledLayerCount:       uint32(len(layers)),
		PpEnabledLayerNames:     safeStrings(layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateInstance()")
	}
	vk.InitInstance(instance)
	return instance, nil
}

// DestroyInstance implements interface
func (b *VulkanBackend) DestroyInstance(handle InstanceHandle) {
	vk.DestroyInstance(handle.(vk.Instance), nil)
}

// PhysicalDevices implements interface
func (b *VulkanBackend) PhysicalDevices(handle InstanceHandle) ([]PhysicalDevice, error) {
	instance := handle.(vk.Instance)

	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices()")
	}
	available := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, available)); err != nil {
		return nil, errors.Wrap(err, "vk.EnumeratePhysicalDevices()")
	}

	devices := make([]PhysicalDevice, len(available))
	for i, dev := range available {
		var properties vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(dev, &properties)
		properties.Deref()

		devices[i] = PhysicalDevice{
			Handle:        dev,
			Name:          vk.ToString(properties.DeviceName[:]),
			DeviceID:      int(properties.DeviceID),
			VendorID:      int(properties.VendorID),
			DriverVersion: int(properties.DriverVersion),
			QueueFamilies: queueFamilies(dev),
		}
	}
	return devices, nil
}

func queueFamilies(dev vk.PhysicalDevice) []QueueFamily {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, nil)
	properties := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, properties)

	families := make([]QueueFamily, count)
	for i := range properties {
		properties[i].Deref()
		families[i] = QueueFamily{
			Flags: QueueFlags(properties[i].QueueFlags),
			Count: properties[i].QueueCount,
		}
	}
	return families
}

// CreateDevice implements interface
func (b *VulkanBackend) CreateDevice(physical PhysicalHandle, familyIndex int, priority float32, layers []string) (DeviceHandle, error) {
	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: uint32(familyIndex),
		QueueCount:       1,
		PQueuePriorities: []float32{priority},
	}}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount: uint32(len(queueInfos)),
		PQueueCreateInfos:    queueInfos,
		EnabledLayerCount:    uint32(len(layers)),
		PpEnabledLayerNames:  safeStrings(layers),
	}

	var device vk.Device
	if err := vk.Error(vk.CreateDevice(physical.(vk.PhysicalDevice), &deviceInfo, nil, &device)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateDevice()")
	}
	return device, nil
}

// DestroyDevice implements interface
func (b *VulkanBackend) DestroyDevice(handle DeviceHandle) {
	vk.DestroyDevice(handle.(vk.Device), nil)
}

// DeviceQueue implements interface
func (b *VulkanBackend) DeviceQueue(handle DeviceHandle, familyIndex, queueIndex int) QueueHandle {
	var queue vk.Queue
	vk.GetDeviceQueue(handle.(vk.Device), uint32(familyIndex), uint32(queueIndex), &queue)
	return queue
}

// Resolver implements interface
func (b *VulkanBackend) Resolver(handle InstanceHandle) Resolver {
	return &vulkanResolver{instance: handle.(vk.Instance)}
}

// vulkanResolver exposes the extension entry points the diagnostics
// bridge needs. The binding resolves extension commands internally, so
// Lookup only maps names onto typed wrappers.
type vulkanResolver struct {
	instance vk.Instance
}

// Lookup implements interface
func (r *vulkanResolver) Lookup(name string) (Symbol, error) {
	switch name {
	case CreateDebugReportEntryPoint:
		return CreateDebugReportFunc(r.createDebugReport), nil
	case DestroyDebugReportEntryPoint:
		return DestroyDebugReportFunc(r.destroyDebugReport), nil
	}
	return nil, errors.Wrapf(ErrExtensionUnavailable, "vulkan: %s", name)
}

func (r *vulkanResolver) createDebugReport(_ InstanceHandle, flags DebugReportFlags, callback DebugCallback) (DiagnosticHandle, error) {
	info := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(flags),
		PfnCallback: func(vkFlags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
			object uint64, location uint, messageCode int32, layerPrefix string,
			message string, userData unsafe.Pointer) vk.Bool32 {

			if callback(DebugReportFlags(vkFlags), DebugReportObjectType(objectType),
				object, location, messageCode, layerPrefix, message) {
				return vk.Bool32(vk.True)
			}
			return vk.Bool32(vk.False)
		},
	}

	var out vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(r.instance, &info, nil, &out)); err != nil {
		return nil, errors.Wrap(err, "vk.CreateDebugReportCallback()")
	}
	return out, nil
}

func (r *vulkanResolver) destroyDebugReport(_ InstanceHandle, callback DiagnosticHandle) {
	vk.DestroyDebugReportCallback(r.instance, callback.(vk.DebugReportCallback), nil)
}
