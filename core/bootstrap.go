package core

// Initialise runs the device negotiation sequence: context creation,
// diagnostics installation when debug mode is on, device selection,
// queue family lookup, logical device creation, queue retrieval. The
// sequence is strictly linear and single threaded; any failure unwinds
// whatever was already created and is fatal to the caller.
func Initialise(backend Backend, cfg Configuration) (*Bootstrap, error) {
	instance, err := NewInstance(backend, cfg.Instance)
	if err != nil {
		return nil, err
	}

	var reporter *DebugReporter
	if cfg.Instance.DebugMode {
		reporter, err = SetupDebugReporter(instance, nil)
		if err != nil {
			instance.Destroy()
			return nil, err
		}
	}

	required := cfg.Device.RequiredQueueFlags
	if required == 0 {
		required = QueueGraphics | QueueTransfer
	}

	physical, err := instance.SelectDevice(func(d PhysicalDevice) bool {
		_, ok := d.FindQueueFamily(required)
		return ok
	})
	if err != nil {
		reporter.Destroy()
		instance.Destroy()
		return nil, err
	}

	// Cannot fail: the predicate above already accepted the device.
	familyIndex, _ := physical.FindQueueFamily(required)

	device, err := NewDevice(instance, physical, familyIndex)
	if err != nil {
		reporter.Destroy()
		instance.Destroy()
		return nil, err
	}

	return &Bootstrap{
		instance: instance,
		reporter: reporter,
		device:   device,
	}, nil
}

// Bootstrap holds the handles produced by a completed negotiation. There
// is no partial success mode: either every field is live or Initialise
// returned an error and nothing is.
type Bootstrap struct {
	instance *Instance
	reporter *DebugReporter
	device   *Device
}

// Instance returns the negotiated API context.
func (b *Bootstrap) Instance() *Instance {
	return b.instance
}

// Device returns the logical execution context.
func (b *Bootstrap) Device() *Device {
	return b.device
}

// Queue returns the submission queue handle. It is valid until Destroy.
func (b *Bootstrap) Queue() QueueHandle {
	return b.device.Queue()
}

// Destroy tears everything down in exact reverse creation order: device
// first, then the diagnostic hook, then the context. Safe to call more
// than once.
func (b *Bootstrap) Destroy() {
	if b == nil {
		return
	}
	b.device.Destroy()
	b.reporter.Destroy()
	b.instance.Destroy()
}
