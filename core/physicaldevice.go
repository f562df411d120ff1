package core

// QueueFlags is a bitmask of queue family capabilities. The bit layout
// matches the backend's queue flag bits.
type QueueFlags uint32

// Queue family capability bits.
const (
	QueueGraphics QueueFlags = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

// QueueFamily describes one queue family: its capability set and how
// many queues it exposes.
type QueueFamily struct {
	Flags QueueFlags
	Count uint32
}

// PhysicalDevice is a read only descriptor of one candidate device. The
// handle references driver owned state and is never destroyed by the
// application.
type PhysicalDevice struct {
	Handle PhysicalHandle

	Name          string
	DeviceID      int
	VendorID      int
	DriverVersion int

	// QueueFamilies is the device's capability table, ordered by
	// family index.
	QueueFamilies []QueueFamily
}

// FindQueueFamily returns the index of the first family whose capability
// set covers every bit in required and which exposes at least one queue.
//
// The match is a full superset test (flags&required == required), not a
// nonzero overlap: a compute only family never satisfies a request for
// {graphics, transfer}.
func (p PhysicalDevice) FindQueueFamily(required QueueFlags) (int, bool) {
	for i, family := range p.QueueFamilies {
		if family.Count == 0 {
			continue
		}
		if family.Flags&required == required {
			return i, true
		}
	}
	return 0, false
}

// GraphicsTransferPredicate is the application default device predicate:
// the device must expose at least one queue family covering both
// graphics and transfer.
func GraphicsTransferPredicate(d PhysicalDevice) bool {
	_, ok := d.FindQueueFamily(QueueGraphics | QueueTransfer)
	return ok
}

// PhysicalDevices enumerates the candidate devices exposed by the
// context, in enumeration order.
func (i *Instance) PhysicalDevices() ([]PhysicalDevice, error) {
	devices, err := i.backend.PhysicalDevices(i.handle)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrNoDevicesFound
	}
	return devices, nil
}

// SelectDevice returns the first enumerated device the predicate
// accepts. Candidates are visited in enumeration order and there is no
// scoring: the first acceptable device wins every time, which keeps
// selection deterministic across runs.
func (i *Instance) SelectDevice(suitable func(PhysicalDevice) bool) (PhysicalDevice, error) {
	devices, err := i.PhysicalDevices()
	if err != nil {
		return PhysicalDevice{}, err
	}
	for _, device := range devices {
		if suitable(device) {
			return device, nil
		}
	}
	return PhysicalDevice{}, ErrNoSuitableDevice
}
