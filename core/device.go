package core

import "github.com/cockroachdb/errors"

// queuePriority is fixed: the bootstrap requests exactly one queue at
// maximum priority, there is no multi queue configuration.
const queuePriority = float32(1.0)

// NewDevice creates the logical device on the selected physical device,
// bound to one queue family. The instance's enabled layer set is passed
// through to device creation; modern drivers ignore device layers but
// older loaders expect them to match the instance.
func NewDevice(instance *Instance, physical PhysicalDevice, familyIndex int) (*Device, error) {
	handle, err := instance.backend.CreateDevice(physical.Handle, familyIndex, queuePriority, instance.EnabledLayers())
	if err != nil {
		return nil, errors.Wrapf(ErrDeviceCreationFailed, "core: queue family %d: %v", familyIndex, err)
	}

	return &Device{
		backend:     instance.backend,
		handle:      handle,
		physical:    physical,
		familyIndex: familyIndex,
		queue:       instance.backend.DeviceQueue(handle, familyIndex, 0),
	}, nil
}

// Device is the logical execution context: one physical device, one
// queue family, one submission queue. It must be destroyed before the
// instance it was created from.
type Device struct {
	backend Backend
	handle  DeviceHandle

	physical    PhysicalDevice
	familyIndex int
	queue       QueueHandle
}

// Handle returns the inner handle of the underlying API.
func (d *Device) Handle() DeviceHandle {
	return d.handle
}

// Physical returns the descriptor the device was created from.
func (d *Device) Physical() PhysicalDevice {
	return d.physical
}

// FamilyIndex returns the queue family the device was bound to.
func (d *Device) FamilyIndex() int {
	return d.familyIndex
}

// Queue returns the submission queue handle. It is valid only while the
// device lives and is never nil on a successfully created device.
func (d *Device) Queue() QueueHandle {
	return d.queue
}

// Destroy destroys the device and invalidates its queue handle. Safe to
// call more than once.
func (d *Device) Destroy() {
	if d == nil || d.handle == nil {
		return
	}
	d.backend.DestroyDevice(d.handle)
	d.handle = nil
	d.queue = nil
}
