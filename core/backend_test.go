package core_test

import (
	"github.com/cockroachdb/errors"

	"github.com/ericguqin/VKTriangle/core"
)

// fakeBackend is a scripted Backend that journals every call, so tests
// can assert call ordering and arguments without a live driver.
type fakeBackend struct {
	layers     []string
	extensions []string
	devices    []core.PhysicalDevice

	failCreateInstance bool
	failCreateDevice   bool
	missingEntryPoints bool

	createdExtensions []string
	createdLayers     []string
	deviceFamily      int
	devicePriority    float32
	deviceLayers      []string

	calls []string
}

func (f *fakeBackend) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) called(call string) bool {
	for _, c := range f.calls {
		if c == call {
			return true
		}
	}
	return false
}

func (f *fakeBackend) AvailableLayers() ([]string, error) {
	f.record("AvailableLayers")
	return f.layers, nil
}

func (f *fakeBackend) AvailableExtensions() ([]string, error) {
	f.record("AvailableExtensions")
	return f.extensions, nil
}

func (f *fakeBackend) CreateInstance(appName string, extensions, layers []string) (core.InstanceHandle, error) {
	f.record("CreateInstance")
	if f.failCreateInstance {
		return nil, errors.New("scripted instance failure")
	}
	f.createdExtensions = extensions
	f.createdLayers = layers
	return "instance", nil
}

func (f *fakeBackend) DestroyInstance(core.InstanceHandle) {
	f.record("DestroyInstance")
}

func (f *fakeBackend) PhysicalDevices(core.InstanceHandle) ([]core.PhysicalDevice, error) {
	f.record("PhysicalDevices")
	return f.devices, nil
}

func (f *fakeBackend) CreateDevice(physical core.PhysicalHandle, familyIndex int, priority float32, layers []string) (core.DeviceHandle, error) {
	f.record("CreateDevice")
	if f.failCreateDevice {
		return nil, errors.New("scripted device failure")
	}
	f.deviceFamily = familyIndex
	f.devicePriority = priority
	f.deviceLayers = layers
	return "device", nil
}

func (f *fakeBackend) DestroyDevice(core.DeviceHandle) {
	f.record("DestroyDevice")
}

func (f *fakeBackend) DeviceQueue(handle core.DeviceHandle, familyIndex, queueIndex int) core.QueueHandle {
	f.record("DeviceQueue")
	return "queue"
}

func (f *fakeBackend) Resolver(core.InstanceHandle) core.Resolver {
	return &fakeResolver{backend: f}
}

type fakeResolver struct {
	backend *fakeBackend
}

func (r *fakeResolver) Lookup(name string) (core.Symbol, error) {
	if r.backend.missingEntryPoints {
		return nil, errors.Wrapf(core.ErrExtensionUnavailable, "fake: %s", name)
	}
	switch name {
	case core.CreateDebugReportEntryPoint:
		return core.CreateDebugReportFunc(func(core.InstanceHandle, core.DebugReportFlags, core.DebugCallback) (core.DiagnosticHandle, error) {
			r.backend.record("CreateDebugReportCallback")
			return "reporter", nil
		}), nil
	case core.DestroyDebugReportEntryPoint:
		return core.DestroyDebugReportFunc(func(core.InstanceHandle, core.DiagnosticHandle) {
			r.backend.record("DestroyDebugReportCallback")
		}), nil
	}
	return nil, errors.Wrapf(core.ErrExtensionUnavailable, "fake: %s", name)
}

// gpu builds a physical device descriptor for tests.
func gpu(name string, families ...core.QueueFamily) core.PhysicalDevice {
	return core.PhysicalDevice{
		Handle:        name,
		Name:          name,
		QueueFamilies: families,
	}
}

// defaultBackend is a host with the validation layer installed and two
// devices: a compute only one first, a fully capable one second.
func defaultBackend() *fakeBackend {
	return &fakeBackend{
		layers:     []string{"VK_LAYER_LUNARG_standard_validation"},
		extensions: []string{"VK_KHR_surface", core.DebugReportExtensionName},
		devices: []core.PhysicalDevice{
			gpu("compute-only", core.QueueFamily{Flags: core.QueueCompute, Count: 4}),
			gpu("discrete", core.QueueFamily{Flags: core.QueueGraphics | core.QueueTransfer | core.QueueCompute, Count: 8}),
		},
	}
}
