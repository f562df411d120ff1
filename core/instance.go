package core

import (
	"unsafe"

	"github.com/cockroachdb/errors"
)

// DefaultValidationLayers is the layer set enabled in debug mode.
var DefaultValidationLayers = []string{"VK_LAYER_LUNARG_standard_validation"}

// DebugReportExtensionName names the instance extension that carries the
// debug report entry points.
const DebugReportExtensionName = "VK_EXT_debug_report"

// NewInstance creates the top level API context.
//
// The configured extensions are verified against the host's enumerated
// extension list before creation. In debug mode every configured layer
// must additionally be present in the host's layer list, and the debug
// report extension is appended to the request; outside debug mode no
// layer query happens at all. All checks run before the creation call,
// so a failed run leaves nothing behind.
func NewInstance(backend Backend, cfg InstanceConfiguration) (*Instance, error) {
	extensions := make([]string, 0, len(cfg.Extensions)+1)
	extensions = append(extensions, cfg.Extensions...)

	available, err := backend.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "core: enumerate instance extensions")
	}
	for _, ext := range extensions {
		if !contains(available, ext) {
			return nil, errors.Wrapf(ErrConfigurationUnsatisfiable, "core: extension %s not present on host", ext)
		}
	}

	var layers []string
	if cfg.DebugMode {
		availableLayers, err := backend.AvailableLayers()
		if err != nil {
			return nil, errors.Wrap(err, "core: enumerate instance layers")
		}
		for _, layer := range cfg.Layers {
			if !contains(availableLayers, layer) {
				return nil, errors.Wrapf(ErrConfigurationUnsatisfiable, "core: layer %s not present on host, install the Vulkan SDK", layer)
			}
		}
		layers = append(layers, cfg.Layers...)
		extensions = append(extensions, DebugReportExtensionName)
	}

	handle, err := backend.CreateInstance(cfg.AppName, extensions, layers)
	if err != nil {
		return nil, errors.Wrapf(ErrBackendCreationFailed, "core: %v", err)
	}

	return &Instance{
		backend:       backend,
		handle:        handle,
		configuration: cfg,
		enabledLayers: layers,
	}, nil
}

// Instance describes a negotiated API context. Once created it is ready
// to use; it must outlive every handle derived from it and be destroyed
// last.
type Instance struct {
	backend Backend
	handle  InstanceHandle

	configuration InstanceConfiguration
	enabledLayers []string

	surface unsafe.Pointer
}

// Handle returns the inner handle of the underlying API.
func (i *Instance) Handle() InstanceHandle {
	return i.handle
}

// EnabledLayers returns the layer set the context was created with. It
// is empty outside debug mode.
func (i *Instance) EnabledLayers() []string {
	return i.enabledLayers
}

// SetSurface sets the window surface provided by the windowing
// collaborator.
func (i *Instance) SetSurface(pSurface unsafe.Pointer) {
	i.surface = pSurface
}

// Surface returns the window surface, nil if it was never set.
func (i *Instance) Surface() unsafe.Pointer {
	return i.surface
}

// Destroy destroys the context. Safe to call more than once.
func (i *Instance) Destroy() {
	if i == nil || i.handle == nil {
		return
	}
	i.backend.DestroyInstance(i.handle)
	i.handle = nil
}
