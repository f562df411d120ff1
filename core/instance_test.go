package core_test

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/ericguqin/VKTriangle/core"
)

func debugConfig() core.InstanceConfiguration {
	return core.InstanceConfiguration{
		AppName:    "test",
		DebugMode:  true,
		Extensions: []string{"VK_KHR_surface"},
		Layers:     core.DefaultValidationLayers,
	}
}

func TestNewInstanceDebugMode(t *testing.T) {
	backend := defaultBackend()

	instance, err := core.NewInstance(backend, debugConfig())
	if err != nil {
		t.Fatal(err)
	}
	defer instance.Destroy()

	if !contains(backend.createdExtensions, core.DebugReportExtensionName) {
		t.Errorf("debug report extension not requested, got %v", backend.createdExtensions)
	}
	if !contains(backend.createdLayers, "VK_LAYER_LUNARG_standard_validation") {
		t.Errorf("validation layer not enabled, got %v", backend.createdLayers)
	}
	if len(instance.EnabledLayers()) != 1 {
		t.Errorf("expected one enabled layer, got %v", instance.EnabledLayers())
	}
}

func TestNewInstanceMissingLayerFailsBeforeCreation(t *testing.T) {
	backend := defaultBackend()
	backend.layers = nil

	_, err := core.NewInstance(backend, debugConfig())
	if !errors.Is(err, core.ErrConfigurationUnsatisfiable) {
		t.Fatalf("expected ErrConfigurationUnsatisfiable, got %v", err)
	}
	if backend.called("CreateInstance") {
		t.Error("instance creation attempted despite missing layer")
	}
}

func TestNewInstanceWithoutDebugSkipsLayers(t *testing.T) {
	backend := defaultBackend()
	backend.layers = nil // no layers installed at all

	cfg := debugConfig()
	cfg.DebugMode = false

	instance, err := core.NewInstance(backend, cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer instance.Destroy()

	if backend.called("AvailableLayers") {
		t.Error("layer availability queried with debug mode off")
	}
	if contains(backend.createdExtensions, core.DebugReportExtensionName) {
		t.Error("debug report extension requested with debug mode off")
	}
	if len(backend.createdLayers) != 0 {
		t.Errorf("layers enabled with debug mode off: %v", backend.createdLayers)
	}
}

func TestNewInstanceMissingExtension(t *testing.T) {
	backend := defaultBackend()
	backend.extensions = nil

	_, err := core.NewInstance(backend, debugConfig())
	if !errors.Is(err, core.ErrConfigurationUnsatisfiable) {
		t.Fatalf("expected ErrConfigurationUnsatisfiable, got %v", err)
	}
	if backend.called("CreateInstance") {
		t.Error("instance creation attempted despite missing extension")
	}
}

func TestNewInstanceCreationFailure(t *testing.T) {
	backend := defaultBackend()
	backend.failCreateInstance = true

	instance, err := core.NewInstance(backend, debugConfig())
	if !errors.Is(err, core.ErrBackendCreationFailed) {
		t.Fatalf("expected ErrBackendCreationFailed, got %v", err)
	}
	if instance != nil {
		t.Error("partial instance retained on failure")
	}
}

func TestInstanceDestroyIdempotent(t *testing.T) {
	backend := defaultBackend()

	instance, err := core.NewInstance(backend, debugConfig())
	if err != nil {
		t.Fatal(err)
	}

	instance.Destroy()
	instance.Destroy()

	destroys := 0
	for _, call := range backend.calls {
		if call == "DestroyInstance" {
			destroys++
		}
	}
	if destroys != 1 {
		t.Errorf("expected exactly one DestroyInstance, got %d", destroys)
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
