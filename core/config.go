package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global engine configuration setting
type Configuration struct {
	Window   WindowConfiguration
	Instance InstanceConfiguration
	Device   DeviceConfiguration
	Time     TimeConfiguration
}

// WindowConfiguration is used to configure the application window
type WindowConfiguration struct {
	Width  uint32
	Height uint32
	Title  string
}

// InstanceConfiguration is used to configure the API context
type InstanceConfiguration struct {
	// AppName is reported to the driver
	AppName string

	// DebugMode enables the validation layer set and the debug report
	// bridge
	DebugMode bool

	// Extensions required by the windowing collaborator
	Extensions []string

	// Layers to verify and enable when DebugMode is set
	Layers []string
}

// DeviceConfiguration is used to configure device selection
type DeviceConfiguration struct {
	// RequiredQueueFlags a selected device must expose at least one
	// queue family covering all of these capabilities
	RequiredQueueFlags QueueFlags
}

// TimeConfiguration is used to configure time services
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out
	// To unlimit, set to 0
	FramesPerSecond int
}

// ConfigurationFromEnv layers environment overrides over the given
// defaults. Unset or malformed variables leave the default in place.
//
//	VKT_DEBUG  - enable validation layers and the debug report bridge
//	VKT_WIDTH  - window width in pixels
//	VKT_HEIGHT - window height in pixels
//	VKT_FPS    - frame cap for the main loop, 0 for uncapped
func ConfigurationFromEnv(defaults Configuration) Configuration {
	cfg := defaults

	if debug, err := strconv.ParseBool(envy.Get("VKT_DEBUG", "")); err == nil {
		cfg.Instance.DebugMode = debug
	}
	if width, err := strconv.Atoi(envy.Get("VKT_WIDTH", "")); err == nil && width > 0 {
		cfg.Window.Width = uint32(width)
	}
	if height, err := strconv.Atoi(envy.Get("VKT_HEIGHT", "")); err == nil && height > 0 {
		cfg.Window.Height = uint32(height)
	}
	if fps, err := strconv.Atoi(envy.Get("VKT_FPS", "")); err == nil && fps >= 0 {
		cfg.Time.FramesPerSecond = fps
	}

	return cfg
}
