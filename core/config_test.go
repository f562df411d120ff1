package core_test

import (
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/ericguqin/VKTriangle/core"
)

func TestConfigurationFromEnv(t *testing.T) {
	defaults := core.Configuration{
		Window: core.WindowConfiguration{Width: 800, Height: 600, Title: "Vulkan"},
		Time:   core.TimeConfiguration{FramesPerSecond: 60},
	}

	envy.Temp(func() {
		envy.Set("VKT_DEBUG", "true")
		envy.Set("VKT_WIDTH", "1280")
		envy.Set("VKT_HEIGHT", "720")
		envy.Set("VKT_FPS", "0")

		cfg := core.ConfigurationFromEnv(defaults)

		if !cfg.Instance.DebugMode {
			t.Error("VKT_DEBUG override not applied")
		}
		if cfg.Window.Width != 1280 || cfg.Window.Height != 720 {
			t.Errorf("geometry override not applied: %dx%d", cfg.Window.Width, cfg.Window.Height)
		}
		if cfg.Time.FramesPerSecond != 0 {
			t.Errorf("fps override not applied: %d", cfg.Time.FramesPerSecond)
		}
	})
}

func TestConfigurationFromEnvIgnoresMalformedValues(t *testing.T) {
	defaults := core.Configuration{
		Window: core.WindowConfiguration{Width: 800, Height: 600},
	}

	envy.Temp(func() {
		envy.Set("VKT_DEBUG", "yep")
		envy.Set("VKT_WIDTH", "-100")
		envy.Set("VKT_HEIGHT", "wide")

		cfg := core.ConfigurationFromEnv(defaults)

		if cfg.Instance.DebugMode {
			t.Error("malformed VKT_DEBUG applied")
		}
		if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
			t.Errorf("malformed geometry applied: %dx%d", cfg.Window.Width, cfg.Window.Height)
		}
	})
}
