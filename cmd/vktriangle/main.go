package main

import (
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ericguqin/VKTriangle/core"
)

func init() {
	runtime.LockOSThread()
}

var defaults = core.Configuration{
	Window: core.WindowConfiguration{
		Width:  800,
		Height: 600,
		Title:  "Vulkan",
	},
	Instance: core.InstanceConfiguration{
		AppName:   "VKTriangle",
		DebugMode: false,
		Layers:    core.DefaultValidationLayers,
	},
	Device: core.DeviceConfiguration{
		RequiredQueueFlags: core.QueueGraphics | core.QueueTransfer,
	},
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
	},
}

func newWindow(cfg core.WindowConfiguration) (*sdl.Window, error) {
	return sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width),
		int32(cfg.Height),
		sdl.WINDOW_VULKAN)
}

func run() error {
	cfg := core.ConfigurationFromEnv(defaults)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return err
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := newWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer window.Destroy()

	cfg.Instance.Extensions = window.VulkanGetInstanceExtensions()

	backend, err := core.NewVulkanBackend(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return err
	}

	boot, err := core.Initialise(backend, cfg)
	if err != nil {
		return err
	}
	defer boot.Destroy()

	surface, err := window.VulkanCreateSurface(boot.Instance().Handle())
	if err != nil {
		return err
	}
	boot.Instance().SetSurface(surface)

	log.WithFields(log.Fields{
		"device": boot.Device().Physical().Name,
		"family": boot.Device().FamilyIndex(),
		"debug":  cfg.Instance.DebugMode,
	}).Info("device negotiated")

	clock := core.NewTime(cfg.Time)
	defer clock.Stop()

EventLoop:
	for range clock.FpsTicker().C {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch et := event.(type) {
			case *sdl.KeyboardEvent:
				if et.Keysym.Sym == sdl.K_ESCAPE {
					break EventLoop
				}
			case *sdl.QuitEvent:
				break EventLoop
			}
		}
	}

	log.Info("event loop exited")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
