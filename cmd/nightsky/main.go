package main

import (
	"runtime"

	"nightsky/internal/app"
	"nightsky/internal/config"
	"nightsky/internal/graphics/renderables/background"
	"nightsky/internal/graphics/renderables/meteors"
	"nightsky/internal/graphics/renderables/overlay"
	"nightsky/internal/graphics/renderables/stars"
	renderer "nightsky/internal/graphics/renderer"
	"nightsky/internal/sim"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	config.Load()
	log := newLogger()

	if err := glfw.Init(); err != nil {
		log.Fatal().Err(err).Msg("glfw init failed")
	}
	defer glfw.Terminate()

	window, err := setupWindow()
	if err != nil {
		log.Fatal().Err(err).Msg("window setup failed")
	}

	// Surface size in device pixels; GLFW reports the framebuffer
	// already scaled by the monitor content scale.
	fbWidth, fbHeight := window.GetFramebufferSize()

	sampler := sim.NewSampler(config.GetSeed())
	field := sim.NewField(sampler, config.GetStarCount(), float32(fbWidth), float32(fbHeight))

	renderables := []renderer.Renderable{
		background.NewBackground(),
		stars.NewStars(),
		meteors.NewMeteors(),
	}
	if config.GetOverlayEnabled() {
		renderables = append(renderables, overlay.NewOverlay(config.GetOverlayFontPath(), log))
	}

	r, err := renderer.NewRenderer(renderables...)
	if err != nil {
		log.Fatal().Err(err).Msg("renderer init failed")
	}
	defer r.Dispose()
	r.SetViewport(fbWidth, fbHeight)

	loop := app.NewFrameLoop(window, field, r, config.GetVSync(), log)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		loop.NotifyResize(width, height)
	})

	log.Info().
		Int("stars", len(field.Stars())).
		Int("width", fbWidth).
		Int("height", fbHeight).
		Bool("vsync", config.GetVSync()).
		Msg("starting night sky")

	loop.Run()
}
