package app

import (
	"time"

	"nightsky/internal/geometry"
	renderer "nightsky/internal/graphics/renderer"
	"nightsky/internal/profiling"
	"nightsky/internal/sim"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rs/zerolog"
)

// FrameLoop drives the simulation: once per display refresh it applies
// any pending resize, advances the field, rebuilds the vertex streams
// and issues the draw. Everything runs on the main thread; the GLFW
// framebuffer callback fires inside PollEvents, so resize never
// overlaps update or draw.
type FrameLoop struct {
	window   *glfw.Window
	field    *sim.Field
	renderer *renderer.Renderer
	log      zerolog.Logger

	limiter *FPSLimiter
	vsync   bool

	resizePending bool
	resizeWidth   int
	resizeHeight  int

	// Reused across frames to avoid per-frame allocation
	starVerts   []float32
	meteorVerts []float32

	frames       int
	lastFPSCheck time.Time
	lastTime     time.Time
}

// NewFrameLoop creates a frame loop over an already-initialized window,
// field and renderer.
func NewFrameLoop(window *glfw.Window, field *sim.Field, r *renderer.Renderer, vsync bool, log zerolog.Logger) *FrameLoop {
	return &FrameLoop{
		window:       window,
		field:        field,
		renderer:     r,
		log:          log,
		limiter:      NewFPSLimiter(),
		vsync:        vsync,
		lastFPSCheck: time.Now(),
		lastTime:     time.Now(),
	}
}

// NotifyResize records a new framebuffer size in device pixels. The
// loop applies it between frames.
func (l *FrameLoop) NotifyResize(width, height int) {
	l.resizePending = true
	l.resizeWidth = width
	l.resizeHeight = height
}

// Run ticks until the window is closed
func (l *FrameLoop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *FrameLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(l.lastTime).Seconds()
	l.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	if l.resizePending {
		l.resizePending = false
		l.field.Resize(float32(l.resizeWidth), float32(l.resizeHeight))
		l.renderer.SetViewport(l.resizeWidth, l.resizeHeight)
		l.log.Debug().
			Int("width", l.resizeWidth).
			Int("height", l.resizeHeight).
			Int("stars", len(l.field.Stars())).
			Msg("resized")
	}

	func() { defer profiling.Track("sim.Update")(); l.field.Update() }()

	func() {
		defer profiling.Track("geometry.Build")()
		l.starVerts = geometry.BuildStarVertices(l.field.Stars(), l.starVerts)
		l.meteorVerts = geometry.BuildMeteorVertices(l.field.Meteors(), l.meteorVerts)
	}()

	ctx := renderer.RenderContext{
		Resolution:     l.field.Resolution(),
		DT:             dt,
		StarVertices:   l.starVerts,
		MeteorVertices: l.meteorVerts,
		StarCount:      len(l.field.Stars()),
		MeteorCount:    len(l.field.Meteors()),
	}

	func() { defer profiling.Track("render")(); l.renderer.Render(ctx) }()
	func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	l.frames++
	if time.Since(l.lastFPSCheck) >= time.Second {
		l.log.Debug().
			Int("fps", l.frames).
			Int("meteors", len(l.field.Meteors())).
			Str("hot", profiling.TopN(2)).
			Msg("frame stats")
		l.frames = 0
		l.lastFPSCheck = time.Now()
	}

	if !l.vsync {
		l.limiter.Wait()
	}
}
