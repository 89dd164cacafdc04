package overlay

import (
	"fmt"
	"time"

	"nightsky/internal/graphics"
	renderer "nightsky/internal/graphics/renderer"
	"nightsky/internal/profiling"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
)

const fontPixels = 24

// Overlay draws a small debug readout (FPS, particle counts, hottest
// frame buckets) in the top-left corner. It is diagnostics, not part
// of the scene: a missing or unreadable font disables it with a
// warning instead of failing startup.
type Overlay struct {
	fontPath     string
	log          zerolog.Logger
	fontRenderer *graphics.FontRenderer

	frames       int
	lastFPSCheck time.Time
	currentFPS   int
}

// NewOverlay creates the overlay renderable. fontPath points at a
// TrueType font baked into the glyph atlas at init.
func NewOverlay(fontPath string, log zerolog.Logger) *Overlay {
	return &Overlay{fontPath: fontPath, log: log}
}

// Init bakes the font atlas. Failure only disables the overlay.
func (o *Overlay) Init() error {
	atlas, err := graphics.BuildFontAtlas(o.fontPath, fontPixels)
	if err != nil {
		o.log.Warn().Err(err).Str("font", o.fontPath).Msg("overlay disabled")
		return nil
	}
	fr, err := graphics.NewFontRenderer(atlas)
	if err != nil {
		o.log.Warn().Err(err).Msg("overlay disabled")
		return nil
	}
	o.fontRenderer = fr
	o.lastFPSCheck = time.Now()
	return nil
}

// Render draws the readout on top of the scene
func (o *Overlay) Render(ctx renderer.RenderContext) {
	if o.fontRenderer == nil {
		return
	}

	o.frames++
	if time.Since(o.lastFPSCheck) >= time.Second {
		o.currentFPS = o.frames
		o.frames = 0
		o.lastFPSCheck = time.Now()
	}

	lines := []string{
		fmt.Sprintf("FPS: %d", o.currentFPS),
		fmt.Sprintf("Stars: %d  Meteors: %d", ctx.StarCount, ctx.MeteorCount),
		profiling.TopN(3),
	}
	o.fontRenderer.RenderLines(lines, 10, 26, 18, 0.6, mgl32.Vec3{1, 1, 1})
}

// SetViewport rebuilds the text projection for the new surface size
func (o *Overlay) SetViewport(width, height int) {
	if o.fontRenderer == nil {
		return
	}
	o.fontRenderer.SetViewport(width, height)
}

// Dispose cleans up the font resources
func (o *Overlay) Dispose() {
	if o.fontRenderer != nil {
		o.fontRenderer.Dispose()
	}
}
