package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared per-frame data for all renderables.
// The vertex streams are rebuilt by the frame loop before each draw
// and are valid only for the duration of the frame.
type RenderContext struct {
	Resolution     mgl32.Vec2
	DT             float64
	StarVertices   []float32
	MeteorVertices []float32
	StarCount      int
	MeteorCount    int
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
