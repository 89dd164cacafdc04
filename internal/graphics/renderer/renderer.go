package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Renderer orchestrates the draw passes. Registration order is draw
// order: background first, then stars, then meteors.
type Renderer struct {
	renderables []Renderable
}

// NewRenderer creates a renderer and initializes every renderable.
// Any init failure (shader compile, link, missing asset) aborts
// construction.
func NewRenderer(rs ...Renderable) (*Renderer, error) {
	// The whole scene is 2D; depth and culling stay off, point size
	// comes from the star vertex shader.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	renderer := &Renderer{renderables: rs}

	for _, r := range rs {
		if err := r.Init(); err != nil {
			return nil, err
		}
	}

	return renderer, nil
}

// Render clears to opaque black and runs every pass in order.
func (r *Renderer) Render(ctx RenderContext) {
	gl.Viewport(0, 0, int32(ctx.Resolution.X()), int32(ctx.Resolution.Y()))
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// SetViewport notifies every renderable of a surface size change.
func (r *Renderer) SetViewport(width, height int) {
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose cleans up all renderables in reverse order
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
}
