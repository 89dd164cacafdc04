package stars

import (
	"path/filepath"

	"nightsky/internal/geometry"
	"nightsky/internal/graphics"
	renderer "nightsky/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const ShadersDir = "assets/shaders/stars"

var (
	VertShader = filepath.Join(ShadersDir, "stars.vert")
	FragShader = filepath.Join(ShadersDir, "stars.frag")
)

// Stars draws the star field as GL points with per-vertex size, alpha
// and color. The vertex buffer is fully overwritten every frame from
// the context's star stream.
type Stars struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewStars creates the star pass renderable
func NewStars() *Stars {
	return &Stars{}
}

// Init compiles the shader and sets up the dynamic vertex layout
func (s *Stars) Init() error {
	var err error
	s.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(geometry.StarFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0) // position
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 2*4) // point size
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, 3*4) // alpha
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, 4*4) // color

	return nil
}

// Render uploads the current star stream and draws it as points.
// The resolution uniform is re-pushed every frame; the surface may
// have resized since the last one.
func (s *Stars) Render(ctx renderer.RenderContext) {
	if ctx.StarCount == 0 {
		return
	}

	s.shader.Use()
	s.shader.SetVector2("u_resolution", ctx.Resolution.X(), ctx.Resolution.Y())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(ctx.StarVertices)*4, gl.Ptr(ctx.StarVertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(ctx.StarCount))

	gl.Disable(gl.BLEND)
}

// SetViewport is a no-op; position math uses the per-frame resolution uniform.
func (s *Stars) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (s *Stars) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}
