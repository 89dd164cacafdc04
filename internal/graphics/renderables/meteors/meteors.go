package meteors

import (
	"path/filepath"

	"nightsky/internal/geometry"
	"nightsky/internal/graphics"
	renderer "nightsky/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const ShadersDir = "assets/shaders/meteors"

var (
	VertShader = filepath.Join(ShadersDir, "meteors.vert")
	FragShader = filepath.Join(ShadersDir, "meteors.frag")
)

// Meteors draws the trail quads, two triangles per live meteor, with
// alpha fading from the head to the tail. The buffer tracks the live
// meteor count exactly; an empty frame draws nothing.
type Meteors struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewMeteors creates the meteor pass renderable
func NewMeteors() *Meteors {
	return &Meteors{}
}

// Init compiles the shader and sets up the dynamic vertex layout
func (m *Meteors) Init() error {
	var err error
	m.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)

	stride := int32(geometry.MeteorFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0) // position
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, stride, 2*4) // alpha
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 3*4) // color

	return nil
}

// Render uploads the current meteor stream and draws it as triangles
func (m *Meteors) Render(ctx renderer.RenderContext) {
	if ctx.MeteorCount == 0 {
		return
	}

	m.shader.Use()
	m.shader.SetVector2("u_resolution", ctx.Resolution.X(), ctx.Resolution.Y())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(ctx.MeteorVertices)*4, gl.Ptr(ctx.MeteorVertices), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(ctx.MeteorCount*geometry.MeteorVertices))

	gl.Disable(gl.BLEND)
}

// SetViewport is a no-op; position math uses the per-frame resolution uniform.
func (m *Meteors) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (m *Meteors) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
