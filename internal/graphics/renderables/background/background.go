package background

import (
	"path/filepath"

	"nightsky/internal/geometry"
	"nightsky/internal/graphics"
	renderer "nightsky/internal/graphics/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const ShadersDir = "assets/shaders/background"

var (
	VertShader = filepath.Join(ShadersDir, "background.vert")
	FragShader = filepath.Join(ShadersDir, "background.frag")
)

// Background draws the static vertical-gradient quad behind everything
// else. The vertices are already in clip space, so the pass needs no
// uniforms and is built exactly once.
type Background struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	count  int32
}

// NewBackground creates the background renderable
func NewBackground() *Background {
	return &Background{}
}

// Init compiles the shader and uploads the gradient quad
func (b *Background) Init() error {
	var err error
	b.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	vertices := geometry.BackgroundVertices()
	b.count = int32(len(vertices) / 5)

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride := int32(5 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*4)

	return nil
}

// Render draws the gradient. No blending: the quad is opaque and drawn first.
func (b *Background) Render(_ renderer.RenderContext) {
	b.shader.Use()
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
}

// SetViewport is a no-op; the quad covers clip space at any size.
func (b *Background) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (b *Background) Dispose() {
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
	}
	if b.shader != nil {
		b.shader.Delete()
	}
}
