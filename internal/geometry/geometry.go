// Package geometry converts particle state into the flat vertex
// streams the draw passes upload each frame.
package geometry

import (
	"math"

	"nightsky/internal/sim"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// StarFloats is the per-star record: x, y, pointSize, alpha, r, g, b.
	StarFloats = 7

	// MeteorFloats is the per-vertex record: x, y, alpha, r, g, b.
	// Each meteor emits MeteorVertices of them.
	MeteorFloats   = 6
	MeteorVertices = 6

	meteorTrailLength = 300.0
	meteorWidth       = 0.5

	pointScale   = 100.0
	minPointSize = 1.0
)

var (
	backgroundBottom = mgl32.Vec3{54.0 / 255.0, 69.0 / 255.0, 125.0 / 255.0}
	backgroundTop    = mgl32.Vec3{25.0 / 255.0, 45.0 / 255.0, 105.0 / 255.0}
)

// BackgroundVertices returns the static full-viewport gradient quad,
// two triangles of 5 floats per vertex (x, y, r, g, b) in clip space.
func BackgroundVertices() []float32 {
	b, t := backgroundBottom, backgroundTop
	return []float32{
		-1, -1, b[0], b[1], b[2],
		1, -1, b[0], b[1], b[2],
		-1, 1, t[0], t[1], t[2],
		1, -1, b[0], b[1], b[2],
		1, 1, t[0], t[1], t[2],
		-1, 1, t[0], t[1], t[2],
	}
}

// BuildStarVertices appends one StarFloats record per star to buf[:0]
// and returns it. Order matches the input slice.
func BuildStarVertices(stars []sim.Star, buf []float32) []float32 {
	buf = buf[:0]
	for i := range stars {
		star := &stars[i]
		pointSize := star.Radius * pointScale
		if pointSize < minPointSize {
			pointSize = minPointSize
		}
		buf = append(buf,
			star.Pos[0], star.Pos[1], pointSize, star.Alpha,
			star.Color[0], star.Color[1], star.Color[2])
	}
	return buf
}

// BuildMeteorVertices appends two triangles per live meteor to buf[:0]:
// a trail quad from the head back along the velocity, fading from
// head alpha to zero at the tail. A near-zero velocity falls back to a
// (1,0) heading rather than dividing by zero.
func BuildMeteorVertices(meteors []sim.Meteor, buf []float32) []float32 {
	buf = buf[:0]
	for i := range meteors {
		m := &meteors[i]
		speed := float32(math.Hypot(float64(m.Vel[0]), float64(m.Vel[1])))
		var dirX, dirY float32 = 1, 0
		if speed > 0.0001 {
			dirX, dirY = m.Vel[0]/speed, m.Vel[1]/speed
		}

		headX, headY := m.Pos[0], m.Pos[1]
		tailX := headX - dirX*meteorTrailLength
		tailY := headY - dirY*meteorTrailLength
		perpX, perpY := -dirY, dirX
		half := float32(meteorWidth / 2)

		v0x, v0y := headX+perpX*half, headY+perpY*half
		v1x, v1y := headX-perpX*half, headY-perpY*half
		v2x, v2y := tailX+perpX*half, tailY+perpY*half
		v3x, v3y := tailX-perpX*half, tailY-perpY*half

		headAlpha := 1 - m.Lifetime/m.MaxLifetime
		const tailAlpha = 0
		r, g, b := m.Color[0], m.Color[1], m.Color[2]

		buf = append(buf,
			v0x, v0y, headAlpha, r, g, b,
			v1x, v1y, headAlpha, r, g, b,
			v2x, v2y, tailAlpha, r, g, b,

			v1x, v1y, headAlpha, r, g, b,
			v2x, v2y, tailAlpha, r, g, b,
			v3x, v3y, tailAlpha, r, g, b,
		)
	}
	return buf
}
