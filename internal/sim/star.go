package sim

import "github.com/go-gl/mathgl/mgl32"

// Star palette: warm, cool, white. Picked with equal probability.
var starColors = [3]mgl32.Vec3{
	{1.0, 0.8, 0.5},
	{0.5, 0.8, 1.0},
	{1.0, 1.0, 1.0},
}

// Star is a single twinkling point. Positions are in device pixels
// with a top-left origin. Radius is a normalized size factor that the
// geometry builder scales into a GL point size.
type Star struct {
	Pos          mgl32.Vec2
	Vel          mgl32.Vec2
	Radius       float32
	BaseAlpha    float32
	Alpha        float32
	TwinklePhase float32
	TwinkleSpeed float32
	Color        mgl32.Vec3
}
