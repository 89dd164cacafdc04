package sim

import "github.com/go-gl/mathgl/mgl32"

const (
	// MeteorMaxLifetime is the number of frames a meteor lives.
	MeteorMaxLifetime = 50.0

	// MeteorSpawnChance is the per-frame probability of a new meteor.
	MeteorSpawnChance = 0.001

	meteorSpeed = 1.0
)

var meteorColor = mgl32.Vec3{1.0, 1.0, 0.8}

// Meteor is a short-lived streak. PointSize is carried in the record
// but unused by the triangle pipeline.
type Meteor struct {
	Pos         mgl32.Vec2
	Vel         mgl32.Vec2
	Lifetime    float32
	MaxLifetime float32
	PointSize   float32
	Color       mgl32.Vec3
}
