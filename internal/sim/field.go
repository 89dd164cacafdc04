package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// Fixed unit time step; the frame driver runs one step per refresh.
	dt = 1.0

	velocityDamping = 0.995
	twinkleAmp      = 0.3
)

// Field owns the mutable star and meteor state and the current surface
// resolution. It is driven from a single goroutine; update, resize and
// reads never overlap.
type Field struct {
	sampler *Sampler
	stars   []Star
	meteors []Meteor
	width   float32
	height  float32
}

// NewField populates a field with numStars freshly sampled stars.
func NewField(sampler *Sampler, numStars int, width, height float32) *Field {
	f := &Field{
		sampler: sampler,
		stars:   make([]Star, 0, numStars),
		width:   width,
		height:  height,
	}
	for i := 0; i < numStars; i++ {
		f.stars = append(f.stars, sampler.Star(width, height))
	}
	return f
}

// Stars returns the live star slice. Callers must not retain it across
// an Update or Resize.
func (f *Field) Stars() []Star { return f.stars }

// Meteors returns the live meteor slice, same caveat as Stars.
func (f *Field) Meteors() []Meteor { return f.meteors }

// Resolution returns the surface size in device pixels.
func (f *Field) Resolution() mgl32.Vec2 { return mgl32.Vec2{f.width, f.height} }

// Update advances every particle by one frame: damped star drift with
// toroidal wrap and twinkle, a chance of one new meteor, and meteor
// aging with expired ones compacted out in order.
func (f *Field) Update() {
	f.updateStars()
	if f.sampler.random() < MeteorSpawnChance {
		f.spawnMeteor()
	}
	f.updateMeteors()
}

func (f *Field) updateStars() {
	for i := range f.stars {
		star := &f.stars[i]
		star.Pos = star.Pos.Add(star.Vel.Mul(dt))
		star.Vel = star.Vel.Mul(velocityDamping)
		if star.Pos[0] > f.width {
			star.Pos[0] = 0
		}
		if star.Pos[0] < 0 {
			star.Pos[0] = f.width
		}
		if star.Pos[1] > f.height {
			star.Pos[1] = 0
		}
		if star.Pos[1] < 0 {
			star.Pos[1] = f.height
		}
		star.TwinklePhase += star.TwinkleSpeed * dt
		alpha := star.BaseAlpha + twinkleAmp*float32(math.Sin(float64(star.TwinklePhase)))
		if alpha < 0 {
			alpha = 0
		}
		if alpha > 1 {
			alpha = 1
		}
		star.Alpha = alpha
	}
}

// updateMeteors ages every meteor and compacts expired ones out,
// preserving the order of survivors.
func (f *Field) updateMeteors() {
	alive := 0
	for i := range f.meteors {
		m := &f.meteors[i]
		m.Pos = m.Pos.Add(m.Vel.Mul(dt))
		m.Lifetime += dt
		if m.Lifetime < m.MaxLifetime {
			f.meteors[alive] = *m
			alive++
		}
	}
	f.meteors = f.meteors[:alive]
}

// spawnMeteor adds one meteor at a uniformly random position. The
// heading is fixed at 45 degrees; the velocity fields exist so the
// rest of the pipeline never assumes that.
func (f *Field) spawnMeteor() {
	angle := math.Pi / 4
	f.meteors = append(f.meteors, Meteor{
		Pos:         mgl32.Vec2{f.sampler.random() * f.width, f.sampler.random() * f.height},
		Vel:         mgl32.Vec2{meteorSpeed * float32(math.Cos(angle)), meteorSpeed * float32(math.Sin(angle))},
		Lifetime:    0,
		MaxLifetime: MeteorMaxLifetime,
		PointSize:   0,
		Color:       meteorColor,
	})
}

// Resize applies a new surface size. The first valid size is adopted
// as-is. After that, stars outside the new bounds are culled, and a
// grow is backfilled with fresh stars in the newly exposed region so
// the field keeps its density. A shrink only culls.
func (f *Field) Resize(newWidth, newHeight float32) {
	oldWidth, oldHeight := f.width, f.height
	f.width, f.height = newWidth, newHeight

	if oldWidth <= 0 || oldHeight <= 0 {
		return
	}

	kept := f.stars[:0]
	for _, star := range f.stars {
		if star.Pos[0] >= 0 && star.Pos[0] <= newWidth &&
			star.Pos[1] >= 0 && star.Pos[1] <= newHeight {
			kept = append(kept, star)
		}
	}
	f.stars = kept

	oldArea := oldWidth * oldHeight
	newArea := newWidth * newHeight
	if newArea <= oldArea {
		return
	}

	denom := oldArea
	if denom < 1 {
		denom = 1
	}
	density := float32(len(f.stars)) / denom
	toAdd := int(math.Ceil(float64(density * (newArea - oldArea))))
	for i := 0; i < toAdd; i++ {
		x, y := f.sampler.PointInGrownRegion(oldWidth, oldHeight, newWidth, newHeight)
		f.stars = append(f.stars, f.sampler.StarAt(x, y))
	}
}
