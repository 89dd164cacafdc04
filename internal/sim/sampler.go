package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

const twoPi = 6.28318530718

// Sampler draws star attributes from the field's distribution. It owns
// its RNG so tests can seed it deterministically.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler. A zero seed is replaced with the
// current time.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *Sampler) random() float32 {
	return float32(s.rng.Float64())
}

// Star samples a star placed anywhere on a width x height surface.
// Large stars have a 50% chance of landing in a small box around the
// center so the field reads as having a bright core. The rest spread
// uniformly in x, and mostly in a gaussian band around the vertical
// center.
func (s *Sampler) Star(width, height float32) Star {
	r := s.random()
	radius := 0.005 + (0.04-0.005)*r*r

	var x, y float32
	if radius > 0.035 && s.random() < 0.5 {
		x = width/2 + (s.random()-0.5)*(width*0.2)
		y = height/2 + (s.random()-0.5)*(height*0.2)
	} else {
		x = s.random() * width
		if s.random() < 0.8 {
			sigma := height * 0.15
			y = height/2 + sigma*s.gaussian()
			if y < 0 {
				y = 0
			}
			if y > height {
				y = height
			}
		} else {
			y = s.random() * height
		}
	}
	return s.starAt(x, y, radius)
}

// StarAt samples every attribute except position, which is fixed.
// Used when backfilling after a grow resize.
func (s *Sampler) StarAt(x, y float32) Star {
	r := s.random()
	radius := 0.005 + (0.04-0.005)*r*r
	return s.starAt(x, y, radius)
}

func (s *Sampler) starAt(x, y, radius float32) Star {
	vx := (s.random() - 0.5) * 0.1
	vy := (s.random() - 0.5) * 0.1

	var baseAlpha float32
	switch tier := s.random(); {
	case tier < 0.33:
		baseAlpha = 0.5
	case tier < 0.66:
		baseAlpha = 0.7
	default:
		baseAlpha = 0.9
	}

	phase := s.random() * twoPi
	speed := 0.002 + s.random()*0.003

	var color mgl32.Vec3
	switch choice := s.random(); {
	case choice < 0.33:
		color = starColors[0]
	case choice < 0.66:
		color = starColors[1]
	default:
		color = starColors[2]
	}

	return Star{
		Pos:          mgl32.Vec2{x, y},
		Vel:          mgl32.Vec2{vx, vy},
		Radius:       radius,
		BaseAlpha:    baseAlpha,
		Alpha:        baseAlpha,
		TwinklePhase: phase,
		TwinkleSpeed: speed,
		Color:        color,
	}
}

// gaussian returns a standard normal sample via the Box-Muller
// transform. u1 is clamped away from zero so the log never blows up.
func (s *Sampler) gaussian() float32 {
	u1 := s.random()
	if u1 < 0.000001 {
		u1 = 0.000001
	}
	u2 := s.random()
	return float32(math.Sqrt(-2.0*math.Log(float64(u1))) * math.Cos(twoPi*float64(u2)))
}

// PointInGrownRegion draws a point uniformly from the part of the new
// rectangle not covered by the old one, by rejection. If the surface
// did not grow on either axis the draw falls back to the full new
// rectangle.
func (s *Sampler) PointInGrownRegion(oldW, oldH, newW, newH float32) (float32, float32) {
	if newW <= oldW && newH <= oldH {
		return s.random() * newW, s.random() * newH
	}
	for {
		x := s.random() * newW
		y := s.random() * newH
		if x > oldW || y > oldH {
			return x, y
		}
	}
}
