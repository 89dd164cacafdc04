package sim

import (
	"math"
	"testing"
)

// TestSamplerDeterministic verifies identical seeds produce identical fields
func TestSamplerDeterministic(t *testing.T) {
	a := NewSampler(42)
	b := NewSampler(42)
	for i := 0; i < 200; i++ {
		sa := a.Star(800, 600)
		sb := b.Star(800, 600)
		if sa != sb {
			t.Fatalf("star %d differs for same seed: %+v vs %+v", i, sa, sb)
		}
	}
}

func TestStarAttributeRanges(t *testing.T) {
	s := NewSampler(7)
	const width, height = 1024, 768
	tiers := map[float32]bool{}
	for i := 0; i < 5000; i++ {
		star := s.Star(width, height)

		if star.Radius < 0.005 || star.Radius >= 0.04 {
			t.Fatalf("radius %v out of [0.005, 0.04)", star.Radius)
		}
		if star.Pos[0] < 0 || star.Pos[0] > width || star.Pos[1] < 0 || star.Pos[1] > height {
			t.Fatalf("position %v outside surface", star.Pos)
		}
		for axis := 0; axis < 2; axis++ {
			if star.Vel[axis] < -0.05 || star.Vel[axis] > 0.05 {
				t.Fatalf("velocity %v out of [-0.05, 0.05]", star.Vel)
			}
		}
		if star.BaseAlpha != 0.5 && star.BaseAlpha != 0.7 && star.BaseAlpha != 0.9 {
			t.Fatalf("base alpha %v not a brightness tier", star.BaseAlpha)
		}
		tiers[star.BaseAlpha] = true
		if star.Alpha != star.BaseAlpha {
			t.Fatalf("initial alpha %v != base alpha %v", star.Alpha, star.BaseAlpha)
		}
		if star.TwinklePhase < 0 || star.TwinklePhase >= twoPi {
			t.Fatalf("twinkle phase %v out of [0, 2pi)", star.TwinklePhase)
		}
		if star.TwinkleSpeed < 0.002 || star.TwinkleSpeed > 0.005 {
			t.Fatalf("twinkle speed %v out of [0.002, 0.005]", star.TwinkleSpeed)
		}
		if star.Color != starColors[0] && star.Color != starColors[1] && star.Color != starColors[2] {
			t.Fatalf("color %v not in palette", star.Color)
		}
	}
	if len(tiers) != 3 {
		t.Errorf("expected all three brightness tiers in 5000 samples, saw %d", len(tiers))
	}
}

// TestGaussianFinite verifies the Box-Muller guard: no draw may come
// out infinite or NaN even over many samples.
func TestGaussianFinite(t *testing.T) {
	s := NewSampler(13)
	for i := 0; i < 100000; i++ {
		g := float64(s.gaussian())
		if math.IsNaN(g) || math.IsInf(g, 0) {
			t.Fatalf("gaussian sample %d is not finite: %v", i, g)
		}
	}
}

func TestPointInGrownRegion(t *testing.T) {
	s := NewSampler(99)
	const oldW, oldH = 100, 100
	const newW, newH = 200, 150
	for i := 0; i < 1000; i++ {
		x, y := s.PointInGrownRegion(oldW, oldH, newW, newH)
		if x < 0 || x > newW || y < 0 || y > newH {
			t.Fatalf("point (%v, %v) outside new surface", x, y)
		}
		if x <= oldW && y <= oldH {
			t.Fatalf("point (%v, %v) inside old surface", x, y)
		}
	}
}

// TestPointInGrownRegionNoGrowth covers the fallback: when neither axis
// grew, the draw spans the whole new rectangle instead of spinning.
func TestPointInGrownRegionNoGrowth(t *testing.T) {
	s := NewSampler(3)
	for i := 0; i < 100; i++ {
		x, y := s.PointInGrownRegion(200, 200, 100, 100)
		if x < 0 || x > 100 || y < 0 || y > 100 {
			t.Fatalf("point (%v, %v) outside surface", x, y)
		}
	}
}
