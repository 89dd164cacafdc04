package geometry

import (
	"math"
	"testing"

	"nightsky/internal/sim"

	"github.com/go-gl/mathgl/mgl32"
)

func TestBuildStarVerticesRecord(t *testing.T) {
	stars := []sim.Star{{
		Pos:    mgl32.Vec2{10, 10},
		Radius: 0.01,
		Alpha:  0.5,
		Color:  mgl32.Vec3{1, 1, 1},
	}}

	got := BuildStarVertices(stars, nil)

	want := []float32{10, 10, 1.0, 0.5, 1, 1, 1}
	if len(got) != len(want) {
		t.Fatalf("record length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildStarVerticesPointSizeFloor(t *testing.T) {
	stars := []sim.Star{
		{Radius: 0.005}, // 0.5px scaled, floored to 1
		{Radius: 0.04},  // 4px scaled
	}
	got := BuildStarVertices(stars, nil)
	if got[2] != 1.0 {
		t.Errorf("small star point size = %v, want floor 1.0", got[2])
	}
	if got[StarFloats+2] != 4.0 {
		t.Errorf("large star point size = %v, want 4.0", got[StarFloats+2])
	}
}

func TestBuildStarVerticesTracksCount(t *testing.T) {
	stars := make([]sim.Star, 17)
	buf := BuildStarVertices(stars, nil)
	if len(buf) != 17*StarFloats {
		t.Fatalf("buffer length = %d, want %d", len(buf), 17*StarFloats)
	}
	// shrinking input must shrink the reused buffer
	buf = BuildStarVertices(stars[:3], buf)
	if len(buf) != 3*StarFloats {
		t.Fatalf("reused buffer length = %d, want %d", len(buf), 3*StarFloats)
	}
}

func TestBuildMeteorVerticesQuad(t *testing.T) {
	m := sim.Meteor{
		Pos:         mgl32.Vec2{500, 400},
		Vel:         mgl32.Vec2{1, 0},
		Lifetime:    10,
		MaxLifetime: 50,
		Color:       mgl32.Vec3{1, 1, 0.8},
	}

	got := BuildMeteorVertices([]sim.Meteor{m}, nil)

	if len(got) != MeteorVertices*MeteorFloats {
		t.Fatalf("buffer length = %d, want %d", len(got), MeteorVertices*MeteorFloats)
	}

	// heading (1,0): perp (0,1), tail 300 units behind the head
	headAlpha := float32(1 - 10.0/50.0)
	want := []float32{
		500, 400.25, headAlpha, 1, 1, 0.8,
		500, 399.75, headAlpha, 1, 1, 0.8,
		200, 400.25, 0, 1, 1, 0.8,
		500, 399.75, headAlpha, 1, 1, 0.8,
		200, 400.25, 0, 1, 1, 0.8,
		200, 399.75, 0, 1, 1, 0.8,
	}
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-4 {
			t.Errorf("vertex float %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestBuildMeteorVerticesDegenerateVelocity: a stationary meteor must
// not divide by zero; the heading defaults to (1,0).
func TestBuildMeteorVerticesDegenerateVelocity(t *testing.T) {
	m := sim.Meteor{
		Pos:         mgl32.Vec2{100, 100},
		Vel:         mgl32.Vec2{0, 0},
		MaxLifetime: 50,
		Color:       mgl32.Vec3{1, 1, 0.8},
	}

	got := BuildMeteorVertices([]sim.Meteor{m}, nil)

	for i, v := range got {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("float %d not finite: %v", i, v)
		}
	}
	// tail assumes heading (1,0): x - 300
	if tailX := got[2*MeteorFloats]; math.Abs(float64(tailX-(-200))) > 1e-4 {
		t.Errorf("tail x = %v, want -200", tailX)
	}
}

func TestBuildMeteorVerticesEmpty(t *testing.T) {
	if got := BuildMeteorVertices(nil, nil); len(got) != 0 {
		t.Errorf("empty meteor set produced %d floats", len(got))
	}
}

func TestBackgroundVertices(t *testing.T) {
	got := BackgroundVertices()
	if len(got) != 6*5 {
		t.Fatalf("background length = %d, want 30", len(got))
	}
	// corners in clip space
	for i := 0; i < 6; i++ {
		x, y := got[i*5], got[i*5+1]
		if (x != -1 && x != 1) || (y != -1 && y != 1) {
			t.Errorf("vertex %d at (%v, %v) not a clip-space corner", i, x, y)
		}
		// bottom vertices carry the bottom color, top the top color
		r := got[i*5+2]
		if y == -1 && r != backgroundBottom[0] {
			t.Errorf("bottom vertex %d has red %v", i, r)
		}
		if y == 1 && r != backgroundTop[0] {
			t.Errorf("top vertex %d has red %v", i, r)
		}
	}
}

func BenchmarkBuildStarVertices(b *testing.B) {
	stars := make([]sim.Star, 1000)
	for i := range stars {
		stars[i] = sim.Star{Pos: mgl32.Vec2{float32(i), float32(i)}, Radius: 0.02, Alpha: 0.7, Color: mgl32.Vec3{1, 1, 1}}
	}
	var buf []float32
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = BuildStarVertices(stars, buf)
	}
}
