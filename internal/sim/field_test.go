package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newTestField(t *testing.T, numStars int, width, height float32) *Field {
	t.Helper()
	return NewField(NewSampler(1), numStars, width, height)
}

func TestUpdateAlphaClamped(t *testing.T) {
	f := newTestField(t, 300, 640, 480)
	for frame := 0; frame < 500; frame++ {
		f.Update()
		for i, star := range f.Stars() {
			if star.Alpha < 0 || star.Alpha > 1 {
				t.Fatalf("frame %d star %d alpha %v out of [0,1]", frame, i, star.Alpha)
			}
		}
	}
}

func TestUpdateWrapsPositions(t *testing.T) {
	f := &Field{sampler: NewSampler(2), width: 100, height: 100}
	f.stars = []Star{
		{Pos: mgl32.Vec2{99.99, 50}, Vel: mgl32.Vec2{0.05, 0}},
		{Pos: mgl32.Vec2{0.01, 50}, Vel: mgl32.Vec2{-0.05, 0}},
		{Pos: mgl32.Vec2{50, 99.99}, Vel: mgl32.Vec2{0, 0.05}},
		{Pos: mgl32.Vec2{50, 0.01}, Vel: mgl32.Vec2{0, -0.05}},
	}
	for frame := 0; frame < 100; frame++ {
		f.Update()
		for i, star := range f.Stars() {
			if star.Pos[0] < 0 || star.Pos[0] > 100 || star.Pos[1] < 0 || star.Pos[1] > 100 {
				t.Fatalf("frame %d star %d position %v escaped the surface", frame, i, star.Pos)
			}
		}
	}
}

func TestUpdateDampsVelocity(t *testing.T) {
	f := &Field{sampler: NewSampler(2), width: 100, height: 100}
	f.stars = []Star{{Pos: mgl32.Vec2{50, 50}, Vel: mgl32.Vec2{0.05, -0.05}}}
	before := f.stars[0].Vel.Len()
	f.Update()
	after := f.stars[0].Vel.Len()
	want := before * velocityDamping
	if math.Abs(float64(after-want)) > 1e-6 {
		t.Errorf("velocity after damping = %v, want %v", after, want)
	}
}

// TestMeteorLifetime verifies a meteor lives for exactly MeteorMaxLifetime
// frames: present after 49 aging steps, gone after the 50th.
func TestMeteorLifetime(t *testing.T) {
	f := &Field{sampler: NewSampler(3), width: 1000, height: 1000}
	f.meteors = []Meteor{{
		Pos:         mgl32.Vec2{100, 100},
		Vel:         mgl32.Vec2{0.7071, 0.7071},
		MaxLifetime: MeteorMaxLifetime,
		Color:       meteorColor,
	}}

	for step := 1; step < int(MeteorMaxLifetime); step++ {
		f.updateMeteors()
		if len(f.meteors) != 1 {
			t.Fatalf("meteor missing after %d aging steps", step)
		}
		if got := f.meteors[0].Lifetime; got != float32(step) {
			t.Fatalf("lifetime after %d steps = %v", step, got)
		}
	}
	f.updateMeteors()
	if len(f.meteors) != 0 {
		t.Fatalf("meteor still present after %v steps", MeteorMaxLifetime)
	}
}

// TestMeteorCompactionKeepsOrder verifies survivors stay in their
// original relative order when an expired meteor is removed.
func TestMeteorCompactionKeepsOrder(t *testing.T) {
	f := &Field{sampler: NewSampler(3), width: 1000, height: 1000}
	f.meteors = []Meteor{
		{Pos: mgl32.Vec2{1, 0}, MaxLifetime: MeteorMaxLifetime, Lifetime: 10},
		{Pos: mgl32.Vec2{2, 0}, MaxLifetime: MeteorMaxLifetime, Lifetime: MeteorMaxLifetime - 1},
		{Pos: mgl32.Vec2{3, 0}, MaxLifetime: MeteorMaxLifetime, Lifetime: 20},
	}
	f.updateMeteors()
	if len(f.meteors) != 2 {
		t.Fatalf("expected 2 survivors, got %d", len(f.meteors))
	}
	if f.meteors[0].Pos[0] != 1 || f.meteors[1].Pos[0] != 3 {
		t.Errorf("survivor order changed: %v, %v", f.meteors[0].Pos, f.meteors[1].Pos)
	}
}

// TestUpdateNeverRetainsExpired runs full updates and asserts the
// invariant that no meteor with lifetime >= maxLifetime survives one.
func TestUpdateNeverRetainsExpired(t *testing.T) {
	f := newTestField(t, 50, 500, 500)
	f.spawnMeteor()
	for frame := 0; frame < 200; frame++ {
		f.Update()
		for _, m := range f.Meteors() {
			if m.Lifetime >= m.MaxLifetime {
				t.Fatalf("frame %d retained expired meteor %+v", frame, m)
			}
		}
	}
}

func TestSpawnMeteorAttributes(t *testing.T) {
	f := &Field{sampler: NewSampler(5), width: 300, height: 200}
	f.spawnMeteor()
	if len(f.meteors) != 1 {
		t.Fatalf("expected one meteor, got %d", len(f.meteors))
	}
	m := f.meteors[0]
	if m.Pos[0] < 0 || m.Pos[0] > 300 || m.Pos[1] < 0 || m.Pos[1] > 200 {
		t.Errorf("spawn position %v outside surface", m.Pos)
	}
	// Fixed 45 degree heading at unit speed
	want := float32(math.Cos(math.Pi / 4))
	if m.Vel[0] != want || m.Vel[1] != want {
		t.Errorf("velocity %v, want both components %v", m.Vel, want)
	}
	if m.Lifetime != 0 || m.MaxLifetime != MeteorMaxLifetime {
		t.Errorf("lifetime %v/%v, want 0/%v", m.Lifetime, m.MaxLifetime, float32(MeteorMaxLifetime))
	}
}

func BenchmarkFieldUpdate(b *testing.B) {
	f := NewField(NewSampler(1), 1000, 1920, 1080)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Update()
	}
}
