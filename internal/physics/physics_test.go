package physics

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestInitialize(t *testing.T) {
	env := DefaultEnvironment()
	launch := Launch{V0: 20, AngleDeg: 45, U: 5, U0: 1.5}

	tests := []struct {
		name    string
		mt      MotionType
		at      Vec2
		wantPos Vec2
		wantVel Vec2
	}{
		{"projectile", Projectile, Vec2{3, 3}, Vec2{0, 0}, Vec2{20 * math.Sqrt2 / 2, 20 * math.Sqrt2 / 2}},
		{"freefall", Freefall, Vec2{}, Vec2{6, 6}, Vec2{}},
		{"spring", Spring, Vec2{}, Vec2{env.EquilibriumX + 1, env.SpringY}, Vec2{}},
		{"uniform", Uniform, Vec2{}, Vec2{1, 1}, Vec2{5, 0}},
		{"uniform-accel", UniformAccel, Vec2{}, Vec2{1, 1}, Vec2{1.5, 0}},
		{"static keeps position", Static, Vec2{2, 7}, Vec2{2, 7}, Vec2{}},
		{"unknown", MotionType("orbit"), Vec2{2, 7}, Vec2{}, Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, vel := Initialize(tt.mt, launch, env, tt.at)
			if !near(pos.X, tt.wantPos.X) || !near(pos.Y, tt.wantPos.Y) {
				t.Errorf("position = %v, want %v", pos, tt.wantPos)
			}
			if !near(vel.X, tt.wantVel.X) || !near(vel.Y, tt.wantVel.Y) {
				t.Errorf("velocity = %v, want %v", vel, tt.wantVel)
			}
		})
	}
}

func TestMotionTypeValid(t *testing.T) {
	for _, mt := range MotionTypes {
		if !mt.Valid() {
			t.Errorf("%s reported invalid", mt)
		}
	}
	for _, mt := range []MotionType{"", "orbit", "Projectile"} {
		if mt.Valid() {
			t.Errorf("%q reported valid", mt)
		}
	}
}

func TestComputeForces(t *testing.T) {
	params := Params{Gravity: 9.8, Drag: 0.1, Stiffness: 50, Damping: 0.5, EquilibriumX: 5, Accel: 2}

	tests := []struct {
		name string
		mt   MotionType
		want Forces
	}{
		{"projectile", Projectile, Forces{
			Gravity: Vec2{0, -19.6},
			Drag:    Vec2{-0.3, 0.4},
			Total:   Vec2{-0.3, -19.2},
		}},
		{"freefall", Freefall, Forces{
			Gravity: Vec2{0, -19.6},
			Total:   Vec2{0, -19.6},
		}},
		{"spring", Spring, Forces{
			Spring: Vec2{-50*(6-5) - 0.5*3, 0},
			Drag:   Vec2{-0.3, 0},
			Total:  Vec2{-51.5 - 0.3, 0},
		}},
		{"uniform", Uniform, Forces{}},
		{"uniform-accel", UniformAccel, Forces{
			External: Vec2{4, 0},
			Total:    Vec2{4, 0},
		}},
		{"static", Static, Forces{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObject("o", tt.mt, Auxiliary, 2)
			o.Position = Vec2{6, 1}
			o.Velocity = Vec2{3, -4}
			o.Params = params

			got := ComputeForces(o)
			pairs := [][2]Vec2{
				{got.Gravity, tt.want.Gravity},
				{got.Drag, tt.want.Drag},
				{got.Spring, tt.want.Spring},
				{got.External, tt.want.External},
				{got.Total, tt.want.Total},
			}
			for i, p := range pairs {
				if !near(p[0].X, p[1].X) || !near(p[0].Y, p[1].Y) {
					t.Errorf("component %d = %v, want %v", i, p[0], p[1])
				}
			}
		})
	}
}

func TestComputeForces_TotalIsSum(t *testing.T) {
	o := NewObject("o", Spring, Auxiliary, 1.5)
	o.Position = Vec2{3.2, 1.8}
	o.Velocity = Vec2{-1.1, 0}
	o.Params = Params{Stiffness: 20, Damping: 0.7, Drag: 0.05, EquilibriumX: 5}

	f := ComputeForces(o)
	sum := f.Gravity.Add(f.Drag).Add(f.Spring).Add(f.External)
	if !near(sum.X, f.Total.X) || !near(sum.Y, f.Total.Y) {
		t.Errorf("total %v != sum %v", f.Total, sum)
	}
}

func TestConstrain(t *testing.T) {
	env := DefaultEnvironment()
	env.GroundY = 0.5

	tests := []struct {
		name     string
		mt       MotionType
		pos, vel Vec2
		wantPos  Vec2
		wantVel  Vec2
		grounded bool
	}{
		{"projectile below ground", Projectile, Vec2{4, -0.2}, Vec2{3, -5}, Vec2{4, 0.5}, Vec2{3, 0}, true},
		{"freefall below ground keeps upward vy", Freefall, Vec2{6, 0.1}, Vec2{0, 2}, Vec2{6, 0.5}, Vec2{0, 2}, true},
		{"projectile airborne", Projectile, Vec2{4, 3}, Vec2{3, -5}, Vec2{4, 3}, Vec2{3, -5}, false},
		{"spring pinned", Spring, Vec2{7, 4}, Vec2{1, 1}, Vec2{7, env.SpringY}, Vec2{1, 1}, false},
		{"uniform free", Uniform, Vec2{1, -3}, Vec2{5, 0}, Vec2{1, -3}, Vec2{5, 0}, false},
		{"uniform-accel free", UniformAccel, Vec2{1, -3}, Vec2{5, 0}, Vec2{1, -3}, Vec2{5, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := NewObject("o", tt.mt, Auxiliary, 1)
			o.Position, o.Velocity = tt.pos, tt.vel
			Constrain(o, env)
			if o.Position != tt.wantPos {
				t.Errorf("position = %v, want %v", o.Position, tt.wantPos)
			}
			if o.Velocity != tt.wantVel {
				t.Errorf("velocity = %v, want %v", o.Velocity, tt.wantVel)
			}
			if o.Grounded != tt.grounded {
				t.Errorf("grounded = %v, want %v", o.Grounded, tt.grounded)
			}
		})
	}
}

func TestNormalizeMass(t *testing.T) {
	for _, m := range []float64{0, -3, math.Inf(-1)} {
		if got := NormalizeMass(m); got != 1 {
			t.Errorf("NormalizeMass(%v) = %v, want 1", m, got)
		}
	}
	if got := NormalizeMass(2.5); got != 2.5 {
		t.Errorf("NormalizeMass(2.5) = %v", got)
	}
	o := NewObject("o", Static, Auxiliary, -1)
	if o.Mass != 1 {
		t.Errorf("NewObject mass = %v, want 1", o.Mass)
	}
}

func TestRecord_Bounded(t *testing.T) {
	o := NewObject("o", Uniform, Auxiliary, 1)
	for i := 0; i < MaxTrace+250; i++ {
		o.Position = Vec2{float64(i), 0}
		o.Record()
	}
	if len(o.Trace) != MaxTrace {
		t.Fatalf("trace length = %d, want %d", len(o.Trace), MaxTrace)
	}
	if o.Trace[0].X != 250 {
		t.Errorf("oldest entry = %v, want x=250", o.Trace[0])
	}
	if o.Trace[MaxTrace-1].X != MaxTrace+249 {
		t.Errorf("newest entry = %v", o.Trace[MaxTrace-1])
	}
}

func TestClone_Independent(t *testing.T) {
	o := NewObject("o", Projectile, Primary, 1)
	g := 3.7
	o.Overrides.Gravity = &g
	o.Position = Vec2{1, 2}
	o.Record()

	c := o.Clone()
	c.Trace[0] = Vec2{99, 99}
	*c.Overrides.Gravity = 1
	c.Position.X = 42

	if o.Trace[0] != (Vec2{1, 2}) {
		t.Error("clone shares trace")
	}
	if *o.Overrides.Gravity != 3.7 {
		t.Error("clone shares overrides")
	}
	if o.Position.X != 1 {
		t.Error("clone shares position")
	}
}

func TestOverrides(t *testing.T) {
	var ov Overrides
	k := 12.0
	ov.Merge(Overrides{Stiffness: &k})
	k = 99

	base := Params{Gravity: 9.8, Stiffness: 50}
	got := ov.Apply(base)
	if got.Stiffness != 12 {
		t.Errorf("stiffness = %v, want 12", got.Stiffness)
	}
	if got.Gravity != 9.8 {
		t.Errorf("gravity = %v, want scene default", got.Gravity)
	}
}

func TestReinitialize_StaticKeepsPosition(t *testing.T) {
	o := NewObject("o", Static, Auxiliary, 1)
	o.Position = Vec2{4, 4}
	o.Velocity = Vec2{1, 1}
	o.Reinitialize(DefaultEnvironment())
	if o.Position != (Vec2{4, 4}) || o.Velocity != (Vec2{}) {
		t.Errorf("static reinit = %v %v", o.Position, o.Velocity)
	}
}

func TestFromPolar(t *testing.T) {
	v := FromPolar(2, 90)
	if !near(v.X, 0) || !near(v.Y, 2) {
		t.Errorf("FromPolar(2, 90) = %v", v)
	}
	if !near(FromPolar(5, 37).Len(), 5) {
		t.Error("FromPolar magnitude mismatch")
	}
}
