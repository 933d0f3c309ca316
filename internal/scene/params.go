package scene

import (
	"github.com/san-kum/kinelab/internal/collision"
	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/statics"
)

// Scenario is the top-level simulation mode.
type Scenario string

const (
	Projectile   Scenario = "projectile"
	Freefall     Scenario = "freefall"
	Spring       Scenario = "spring"
	Uniform      Scenario = "uniform"
	UniformAccel Scenario = "uniform-accel"
	Collision1D  Scenario = "collision-1d"
	Lever        Scenario = "lever"
	Force        Scenario = "force"
)

var Scenarios = []Scenario{Projectile, Freefall, Spring, Uniform, UniformAccel, Collision1D, Lever, Force}

var scenarioInfo = map[Scenario]string{
	Projectile:   "launch at an angle under gravity and drag",
	Freefall:     "drop from rest",
	Spring:       "damped spring oscillator",
	Uniform:      "constant velocity",
	UniformAccel: "constant acceleration from rest or initial speed",
	Collision1D:  "head-on collision with restitution",
	Lever:        "torque balance about a fulcrum",
	Force:        "composition of two forces",
}

// ParseScenario reports whether name is a known scenario.
func ParseScenario(name string) (Scenario, bool) {
	s := Scenario(name)
	_, ok := scenarioInfo[s]
	return s, ok
}

func (s Scenario) Description() string { return scenarioInfo[s] }

// MotionType returns the motion law of the scenario's free body. ok is
// false for scenarios that have no primary object.
func (s Scenario) MotionType() (mt physics.MotionType, ok bool) {
	switch s {
	case Projectile:
		return physics.Projectile, true
	case Freefall:
		return physics.Freefall, true
	case Spring:
		return physics.Spring, true
	case Uniform:
		return physics.Uniform, true
	case UniformAccel:
		return physics.UniformAccel, true
	}
	return physics.Static, false
}

const (
	DefaultMassKg   = 1.0
	DefaultUaAx     = 2.0
	DefaultColM1    = 2.0
	DefaultColM2    = 3.0
	DefaultColV1    = 5.0
	DefaultColV2    = -3.0
	DefaultColE     = 1.0
	DefaultLevForce = 20.0
	DefaultLevArm   = 1.5
	DefaultFcompF1  = 30.0
	DefaultFcompA1  = 0.0
	DefaultFcompF2  = 20.0
	DefaultFcompA2  = 90.0
)

// ParameterSet is the collected control-panel state. Display toggles are
// carried for renderers and ignored by the engine.
type ParameterSet struct {
	Scenario Scenario `yaml:"scenario"`

	MassKg   float64 `yaml:"mass_kg"`
	G        float64 `yaml:"g"`
	DragC    float64 `yaml:"drag_c"`
	V0       float64 `yaml:"v0"`
	AngleDeg float64 `yaml:"angle_deg"`
	SpringK  float64 `yaml:"spring_k"`
	DampingB float64 `yaml:"damping_b"`
	UniformU float64 `yaml:"uniform_u"`
	UaU0     float64 `yaml:"ua_u0"`
	UaAx     float64 `yaml:"ua_ax"`

	ColM1 float64 `yaml:"col_m1"`
	ColM2 float64 `yaml:"col_m2"`
	ColV1 float64 `yaml:"col_v1"`
	ColV2 float64 `yaml:"col_v2"`
	ColE  float64 `yaml:"col_e"`

	LevF1 float64 `yaml:"lev_f1"`
	LevD1 float64 `yaml:"lev_d1"`
	LevF2 float64 `yaml:"lev_f2"`
	LevD2 float64 `yaml:"lev_d2"`

	FcompF1 float64 `yaml:"fcomp_f1"`
	FcompA1 float64 `yaml:"fcomp_a1"`
	FcompF2 float64 `yaml:"fcomp_f2"`
	FcompA2 float64 `yaml:"fcomp_a2"`

	ShowVel   bool `yaml:"show_vel"`
	ShowAcc   bool `yaml:"show_acc"`
	ShowTrace bool `yaml:"show_trace"`
	ShowGrid  bool `yaml:"show_grid"`
}

func DefaultParams() ParameterSet {
	return ParameterSet{
		Scenario:  Projectile,
		MassKg:    DefaultMassKg,
		G:         physics.DefaultGravity,
		DragC:     physics.DefaultDrag,
		V0:        physics.DefaultV0,
		AngleDeg:  physics.DefaultAngleDeg,
		SpringK:   physics.DefaultStiffness,
		DampingB:  physics.DefaultDamping,
		UniformU:  physics.DefaultU,
		UaU0:      physics.DefaultU0,
		UaAx:      DefaultUaAx,
		ColM1:     DefaultColM1,
		ColM2:     DefaultColM2,
		ColV1:     DefaultColV1,
		ColV2:     DefaultColV2,
		ColE:      DefaultColE,
		LevF1:     DefaultLevForce,
		LevD1:     DefaultLevArm,
		LevF2:     DefaultLevForce,
		LevD2:     DefaultLevArm,
		FcompF1:   DefaultFcompF1,
		FcompA1:   DefaultFcompA1,
		FcompF2:   DefaultFcompF2,
		FcompA2:   DefaultFcompA2,
		ShowVel:   true,
		ShowAcc:   true,
		ShowTrace: true,
		ShowGrid:  true,
	}
}

// Launch extracts the motion-law initializer inputs.
func (p ParameterSet) Launch() physics.Launch {
	return physics.Launch{V0: p.V0, AngleDeg: p.AngleDeg, U: p.UniformU, U0: p.UaU0}
}

// Live overlays the per-tick environment values of p onto env.
func (p ParameterSet) Live(env physics.Environment) physics.Environment {
	env.Gravity = p.G
	env.Drag = p.DragC
	env.Stiffness = p.SpringK
	env.Damping = p.DampingB
	return env
}

func (p ParameterSet) Pair() collision.Pair {
	return collision.NewPair(p.ColM1, p.ColM2, p.ColV1, p.ColV2, p.ColE)
}

func (p ParameterSet) Lever() statics.Lever {
	return statics.Lever{F1: p.LevF1, D1: p.LevD1, F2: p.LevF2, D2: p.LevD2}
}

func (p ParameterSet) Composition() statics.Composition {
	return statics.Composition{F1: p.FcompF1, Angle1: p.FcompA1, F2: p.FcompF2, Angle2: p.FcompA2}
}
