package tui

import (
	"fmt"

	"github.com/san-kum/kinelab/internal/scene"
)

// knob is a tunable entry of the parameter panel.
type knob struct {
	name string
	unit string
	step float64
	min  float64
	// live knobs are read every tick; the rest take effect on reset
	live  bool
	field func(*scene.ParameterSet) *float64
}

func (k knob) adjust(p *scene.ParameterSet, dir float64) {
	v := k.field(p)
	*v = max(k.min, *v+dir*k.step)
}

func (k knob) format(p scene.ParameterSet) string {
	return fmt.Sprintf("%.2f %s", *k.field(&p), k.unit)
}

var (
	knobMass  = knob{"mass", "kg", 0.5, 0.1, false, func(p *scene.ParameterSet) *float64 { return &p.MassKg }}
	knobG     = knob{"g", "m/s²", 0.2, 0, true, func(p *scene.ParameterSet) *float64 { return &p.G }}
	knobDrag  = knob{"drag", "kg/s", 0.01, 0, true, func(p *scene.ParameterSet) *float64 { return &p.DragC }}
	knobV0    = knob{"v0", "m/s", 1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.V0 }}
	knobAngle = knob{"angle", "°", 5, -90, false, func(p *scene.ParameterSet) *float64 { return &p.AngleDeg }}
	knobK     = knob{"k", "N/m", 5, 0, true, func(p *scene.ParameterSet) *float64 { return &p.SpringK }}
	knobB     = knob{"b", "kg/s", 0.1, 0, true, func(p *scene.ParameterSet) *float64 { return &p.DampingB }}
	knobU     = knob{"u", "m/s", 0.5, -50, false, func(p *scene.ParameterSet) *float64 { return &p.UniformU }}
	knobU0    = knob{"u0", "m/s", 0.5, -50, false, func(p *scene.ParameterSet) *float64 { return &p.UaU0 }}
	knobAx    = knob{"ax", "m/s²", 0.5, -50, true, func(p *scene.ParameterSet) *float64 { return &p.UaAx }}
)

// knobsFor lists the parameters shown for a scenario. Lever and force
// knobs trigger an immediate reset since those scenes are static.
func knobsFor(sc scene.Scenario) []knob {
	switch sc {
	case scene.Projectile:
		return []knob{knobG, knobDrag, knobV0, knobAngle, knobMass}
	case scene.Freefall:
		return []knob{knobG, knobMass}
	case scene.Spring:
		return []knob{knobK, knobB, knobMass}
	case scene.Uniform:
		return []knob{knobU, knobMass}
	case scene.UniformAccel:
		return []knob{knobAx, knobU0, knobMass}
	case scene.Collision1D:
		return []knob{
			{"m1", "kg", 0.5, 0.1, false, func(p *scene.ParameterSet) *float64 { return &p.ColM1 }},
			{"m2", "kg", 0.5, 0.1, false, func(p *scene.ParameterSet) *float64 { return &p.ColM2 }},
			{"v1", "m/s", 0.5, -50, false, func(p *scene.ParameterSet) *float64 { return &p.ColV1 }},
			{"v2", "m/s", 0.5, -50, false, func(p *scene.ParameterSet) *float64 { return &p.ColV2 }},
			{"e", "", 0.1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.ColE }},
		}
	case scene.Lever:
		return []knob{
			{"F1", "N", 1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.LevF1 }},
			{"d1", "m", 0.1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.LevD1 }},
			{"F2", "N", 1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.LevF2 }},
			{"d2", "m", 0.1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.LevD2 }},
		}
	case scene.Force:
		return []knob{
			{"F1", "N", 1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.FcompF1 }},
			{"θ1", "°", 5, -360, false, func(p *scene.ParameterSet) *float64 { return &p.FcompA1 }},
			{"F2", "N", 1, 0, false, func(p *scene.ParameterSet) *float64 { return &p.FcompF2 }},
			{"θ2", "°", 5, -360, false, func(p *scene.ParameterSet) *float64 { return &p.FcompA2 }},
		}
	}
	return nil
}

func staticScenario(sc scene.Scenario) bool {
	return sc == scene.Lever || sc == scene.Force
}
