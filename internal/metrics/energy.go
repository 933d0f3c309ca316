package metrics

import (
	"math"

	"github.com/san-kum/kinelab/internal/collision"
	"github.com/san-kum/kinelab/internal/physics"
)

// ObjectStats are the derived quantities shown for a single body.
type ObjectStats struct {
	Speed      float64 `json:"speed"`
	Accel      float64 `json:"accel"`
	Kinetic    float64 `json:"kinetic"`
	Potential  float64 `json:"potential"`
	Mechanical float64 `json:"mechanical"`
}

// ForObject computes o's stats. Potential energy is measured from groundY
// with o's effective gravity and only exists for bodies that fall.
func ForObject(o physics.Object, groundY float64) ObjectStats {
	speed := o.Velocity.Len()
	s := ObjectStats{
		Speed:   speed,
		Accel:   o.Acceleration.Len(),
		Kinetic: 0.5 * o.Mass * speed * speed,
	}
	if o.MotionType.Grounded() {
		s.Potential = o.Mass * o.Params.Gravity * (o.Position.Y - groundY)
	}
	s.Mechanical = s.Kinetic + s.Potential
	return s
}

type PairStats struct {
	Momentum float64 `json:"momentum"`
	Kinetic  float64 `json:"kinetic"`
}

func ForPair(p collision.Pair) PairStats {
	return PairStats{Momentum: p.Momentum(), Kinetic: p.KineticEnergy()}
}

// EnergyDrift tracks the largest relative departure of an energy series
// from its first sample.
type EnergyDrift struct {
	initial  float64
	current  float64
	maxDrift float64
	samples  int
}

func NewEnergyDrift() *EnergyDrift {
	return &EnergyDrift{}
}

func (e *EnergyDrift) Observe(energy float64) {
	if e.samples == 0 {
		e.initial = energy
	}
	e.current = energy
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.maxDrift = math.Max(e.maxDrift, drift)
	}
}

func (e *EnergyDrift) Value() float64   { return e.maxDrift }
func (e *EnergyDrift) Initial() float64 { return e.initial }
func (e *EnergyDrift) Current() float64 { return e.current }

// Reset forgets every sample; the next Observe becomes the baseline.
func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.current = 0
	e.maxDrift = 0
	e.samples = 0
}
