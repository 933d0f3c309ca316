// Package statics holds the non-integrated demonstration structures:
// lever torque balance and two-force composition.
package statics

import "math"

// balanceTolerance is the torque difference, in N·m, treated as equilibrium.
const balanceTolerance = 1e-2

type Balance string

const (
	Balanced         Balance = "balanced"
	Counterclockwise Balance = "counterclockwise"
	Clockwise        Balance = "clockwise"
)

// Lever has force F1 applied at distance D1 left of the fulcrum and F2
// at D2 to the right.
type Lever struct {
	F1 float64 `json:"f1" yaml:"f1"`
	D1 float64 `json:"d1" yaml:"d1"`
	F2 float64 `json:"f2" yaml:"f2"`
	D2 float64 `json:"d2" yaml:"d2"`
}

// Torques returns τ1 = F1·d1 and τ2 = F2·d2.
func (l Lever) Torques() (tau1, tau2 float64) {
	return l.F1 * l.D1, l.F2 * l.D2
}

func (l Lever) Balance() Balance {
	t1, t2 := l.Torques()
	switch {
	case math.Abs(t1-t2) < balanceTolerance:
		return Balanced
	case t1 > t2:
		return Counterclockwise
	default:
		return Clockwise
	}
}

// NetTorque is τ1 − τ2, positive when the lever turns counterclockwise.
func (l Lever) NetTorque() float64 {
	t1, t2 := l.Torques()
	return t1 - t2
}

