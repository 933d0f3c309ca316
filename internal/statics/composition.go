package statics

import (
	"math"

	"github.com/san-kum/kinelab/internal/physics"
)

// Composition is two coplanar forces given by magnitude (N) and direction
// (degrees counterclockwise from +x).
type Composition struct {
	F1     float64 `json:"f1" yaml:"f1"`
	Angle1 float64 `json:"angle1" yaml:"angle1"`
	F2     float64 `json:"f2" yaml:"f2"`
	Angle2 float64 `json:"angle2" yaml:"angle2"`
}

// Components returns both forces as vectors.
func (c Composition) Components() (f1, f2 physics.Vec2) {
	return physics.FromPolar(c.F1, c.Angle1), physics.FromPolar(c.F2, c.Angle2)
}

// Resultant returns F1 + F2.
func (c Composition) Resultant() physics.Vec2 {
	f1, f2 := c.Components()
	return f1.Add(f2)
}

// Direction returns the resultant's angle in degrees in (-180, 180].
func (c Composition) Direction() float64 {
	r := c.Resultant()
	return math.Atan2(r.Y, r.X) * 180 / math.Pi
}
