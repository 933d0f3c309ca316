// Package collision resolves the single head-on impact of two bodies
// moving along a line.
package collision

import "github.com/san-kum/kinelab/internal/physics"

const (
	DefaultX1 = 2.0
	DefaultX2 = 8.0

	// separation applied around the contact midpoint after resolution
	snapBehind = 0.01
	snapAhead  = 0.02
)

// Pair is the state of the two-body 1D collision scenario.
type Pair struct {
	M1       float64 `json:"m1" yaml:"m1"`
	M2       float64 `json:"m2" yaml:"m2"`
	V1       float64 `json:"v1" yaml:"v1"`
	V2       float64 `json:"v2" yaml:"v2"`
	E        float64 `json:"e" yaml:"e"`
	X1       float64 `json:"x1" yaml:"x1"`
	X2       float64 `json:"x2" yaml:"x2"`
	Resolved bool    `json:"resolved" yaml:"resolved"`
}

// NewPair places body 1 at DefaultX1 and body 2 at DefaultX2. Non-positive
// masses are clamped to 1.
func NewPair(m1, m2, v1, v2, e float64) Pair {
	return Pair{
		M1: physics.NormalizeMass(m1),
		M2: physics.NormalizeMass(m2),
		V1: v1,
		V2: v2,
		E:  e,
		X1: DefaultX1,
		X2: DefaultX2,
	}
}

// Advance moves both bodies by dt. Until the pair is resolved, contact
// (x1 >= x2) triggers Resolve exactly once; it reports whether that
// happened during this call.
func (p *Pair) Advance(dt float64) bool {
	p.X1 += p.V1 * dt
	p.X2 += p.V2 * dt
	if p.Resolved || p.X1 < p.X2 {
		return false
	}
	p.Resolve()
	return true
}

// Resolve exchanges the impulse with restitution E, separates the bodies
// around their midpoint and marks the pair resolved. It is a no-op once
// the pair is resolved.
func (p *Pair) Resolve() {
	if p.Resolved {
		return
	}
	m1, m2, u1, u2, e := p.M1, p.M2, p.V1, p.V2, p.E
	v1 := (m1*u1 + m2*u2 - m2*e*(u1-u2)) / (m1 + m2)
	p.V1 = v1
	p.V2 = v1 + e*(u1-u2)

	mid := (p.X1 + p.X2) / 2
	p.X1 = mid - snapBehind
	p.X2 = mid + snapAhead
	p.Resolved = true
}

// Momentum returns m1·v1 + m2·v2.
func (p Pair) Momentum() float64 {
	return p.M1*p.V1 + p.M2*p.V2
}

// KineticEnergy returns ½m1·v1² + ½m2·v2².
func (p Pair) KineticEnergy() float64 {
	return 0.5*p.M1*p.V1*p.V1 + 0.5*p.M2*p.V2*p.V2
}
