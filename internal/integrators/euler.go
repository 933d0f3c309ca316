package integrators

import "github.com/san-kum/kinelab/internal/physics"

// Euler advances objects with the explicit (forward) Euler law:
// a = F/m, v += a·dt, x += v·dt.
type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

// Step integrates o over dt, applies its boundary rule and records the
// new position in its trace. The computed forces are stored on o and
// returned. Static objects are zeroed and left in place without a trace
// entry.
func (e *Euler) Step(o *physics.Object, env physics.Environment, dt float64) physics.Forces {
	f := physics.ComputeForces(o)
	o.Forces = f

	if o.MotionType == physics.Static {
		o.Acceleration = physics.Vec2{}
		o.Velocity = physics.Vec2{}
		return f
	}

	a := f.Total.Scale(1 / o.Mass)
	if o.MotionType == physics.Uniform {
		a = physics.Vec2{}
	}
	o.Acceleration = a
	o.Velocity = o.Velocity.Add(a.Scale(dt))
	o.Position = o.Position.Add(o.Velocity.Scale(dt))

	physics.Constrain(o, env)
	o.Record()
	return f
}
