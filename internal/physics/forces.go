package physics

// Forces is the decomposition of the net force on an object.
type Forces struct {
	Gravity  Vec2 `json:"gravity"`
	Drag     Vec2 `json:"drag"`
	Spring   Vec2 `json:"spring"`
	External Vec2 `json:"external"`
	Total    Vec2 `json:"total"`
}

// ComputeForces evaluates the force law of o's motion type from o's own
// state and effective parameters.
func ComputeForces(o *Object) Forces {
	var f Forces
	p := o.Params
	v := o.Velocity

	switch o.MotionType {
	case Projectile:
		f.Gravity = Vec2{0, -o.Mass * p.Gravity}
		f.Drag = Vec2{-p.Drag * v.X, -p.Drag * v.Y}
	case Freefall:
		f.Gravity = Vec2{0, -o.Mass * p.Gravity}
	case Spring:
		f.Spring = Vec2{-p.Stiffness*(o.Position.X-p.EquilibriumX) - p.Damping*v.X, 0}
		f.Drag = Vec2{-p.Drag * v.X, 0}
	case UniformAccel:
		f.External = Vec2{o.Mass * p.Accel, 0}
	}

	f.Total = f.Gravity.Add(f.Drag).Add(f.Spring).Add(f.External)
	return f
}
