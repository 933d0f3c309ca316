package physics

// Constrain applies the boundary rule of o's motion type after an
// integration step. Grounded bodies are clamped to groundY without
// bouncing; spring bodies are pinned to the spring axis.
func Constrain(o *Object, env Environment) {
	o.Grounded = false
	switch o.MotionType {
	case Projectile, Freefall:
		if o.Position.Y < env.GroundY {
			o.Position.Y = env.GroundY
			o.Velocity.Y = max(0, o.Velocity.Y)
			o.Grounded = true
		}
	case Spring:
		o.Position.Y = env.SpringY
	}
}
