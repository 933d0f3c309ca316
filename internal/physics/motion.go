package physics

// MotionType selects the force law and boundary rule of an object.
type MotionType string

const (
	Projectile   MotionType = "projectile"
	Freefall     MotionType = "freefall"
	Spring       MotionType = "spring"
	Uniform      MotionType = "uniform"
	UniformAccel MotionType = "uniform-accel"
	Static       MotionType = "static"
)

// MotionTypes lists every known motion type in display order.
var MotionTypes = []MotionType{Projectile, Freefall, Spring, Uniform, UniformAccel, Static}

// Valid reports whether m is one of MotionTypes.
func (m MotionType) Valid() bool {
	switch m {
	case Projectile, Freefall, Spring, Uniform, UniformAccel, Static:
		return true
	}
	return false
}

// Grounded reports whether the motion type is clamped to the ground plane.
func (m MotionType) Grounded() bool {
	return m == Projectile || m == Freefall
}

// Role distinguishes the scenario's demonstration body from user-added ones.
type Role string

const (
	Primary   Role = "primary"
	Auxiliary Role = "auxiliary"
)
