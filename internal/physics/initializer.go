package physics

import "math"

const (
	DefaultV0       = 20.0
	DefaultAngleDeg = 45.0
	DefaultU        = 5.0
	DefaultU0       = 0.0
)

var (
	freefallStart = Vec2{6, 6}
	uniformStart  = Vec2{1, 1}
)

// Initialize returns the initial position and velocity for motion type mt.
// at is used as the position of static objects; unknown motion types
// start at rest at the origin.
func Initialize(mt MotionType, l Launch, env Environment, at Vec2) (pos, vel Vec2) {
	switch mt {
	case Projectile:
		rad := l.AngleDeg * math.Pi / 180
		return Vec2{}, Vec2{l.V0 * math.Cos(rad), l.V0 * math.Sin(rad)}
	case Freefall:
		return freefallStart, Vec2{}
	case Spring:
		return Vec2{env.EquilibriumX + 1, env.SpringY}, Vec2{}
	case Uniform:
		return uniformStart, Vec2{l.U, 0}
	case UniformAccel:
		return uniformStart, Vec2{l.U0, 0}
	case Static:
		return at, Vec2{}
	default:
		return Vec2{}, Vec2{}
	}
}
