package physics

const (
	DefaultGravity      = 9.8
	DefaultGroundY      = 0.0
	DefaultSpringY      = 1.8
	DefaultEquilibriumX = 5.0
	DefaultStiffness    = 50.0
	DefaultDamping      = 0.5
	DefaultDrag         = 0.0
)

// Environment holds the scene-wide defaults applied to objects that do
// not override them.
type Environment struct {
	Gravity      float64 `yaml:"gravity"`
	GroundY      float64 `yaml:"ground_y"`
	SpringY      float64 `yaml:"spring_y"`
	EquilibriumX float64 `yaml:"spring_equilibrium_x"`
	Drag         float64 `yaml:"drag"`
	Stiffness    float64 `yaml:"spring_k"`
	Damping      float64 `yaml:"damping"`
}

func DefaultEnvironment() Environment {
	return Environment{
		Gravity:      DefaultGravity,
		GroundY:      DefaultGroundY,
		SpringY:      DefaultSpringY,
		EquilibriumX: DefaultEquilibriumX,
		Drag:         DefaultDrag,
		Stiffness:    DefaultStiffness,
		Damping:      DefaultDamping,
	}
}

// Params returns the per-object physics parameters implied by the
// environment, with accel as the uniform-accel drive.
func (e Environment) Params(accel float64) Params {
	return Params{
		Gravity:      e.Gravity,
		Drag:         e.Drag,
		Stiffness:    e.Stiffness,
		Damping:      e.Damping,
		EquilibriumX: e.EquilibriumX,
		Accel:        accel,
	}
}
