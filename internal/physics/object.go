package physics

// MaxTrace bounds the trajectory history of every object.
const MaxTrace = 1000

// Params are the effective physics parameters the force model reads.
type Params struct {
	Gravity      float64 `json:"gravity"`
	Drag         float64 `json:"drag"`
	Stiffness    float64 `json:"stiffness"`
	Damping      float64 `json:"damping"`
	EquilibriumX float64 `json:"equilibrium_x"`
	Accel        float64 `json:"accel"`
}

// Overrides are per-object replacements for scene defaults. A nil field
// follows the scene.
type Overrides struct {
	Gravity      *float64 `json:"gravity,omitempty"`
	Drag         *float64 `json:"drag,omitempty"`
	Stiffness    *float64 `json:"stiffness,omitempty"`
	Damping      *float64 `json:"damping,omitempty"`
	EquilibriumX *float64 `json:"equilibrium_x,omitempty"`
	Accel        *float64 `json:"accel,omitempty"`
}

// Merge copies every field set in o onto the receiver.
func (ov *Overrides) Merge(o Overrides) {
	if o.Gravity != nil {
		ov.Gravity = ptr(*o.Gravity)
	}
	if o.Drag != nil {
		ov.Drag = ptr(*o.Drag)
	}
	if o.Stiffness != nil {
		ov.Stiffness = ptr(*o.Stiffness)
	}
	if o.Damping != nil {
		ov.Damping = ptr(*o.Damping)
	}
	if o.EquilibriumX != nil {
		ov.EquilibriumX = ptr(*o.EquilibriumX)
	}
	if o.Accel != nil {
		ov.Accel = ptr(*o.Accel)
	}
}

// Apply returns base with the overridden fields replaced.
func (ov Overrides) Apply(base Params) Params {
	if ov.Gravity != nil {
		base.Gravity = *ov.Gravity
	}
	if ov.Drag != nil {
		base.Drag = *ov.Drag
	}
	if ov.Stiffness != nil {
		base.Stiffness = *ov.Stiffness
	}
	if ov.Damping != nil {
		base.Damping = *ov.Damping
	}
	if ov.EquilibriumX != nil {
		base.EquilibriumX = *ov.EquilibriumX
	}
	if ov.Accel != nil {
		base.Accel = *ov.Accel
	}
	return base
}

func (ov Overrides) clone() Overrides {
	var c Overrides
	c.Merge(ov)
	return c
}

// Launch records the parameters an object was initialized from.
type Launch struct {
	V0       float64 `json:"v0"`
	AngleDeg float64 `json:"angle_deg"`
	U        float64 `json:"u"`
	U0       float64 `json:"u0"`
}

// Object is a simulated point mass.
type Object struct {
	ID         string     `json:"id"`
	MotionType MotionType `json:"motion_type"`
	Role       Role       `json:"role"`

	Position     Vec2    `json:"position"`
	Velocity     Vec2    `json:"velocity"`
	Acceleration Vec2    `json:"acceleration"`
	Mass         float64 `json:"mass"`

	Params    Params    `json:"params"`
	Overrides Overrides `json:"overrides"`
	Launch    Launch    `json:"launch"`
	Forces    Forces    `json:"forces"`

	Trace    []Vec2 `json:"trace"`
	Active   bool   `json:"active"`
	Grounded bool   `json:"grounded"`
}

// NewObject returns an active object at rest at the origin.
func NewObject(id string, mt MotionType, role Role, mass float64) *Object {
	return &Object{
		ID:         id,
		MotionType: mt,
		Role:       role,
		Mass:       NormalizeMass(mass),
		Trace:      make([]Vec2, 0, 64),
		Active:     true,
	}
}

// NormalizeMass clamps non-positive masses to 1.
func NormalizeMass(m float64) float64 {
	if m <= 0 {
		return 1
	}
	return m
}

// SetMass updates the mass, clamping non-positive values.
func (o *Object) SetMass(m float64) { o.Mass = NormalizeMass(m) }

// Reinitialize reruns the motion-law initializer from the object's launch
// parameters. Static objects keep their position.
func (o *Object) Reinitialize(env Environment) {
	o.Position, o.Velocity = Initialize(o.MotionType, o.Launch, env, o.Position)
	o.Acceleration = Vec2{}
	o.Grounded = false
}

// Record appends the current position to the trace, dropping the oldest
// entry once MaxTrace is exceeded.
func (o *Object) Record() {
	o.Trace = append(o.Trace, o.Position)
	if len(o.Trace) > MaxTrace {
		n := copy(o.Trace, o.Trace[len(o.Trace)-MaxTrace:])
		o.Trace = o.Trace[:n]
	}
}

func (o *Object) ClearTrace() { o.Trace = o.Trace[:0] }

// Clone returns a deep copy sharing no memory with o.
func (o *Object) Clone() *Object {
	c := *o
	c.Trace = make([]Vec2, len(o.Trace))
	copy(c.Trace, o.Trace)
	c.Overrides = o.Overrides.clone()
	return &c
}

func ptr(v float64) *float64 { return &v }
