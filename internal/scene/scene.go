package scene

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/san-kum/kinelab/internal/collision"
	"github.com/san-kum/kinelab/internal/integrators"
	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/statics"
)

// Scene is the state of one sandbox session.
type Scene struct {
	log        zerolog.Logger
	integrator *integrators.Euler

	base  physics.Environment
	env   physics.Environment
	accel float64

	scenario Scenario
	time     float64

	objects    map[string]*physics.Object
	order      []string
	primaryID  string
	selectedID string

	collision   collision.Pair
	lever       statics.Lever
	composition statics.Composition
}

// New returns an empty scene using env for the values a parameter set
// does not carry (ground, spring axis, spring equilibrium). Call Reset
// before stepping.
func New(env physics.Environment, log zerolog.Logger) *Scene {
	return &Scene{
		log:        log.With().Str("component", "scene").Logger(),
		integrator: integrators.NewEuler(),
		base:       env,
		env:        env,
		scenario:   Projectile,
		objects:    make(map[string]*physics.Object),
	}
}

func (s *Scene) Scenario() Scenario { return s.scenario }
func (s *Scene) Time() float64      { return s.time }

// PrimaryID returns the id of the primary object, or "" when the
// scenario has none.
func (s *Scene) PrimaryID() string { return s.primaryID }

// Len returns the number of objects, primary included.
func (s *Scene) Len() int { return len(s.order) }

// Reset rebuilds the scene for p: time returns to 0, every object is
// discarded, the primary object (if the scenario has one) and the
// collision, lever and composition structures are recreated. An unknown
// scenario falls back to projectile.
func (s *Scene) Reset(p ParameterSet) {
	sc, ok := ParseScenario(string(p.Scenario))
	if !ok {
		s.log.Debug().Str("scenario", string(p.Scenario)).Msg("unknown scenario, using projectile")
		sc = Projectile
	}

	s.scenario = sc
	s.time = 0
	s.objects = make(map[string]*physics.Object)
	s.order = s.order[:0]
	s.primaryID = ""
	s.selectedID = ""
	s.applyLive(p)

	s.collision = p.Pair()
	s.lever = p.Lever()
	s.composition = p.Composition()

	if mt, ok := sc.MotionType(); ok {
		o := physics.NewObject(newID(), mt, physics.Primary, p.MassKg)
		o.Launch = p.Launch()
		o.Params = s.effective(o)
		o.Reinitialize(s.objectEnv(o))
		s.insert(o)
		s.primaryID = o.ID
	}

	s.log.Debug().
		Str("scenario", string(sc)).
		Str("primary", s.primaryID).
		Msg("scene reset")
}

// Step advances the scene by dt using the live environment values of p
// and returns the resulting snapshot. p never re-triggers initialization.
func (s *Scene) Step(dt float64, p ParameterSet) Snapshot {
	s.applyLive(p)

	if s.scenario == Collision1D {
		before := s.collision
		if s.collision.Advance(dt) {
			s.log.Debug().
				Float64("v1", before.V1).Float64("v2", before.V2).
				Float64("v1_post", s.collision.V1).Float64("v2_post", s.collision.V2).
				Float64("t", s.time+dt).
				Msg("collision resolved")
		}
	}

	for _, id := range s.order {
		o := s.objects[id]
		if !o.Active {
			continue
		}
		o.Params = s.effective(o)
		s.integrator.Step(o, s.env, dt)
	}

	s.time += dt
	return s.Snapshot()
}

// Advance moves the scene forward by dt in slices of at most MaxFrameDt,
// so a fixed-step driver with a coarse dt still integrates at the
// clamped rate.
func (s *Scene) Advance(dt float64, p ParameterSet) Snapshot {
	n, h := SubSteps(dt)
	if n == 0 {
		return s.Snapshot()
	}
	var sn Snapshot
	for i := 0; i < n; i++ {
		sn = s.Step(h, p)
	}
	return sn
}

// AddObject creates an auxiliary object at pos and returns its id. The
// velocity comes from the motion-law initializer for mt and p's launch
// parameters; an empty mt selects the current scenario's motion type, or
// static when the scenario has no free body. Unknown motion types are
// added as static.
func (s *Scene) AddObject(pos physics.Vec2, p ParameterSet, mt physics.MotionType) string {
	if mt == "" {
		mt, _ = s.scenario.MotionType()
	}
	if !mt.Valid() {
		s.log.Warn().Str("motion", string(mt)).Msg("unknown motion type, adding as static")
		mt = physics.Static
	}

	o := physics.NewObject(newID(), mt, physics.Auxiliary, p.MassKg)
	o.Launch = p.Launch()
	o.Params = s.effective(o)
	_, o.Velocity = physics.Initialize(mt, o.Launch, s.objectEnv(o), pos)
	o.Position = pos
	if mt == physics.Spring {
		o.Position.Y = s.env.SpringY
	}
	s.insert(o)

	s.log.Debug().
		Str("id", o.ID).
		Str("motion", string(mt)).
		Float64("x", pos.X).Float64("y", pos.Y).
		Msg("object added")
	return o.ID
}

// RemoveObject destroys an auxiliary object. Unknown ids and the primary
// object are ignored.
func (s *Scene) RemoveObject(id string) {
	o, ok := s.objects[id]
	if !ok || o.Role == physics.Primary {
		s.log.Trace().Str("id", id).Msg("remove ignored")
		return
	}
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug().Str("id", id).Msg("object removed")
}

// ClearObjects destroys every auxiliary object and clears the selection.
func (s *Scene) ClearObjects() {
	kept := s.order[:0]
	for _, id := range s.order {
		if s.objects[id].Role == physics.Primary {
			kept = append(kept, id)
			continue
		}
		delete(s.objects, id)
	}
	s.order = kept
	s.selectedID = ""
	s.log.Debug().Int("remaining", len(s.order)).Msg("objects cleared")
}

// SelectObject selects id, or clears the selection when id is "".
// Unknown ids leave the selection unchanged.
func (s *Scene) SelectObject(id string) {
	if id == "" {
		s.selectedID = ""
		return
	}
	if _, ok := s.objects[id]; !ok {
		s.log.Trace().Str("id", id).Msg("select ignored")
		return
	}
	s.selectedID = id
}

// SelectedObject returns a copy of the selected object, or nil when
// nothing is selected or the selection no longer resolves.
func (s *Scene) SelectedObject() *physics.Object {
	o, ok := s.objects[s.selectedID]
	if !ok {
		return nil
	}
	return o.Clone()
}

// Object returns a copy of the object with the given id.
func (s *Scene) Object(id string) (*physics.Object, bool) {
	o, ok := s.objects[id]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// ObjectUpdate is an edit applied to a single object between ticks. Nil
// fields are left unchanged.
type ObjectUpdate struct {
	Mass       *float64
	MotionType *physics.MotionType
	Position   *physics.Vec2
	Velocity   *physics.Vec2
	Launch     *physics.Launch
	Active     *bool
	Overrides  physics.Overrides

	// ResetState reruns the motion-law initializer after the merge.
	ResetState bool
}

// UpdateObjectParams merges u onto the object with the given id. Unknown
// ids and unknown motion types are ignored.
func (s *Scene) UpdateObjectParams(id string, u ObjectUpdate) {
	o, ok := s.objects[id]
	if !ok {
		s.log.Trace().Str("id", id).Msg("update ignored")
		return
	}

	if u.Mass != nil {
		o.SetMass(*u.Mass)
	}
	if u.MotionType != nil {
		if u.MotionType.Valid() {
			o.MotionType = *u.MotionType
		} else {
			s.log.Warn().Str("id", id).Str("motion", string(*u.MotionType)).Msg("motion type ignored")
		}
	}
	if u.Launch != nil {
		o.Launch = *u.Launch
	}
	if u.Position != nil {
		o.Position = *u.Position
	}
	if u.Velocity != nil {
		o.Velocity = *u.Velocity
	}
	if u.Active != nil {
		o.Active = *u.Active
	}
	o.Overrides.Merge(u.Overrides)
	o.Params = s.effective(o)

	if u.ResetState {
		o.Reinitialize(s.objectEnv(o))
	}
}

// ClearTrace empties every object's trace without touching its state.
func (s *Scene) ClearTrace() {
	for _, o := range s.objects {
		o.ClearTrace()
	}
}

func (s *Scene) insert(o *physics.Object) {
	s.objects[o.ID] = o
	s.order = append(s.order, o.ID)
}

func (s *Scene) applyLive(p ParameterSet) {
	s.env = p.Live(s.base)
	s.accel = p.UaAx
}

func (s *Scene) effective(o *physics.Object) physics.Params {
	return o.Overrides.Apply(s.env.Params(s.accel))
}

// objectEnv is the scene environment as seen by o's own overrides.
func (s *Scene) objectEnv(o *physics.Object) physics.Environment {
	env := s.env
	env.EquilibriumX = o.Params.EquilibriumX
	return env
}

func newID() string { return uuid.NewString() }
