package scene

import (
	"github.com/san-kum/kinelab/internal/collision"
	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/statics"
)

// Snapshot is a deep copy of the scene at one instant. It shares no
// memory with the scene it was taken from.
type Snapshot struct {
	Time     float64  `json:"time"`
	Scenario Scenario `json:"scenario"`
	GroundY  float64  `json:"ground_y"`
	SpringY  float64  `json:"spring_y"`

	Objects    []physics.Object `json:"objects"`
	SelectedID string           `json:"selected_id"`

	Collision   collision.Pair      `json:"collision"`
	Lever       statics.Lever       `json:"lever"`
	Composition statics.Composition `json:"composition"`
}

// Snapshot returns the current state without advancing time.
func (s *Scene) Snapshot() Snapshot {
	objs := make([]physics.Object, 0, len(s.order))
	for _, id := range s.order {
		objs = append(objs, *s.objects[id].Clone())
	}
	return Snapshot{
		Time:        s.time,
		Scenario:    s.scenario,
		GroundY:     s.env.GroundY,
		SpringY:     s.env.SpringY,
		Objects:     objs,
		SelectedID:  s.selectedID,
		Collision:   s.collision,
		Lever:       s.lever,
		Composition: s.composition,
	}
}

// Object looks up an object by id.
func (sn Snapshot) Object(id string) (physics.Object, bool) {
	for _, o := range sn.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return physics.Object{}, false
}

// Primary returns the primary object, if the scenario has one.
func (sn Snapshot) Primary() (physics.Object, bool) {
	for _, o := range sn.Objects {
		if o.Role == physics.Primary {
			return o, true
		}
	}
	return physics.Object{}, false
}

// Selected returns the selected object, if the selection resolves.
func (sn Snapshot) Selected() (physics.Object, bool) {
	if sn.SelectedID == "" {
		return physics.Object{}, false
	}
	return sn.Object(sn.SelectedID)
}
