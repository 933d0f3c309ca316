// Package scene owns the state of one sandbox session and exposes the
// engine operations driven by a presentation layer.
//
// A [Scene] holds the objects of the active scenario together with the
// scenario-specific structures (collision pair, lever, force composition).
// It is mutated only through its methods:
//
//   - [Scene.Reset]: rebuild the scene for a [ParameterSet]
//   - [Scene.Step]: advance by dt and return a [Snapshot]
//   - [Scene.AddObject], [Scene.RemoveObject], [Scene.ClearObjects]
//   - [Scene.SelectObject], [Scene.UpdateObjectParams], [Scene.ClearTrace]
//
// Every read crossing the package boundary is a deep copy, so renderers
// and charts never alias live state.
//
// # Thread Safety
//
// Scene instances are NOT thread-safe. A single driver issues one call at
// a time; edits between ticks are plain last-writer-wins mutations.
package scene
