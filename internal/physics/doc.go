// Package physics provides the point-mass model of the sandbox.
//
// Every simulated body is an [Object] tagged with a [MotionType]. The
// motion type selects, as a closed variant set, three pure laws:
//
//   - [Initialize]: the initial position and velocity for a launch
//   - [ComputeForces]: the instantaneous force decomposition
//   - [Constrain]: the post-integration boundary correction
//
// None of these read any object other than the one passed in. Bodies
// interact only through the dedicated collision resolver.
//
// # Example
//
//	env := physics.DefaultEnvironment()
//	obj := physics.NewObject("ball", physics.Projectile, physics.Auxiliary, 1)
//	obj.Launch = physics.Launch{V0: 20, AngleDeg: 45}
//	obj.Reinitialize(env)
//	f := physics.ComputeForces(obj)
package physics
