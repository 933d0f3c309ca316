package scene_test

import (
	"math"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/scene"
)

const frame = 1.0 / 60

func newScene(sc scene.Scenario) (*scene.Scene, scene.ParameterSet) {
	p := scene.DefaultParams()
	p.Scenario = sc
	s := scene.New(physics.DefaultEnvironment(), zerolog.Nop())
	s.Reset(p)
	return s, p
}

func primary(s *scene.Scene) physics.Object {
	o, ok := s.Snapshot().Primary()
	ExpectWithOffset(1, ok).To(BeTrue())
	return o
}

var _ = Describe("Scene", func() {
	Describe("Reset", func() {
		It("creates a projectile primary from the launch parameters", func() {
			s, _ := newScene(scene.Projectile)
			o := primary(s)

			Expect(o.Role).To(Equal(physics.Primary))
			Expect(o.MotionType).To(Equal(physics.Projectile))
			Expect(o.Position).To(Equal(physics.Vec2{}))
			Expect(o.Velocity.X).To(BeNumerically("~", 14.142, 1e-3))
			Expect(o.Velocity.Y).To(BeNumerically("~", 14.142, 1e-3))
			Expect(s.Time()).To(BeZero())
		})

		DescribeTable("initial primary state per scenario",
			func(sc scene.Scenario, pos, vel physics.Vec2) {
				s, _ := newScene(sc)
				o := primary(s)
				Expect(o.Position.X).To(BeNumerically("~", pos.X, 1e-12))
				Expect(o.Position.Y).To(BeNumerically("~", pos.Y, 1e-12))
				Expect(o.Velocity.X).To(BeNumerically("~", vel.X, 1e-12))
				Expect(o.Velocity.Y).To(BeNumerically("~", vel.Y, 1e-12))
			},
			Entry("freefall", scene.Freefall, physics.Vec2{X: 6, Y: 6}, physics.Vec2{}),
			Entry("spring", scene.Spring, physics.Vec2{X: 6, Y: physics.DefaultSpringY}, physics.Vec2{}),
			Entry("uniform", scene.Uniform, physics.Vec2{X: 1, Y: 1}, physics.Vec2{X: 5}),
			Entry("uniform-accel", scene.UniformAccel, physics.Vec2{X: 1, Y: 1}, physics.Vec2{}),
		)

		DescribeTable("scenarios without a free body have no primary",
			func(sc scene.Scenario) {
				s, _ := newScene(sc)
				Expect(s.PrimaryID()).To(BeEmpty())
				Expect(s.Snapshot().Objects).To(BeEmpty())
			},
			Entry("collision", scene.Collision1D),
			Entry("lever", scene.Lever),
			Entry("force", scene.Force),
		)

		It("falls back to projectile for an unknown scenario", func() {
			s, _ := newScene(scene.Scenario("orbit"))
			Expect(s.Scenario()).To(Equal(scene.Projectile))
			Expect(s.PrimaryID()).NotTo(BeEmpty())
		})

		It("clamps a non-positive mass to 1", func() {
			p := scene.DefaultParams()
			p.MassKg = -2
			s := scene.New(physics.DefaultEnvironment(), zerolog.Nop())
			s.Reset(p)
			Expect(primary(s).Mass).To(Equal(1.0))
		})

		It("discards auxiliary objects, selection and time", func() {
			s, p := newScene(scene.Projectile)
			id := s.AddObject(physics.Vec2{X: 2, Y: 2}, p, "")
			s.SelectObject(id)
			s.Step(frame, p)

			s.Reset(p)
			snap := s.Snapshot()
			Expect(snap.Objects).To(HaveLen(1))
			Expect(snap.SelectedID).To(BeEmpty())
			Expect(snap.Time).To(BeZero())
			Expect(snap.Objects[0].Trace).To(BeEmpty())
		})

		It("copies the lever and composition inputs", func() {
			p := scene.DefaultParams()
			p.Scenario = scene.Lever
			p.LevF1, p.LevD1, p.LevF2, p.LevD2 = 30, 1, 15, 2
			p.FcompF1, p.FcompA1 = 12, 30
			s := scene.New(physics.DefaultEnvironment(), zerolog.Nop())
			s.Reset(p)

			snap := s.Snapshot()
			Expect(snap.Lever.F1).To(Equal(30.0))
			Expect(snap.Lever.D2).To(Equal(2.0))
			Expect(snap.Composition.F1).To(Equal(12.0))
			Expect(snap.Composition.Angle1).To(Equal(30.0))
		})
	})

	Describe("Step", func() {
		It("advances time by dt", func() {
			s, p := newScene(scene.Freefall)
			for i := 0; i < 10; i++ {
				s.Step(0.02, p)
			}
			Expect(s.Time()).To(BeNumerically("~", 0.2, 1e-12))
		})

		It("lands a projectile after about 2·v0·sinθ/g", func() {
			s, p := newScene(scene.Projectile)
			id := s.PrimaryID()

			landed := false
			for i := 0; i < 1000; i++ {
				snap := s.Step(frame, p)
				o, _ := snap.Object(id)
				if o.Grounded {
					landed = true
					break
				}
			}
			Expect(landed).To(BeTrue())
			want := 2 * 20 * math.Sin(math.Pi/4) / 9.8
			Expect(s.Time()).To(BeNumerically("~", want, 0.05))
		})

		It("never lets a grounded body sink below the ground", func() {
			s, p := newScene(scene.Projectile)
			p.DragC = 0.1
			id := s.AddObject(physics.Vec2{X: 3, Y: 0}, p, physics.Freefall)
			reached := map[string]bool{}

			for i := 0; i < 600; i++ {
				snap := s.Step(frame, p)
				for _, o := range snap.Objects {
					if reached[o.ID] {
						Expect(o.Position.Y).To(BeNumerically(">=", snap.GroundY))
					}
					if o.Grounded {
						reached[o.ID] = true
						Expect(o.Velocity.Y).To(BeNumerically(">=", 0))
					}
				}
			}
			Expect(reached).To(HaveKey(id))
			Expect(reached).To(HaveKey(s.PrimaryID()))
		})

		It("keeps uniform velocity exactly", func() {
			s, p := newScene(scene.Uniform)
			start := primary(s).Velocity
			for i := 0; i < 2000; i++ {
				s.Step(frame, p)
			}
			Expect(primary(s).Velocity).To(Equal(start))
		})

		It("bounds every trace", func() {
			s, p := newScene(scene.Uniform)
			s.AddObject(physics.Vec2{X: 0, Y: 3}, p, physics.UniformAccel)
			for i := 0; i < physics.MaxTrace+300; i++ {
				s.Step(frame, p)
			}
			for _, o := range s.Snapshot().Objects {
				Expect(len(o.Trace)).To(BeNumerically("<=", physics.MaxTrace))
			}
		})

		It("re-reads live environment values every tick", func() {
			s, p := newScene(scene.Freefall)
			p.G = 0
			s.Step(frame, p)
			Expect(primary(s).Velocity.Y).To(BeZero())

			p.G = 20
			snap := s.Step(frame, p)
			o, _ := snap.Primary()
			Expect(o.Acceleration.Y).To(BeNumerically("~", -20, 1e-12))
			Expect(o.Forces.Gravity.Y).To(BeNumerically("~", -20, 1e-12))
		})

		It("skips inactive objects", func() {
			s, p := newScene(scene.Uniform)
			id := s.PrimaryID()
			off := false
			s.UpdateObjectParams(id, scene.ObjectUpdate{Active: &off})
			before := primary(s).Position
			s.Step(frame, p)
			Expect(primary(s).Position).To(Equal(before))
			Expect(s.Len()).To(Equal(1))
		})

		It("leaves static objects in place", func() {
			s, p := newScene(scene.Force)
			id := s.AddObject(physics.Vec2{X: 3, Y: 2}, p, "")
			for i := 0; i < 30; i++ {
				s.Step(frame, p)
			}
			o, ok := s.Object(id)
			Expect(ok).To(BeTrue())
			Expect(o.MotionType).To(Equal(physics.Static))
			Expect(o.Position).To(Equal(physics.Vec2{X: 3, Y: 2}))
			Expect(o.Trace).To(BeEmpty())
		})
	})

	Describe("Advance", func() {
		It("splits a coarse dt into clamped slices", func() {
			coarse, p := newScene(scene.Projectile)
			fine, _ := newScene(scene.Projectile)

			got := coarse.Advance(1, p)
			var want scene.Snapshot
			for i := 0; i < 20; i++ {
				want = fine.Step(scene.MaxFrameDt, p)
			}

			Expect(coarse.Time()).To(BeNumerically("~", 1, 1e-9))
			g, _ := got.Primary()
			w, _ := want.Primary()
			Expect(g.Position.X).To(BeNumerically("~", w.Position.X, 1e-9))
			Expect(g.Position.Y).To(BeNumerically("~", w.Position.Y, 1e-9))
			Expect(g.Trace).To(HaveLen(20))
		})

		It("keeps projectile energy close to the clamped-step error", func() {
			s, p := newScene(scene.Projectile)
			start := primary(s)
			e0 := 0.5*math.Pow(start.Velocity.Len(), 2) + 9.8*start.Position.Y

			snap := s.Advance(1, p)
			o, _ := snap.Primary()
			e1 := 0.5*math.Pow(o.Velocity.Len(), 2) + 9.8*o.Position.Y
			Expect(math.Abs(e1-e0) / e0).To(BeNumerically("<", 0.05))
		})

		It("leaves the scene untouched for a non-positive dt", func() {
			s, p := newScene(scene.Freefall)
			before := s.Snapshot()
			s.Advance(0, p)
			s.Advance(-1, p)
			Expect(cmp.Diff(before, s.Snapshot())).To(BeEmpty())
		})
	})

	Describe("collision scenario", func() {
		var (
			s *scene.Scene
			p scene.ParameterSet
		)

		BeforeEach(func() {
			p = scene.DefaultParams()
			p.Scenario = scene.Collision1D
			p.ColM1, p.ColV1, p.ColM2, p.ColV2, p.ColE = 2, 5, 3, -3, 1
			s = scene.New(physics.DefaultEnvironment(), zerolog.Nop())
			s.Reset(p)
		})

		stepUntilResolved := func() scene.Snapshot {
			for i := 0; i < 10000; i++ {
				snap := s.Step(frame, p)
				if snap.Collision.Resolved {
					return snap
				}
			}
			Fail("collision never resolved")
			return scene.Snapshot{}
		}

		It("conserves momentum and energy for e=1", func() {
			pre := s.Snapshot().Collision
			post := stepUntilResolved().Collision

			Expect(post.Momentum()).To(BeNumerically("~", pre.Momentum(), 1e-9))
			Expect(post.KineticEnergy()).To(BeNumerically("~", pre.KineticEnergy(), 1e-9))
			Expect(post.V1).To(BeNumerically("~", -4.6, 1e-9))
			Expect(post.V2).To(BeNumerically("~", 3.4, 1e-9))
			Expect(post.X2).To(BeNumerically(">", post.X1))
		})

		It("sticks together for e=0", func() {
			p.ColE = 0
			s.Reset(p)
			post := stepUntilResolved().Collision
			Expect(post.V1).To(Equal(post.V2))
		})

		It("resolves once and keeps moving at post-collision velocities", func() {
			post := stepUntilResolved().Collision
			for i := 0; i < 120; i++ {
				s.Step(frame, p)
			}
			later := s.Snapshot().Collision
			Expect(later.Resolved).To(BeTrue())
			Expect(later.V1).To(Equal(post.V1))
			Expect(later.V2).To(Equal(post.V2))
			Expect(later.X1).To(BeNumerically("~", post.X1+120*frame*post.V1, 1e-9))
		})

		It("re-arms on reset", func() {
			stepUntilResolved()
			s.Reset(p)
			Expect(s.Snapshot().Collision.Resolved).To(BeFalse())
		})
	})

	Describe("objects", func() {
		var (
			s *scene.Scene
			p scene.ParameterSet
		)

		BeforeEach(func() {
			s, p = newScene(scene.Projectile)
		})

		It("adds auxiliary objects at the given position", func() {
			id := s.AddObject(physics.Vec2{X: 4, Y: 5}, p, "")
			o, ok := s.Object(id)
			Expect(ok).To(BeTrue())
			Expect(o.Role).To(Equal(physics.Auxiliary))
			Expect(o.MotionType).To(Equal(physics.Projectile))
			Expect(o.Position).To(Equal(physics.Vec2{X: 4, Y: 5}))
			Expect(o.Velocity.X).To(BeNumerically("~", 14.142, 1e-3))
		})

		It("pins spring objects to the spring axis", func() {
			id := s.AddObject(physics.Vec2{X: 4, Y: 5}, p, physics.Spring)
			o, _ := s.Object(id)
			Expect(o.Position).To(Equal(physics.Vec2{X: 4, Y: physics.DefaultSpringY}))
		})

		It("adds unknown motion types as static objects", func() {
			id := s.AddObject(physics.Vec2{X: 4, Y: 5}, p, physics.MotionType("orbit"))
			o, _ := s.Object(id)
			Expect(o.MotionType).To(Equal(physics.Static))
			Expect(o.Position).To(Equal(physics.Vec2{X: 4, Y: 5}))
			Expect(o.Velocity).To(Equal(physics.Vec2{}))

			s.Step(frame, p)
			o, _ = s.Object(id)
			Expect(o.Position).To(Equal(physics.Vec2{X: 4, Y: 5}))
		})

		It("generates unique ids", func() {
			seen := map[string]bool{s.PrimaryID(): true}
			for i := 0; i < 50; i++ {
				id := s.AddObject(physics.Vec2{}, p, "")
				Expect(seen).NotTo(HaveKey(id))
				seen[id] = true
			}
		})

		It("keeps auxiliary objects across ticks", func() {
			s.AddObject(physics.Vec2{X: 1, Y: 1}, p, physics.Uniform)
			for i := 0; i < 10; i++ {
				s.Step(frame, p)
			}
			Expect(s.Len()).To(Equal(2))
		})

		It("removes auxiliary objects but not the primary", func() {
			id := s.AddObject(physics.Vec2{}, p, "")
			s.RemoveObject(id)
			s.RemoveObject(s.PrimaryID())
			s.RemoveObject("missing")

			_, ok := s.Object(id)
			Expect(ok).To(BeFalse())
			Expect(s.Len()).To(Equal(1))
		})

		It("clears auxiliary objects and the selection", func() {
			a := s.AddObject(physics.Vec2{}, p, "")
			s.AddObject(physics.Vec2{}, p, "")
			s.SelectObject(a)
			s.ClearObjects()

			snap := s.Snapshot()
			Expect(snap.Objects).To(HaveLen(1))
			Expect(snap.Objects[0].Role).To(Equal(physics.Primary))
			Expect(s.SelectedObject()).To(BeNil())
		})

		It("selects by id and ignores unknown ids", func() {
			id := s.AddObject(physics.Vec2{X: 1}, p, "")
			s.SelectObject(id)
			s.SelectObject("stale")
			Expect(s.SelectedObject()).NotTo(BeNil())
			Expect(s.SelectedObject().ID).To(Equal(id))

			s.SelectObject("")
			Expect(s.SelectedObject()).To(BeNil())
		})

		It("resolves a removed selection to none", func() {
			id := s.AddObject(physics.Vec2{X: 1}, p, "")
			s.SelectObject(id)
			s.RemoveObject(id)
			Expect(s.SelectedObject()).To(BeNil())
			_, ok := s.Snapshot().Selected()
			Expect(ok).To(BeFalse())
		})

		It("returns a copy of the selected object", func() {
			id := s.AddObject(physics.Vec2{X: 1}, p, "")
			s.SelectObject(id)
			s.SelectedObject().Position.X = 99
			Expect(s.SelectedObject().Position.X).To(Equal(1.0))
		})

		It("merges overrides and clamps mass on update", func() {
			id := s.AddObject(physics.Vec2{X: 1, Y: 8}, p, physics.Freefall)
			g, m := 1.6, 0.0
			s.UpdateObjectParams(id, scene.ObjectUpdate{
				Mass:      &m,
				Overrides: physics.Overrides{Gravity: &g},
			})
			snap := s.Step(frame, p)
			o, _ := snap.Object(id)
			Expect(o.Mass).To(Equal(1.0))
			Expect(o.Acceleration.Y).To(BeNumerically("~", -1.6, 1e-12))

			pr, _ := snap.Primary()
			Expect(pr.Acceleration.Y).To(BeNumerically("~", -9.8, 1e-12))
		})

		It("reruns the initializer when asked", func() {
			id := s.AddObject(physics.Vec2{X: 7, Y: 7}, p, "")
			launch := physics.Launch{V0: 10, AngleDeg: 90}
			s.UpdateObjectParams(id, scene.ObjectUpdate{Launch: &launch, ResetState: true})

			o, _ := s.Object(id)
			Expect(o.Position).To(Equal(physics.Vec2{}))
			Expect(o.Velocity.X).To(BeNumerically("~", 0, 1e-9))
			Expect(o.Velocity.Y).To(BeNumerically("~", 10, 1e-9))
		})

		It("changes motion type in place", func() {
			id := s.AddObject(physics.Vec2{X: 2, Y: 2}, p, "")
			mt := physics.Static
			s.UpdateObjectParams(id, scene.ObjectUpdate{MotionType: &mt})
			s.Step(frame, p)
			o, _ := s.Object(id)
			Expect(o.Position).To(Equal(physics.Vec2{X: 2, Y: 2}))
			Expect(o.Velocity).To(Equal(physics.Vec2{}))
		})

		It("ignores an unknown motion type in an update", func() {
			id := s.AddObject(physics.Vec2{X: 2, Y: 2}, p, physics.Uniform)
			mt := physics.MotionType("orbit")
			mass := 3.0
			s.UpdateObjectParams(id, scene.ObjectUpdate{MotionType: &mt, Mass: &mass})
			o, _ := s.Object(id)
			Expect(o.MotionType).To(Equal(physics.Uniform))
			Expect(o.Mass).To(Equal(3.0))
		})

		It("ignores updates to unknown ids", func() {
			before := s.Snapshot()
			m := 5.0
			s.UpdateObjectParams("missing", scene.ObjectUpdate{Mass: &m, ResetState: true})
			Expect(cmp.Diff(before, s.Snapshot())).To(BeEmpty())
		})

		It("clears traces without touching kinematics", func() {
			s.AddObject(physics.Vec2{X: 1, Y: 1}, p, physics.Uniform)
			for i := 0; i < 20; i++ {
				s.Step(frame, p)
			}
			before := s.Snapshot()
			s.ClearTrace()
			after := s.Snapshot()
			for i, o := range after.Objects {
				Expect(o.Trace).To(BeEmpty())
				Expect(o.Position).To(Equal(before.Objects[i].Position))
				Expect(o.Velocity).To(Equal(before.Objects[i].Velocity))
			}
		})
	})

	Describe("Snapshot", func() {
		It("is isolated from later mutation in both directions", func() {
			s, p := newScene(scene.Projectile)
			s.AddObject(physics.Vec2{X: 1, Y: 4}, p, physics.Freefall)
			for i := 0; i < 5; i++ {
				s.Step(frame, p)
			}

			mutated := s.Snapshot()
			reference := s.Snapshot()
			Expect(cmp.Diff(mutated, reference)).To(BeEmpty())

			mutated.Objects[0].Trace[0] = physics.Vec2{X: -1, Y: -1}
			mutated.Objects[0].Position.X = 1e6
			mutated.Objects[1].Trace = append(mutated.Objects[1].Trace, physics.Vec2{})
			mutated.Objects = mutated.Objects[:1]
			mutated.Collision.Resolved = true
			Expect(cmp.Diff(reference, s.Snapshot())).To(BeEmpty())

			traceLen := len(reference.Objects[0].Trace)
			s.Step(frame, p)
			Expect(reference.Objects[0].Trace).To(HaveLen(traceLen))
		})

		It("echoes environment and scenario", func() {
			env := physics.DefaultEnvironment()
			env.GroundY = -1
			env.SpringY = 2.5
			s := scene.New(env, zerolog.Nop())
			p := scene.DefaultParams()
			p.Scenario = scene.Spring
			s.Reset(p)

			snap := s.Snapshot()
			Expect(snap.Scenario).To(Equal(scene.Spring))
			Expect(snap.GroundY).To(Equal(-1.0))
			Expect(snap.SpringY).To(Equal(2.5))
			Expect(snap.Objects[0].Position.Y).To(Equal(2.5))
		})
	})

	Describe("FrameDt", func() {
		DescribeTable("clamps then scales",
			func(raw, scale, want float64) {
				Expect(scene.FrameDt(raw, scale)).To(BeNumerically("~", want, 1e-12))
			},
			Entry("small frame", 1.0/60, 1.0, 1.0/60),
			Entry("stalled frame", 0.5, 1.0, 0.05),
			Entry("slow motion", 0.5, 0.5, 0.025),
			Entry("fast forward", 0.02, 3.0, 0.06),
			Entry("negative", -0.1, 1.0, 0.0),
		)
	})
})
