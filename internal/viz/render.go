package viz

import (
	"math"

	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/scene"
	"github.com/san-kum/kinelab/internal/statics"
)

const (
	velocityScale = 0.25 // seconds of travel drawn per velocity arrow
	accelScale    = 0.1
	forceScale    = 0.1 // meters per newton

	bodyRadius     = 2
	selectedRadius = 3
	arrowHead      = 3
)

var (
	leverPivot  = physics.Vec2{X: 5, Y: 1}
	forceOrigin = physics.Vec2{X: 5, Y: 3}
)

// Options selects the overlays drawn on top of the bodies.
type Options struct {
	Trace    bool
	Velocity bool
	Accel    bool
	Grid     bool
}

func OptionsFrom(p scene.ParameterSet) Options {
	return Options{Trace: p.ShowTrace, Velocity: p.ShowVel, Accel: p.ShowAcc, Grid: p.ShowGrid}
}

// Renderer draws snapshots onto a braille canvas through a camera.
type Renderer struct {
	Canvas *Canvas
	Camera *Camera
}

// NewRenderer returns a renderer for a w x h cell canvas.
func NewRenderer(w, h int) *Renderer {
	c := NewCanvas(w, h)
	dw, dh := c.Dots()
	return &Renderer{Canvas: c, Camera: NewCamera(dw, dh, 6)}
}

// Render clears the canvas, draws sn and returns the canvas text.
func (r *Renderer) Render(sn scene.Snapshot, opts Options) string {
	r.Canvas.Clear()
	if opts.Grid {
		r.drawGrid()
	}
	r.drawGround(sn.GroundY)

	switch sn.Scenario {
	case scene.Collision1D:
		r.drawCollision(sn)
	case scene.Lever:
		r.drawLever(sn.Lever)
	case scene.Force:
		r.drawComposition(sn.Composition)
	}

	for _, o := range sn.Objects {
		r.drawObject(o, sn, opts, o.ID == sn.SelectedID)
	}
	return r.Canvas.String()
}

func (r *Renderer) drawGrid() {
	step := 1.0
	for step*r.Camera.Scale < 6 {
		step *= 5
	}
	dw, dh := r.Canvas.Dots()
	lo := r.Camera.Unproject(0, dh)
	hi := r.Camera.Unproject(dw, 0)
	for x := math.Floor(lo.X/step) * step; x <= hi.X; x += step {
		for y := math.Floor(lo.Y/step) * step; y <= hi.Y; y += step {
			r.Canvas.Set(r.Camera.Project(physics.Vec2{X: x, Y: y}))
		}
	}
}

func (r *Renderer) drawGround(groundY float64) {
	dw, _ := r.Canvas.Dots()
	_, y := r.Camera.Project(physics.Vec2{Y: groundY})
	r.Canvas.Line(0, y, dw-1, y)
}

func (r *Renderer) drawObject(o physics.Object, sn scene.Snapshot, opts Options, selected bool) {
	if opts.Trace {
		for _, p := range o.Trace {
			r.Canvas.Set(r.Camera.Project(p))
		}
	}

	if o.MotionType == physics.Spring {
		r.drawSpring(o, sn.SpringY)
	}

	x, y := r.Camera.Project(o.Position)
	rad := bodyRadius
	if selected {
		rad = selectedRadius
	}
	r.Canvas.Disc(x, y, rad)

	if opts.Velocity && o.MotionType != physics.Static {
		r.arrow(o.Position, o.Position.Add(o.Velocity.Scale(velocityScale)))
	}
	if opts.Accel && o.MotionType != physics.Static {
		r.arrow(o.Position, o.Position.Add(o.Acceleration.Scale(accelScale)))
	}
}

// drawSpring draws a zig-zag coil from the wall at x=0 to the body and a
// dashed marker at the equilibrium position.
func (r *Renderer) drawSpring(o physics.Object, springY float64) {
	wx, wy := r.Camera.Project(physics.Vec2{Y: springY})
	bx, _ := r.Camera.Project(o.Position)
	r.Canvas.Line(wx, wy-4, wx, wy+4)

	const coils = 8
	px, py := wx, wy
	for i := 1; i <= coils*2; i++ {
		nx := wx + (bx-wx)*i/(coils*2)
		ny := wy
		if i < coils*2 {
			ny = wy + 2*(1-2*(i%2))
		}
		r.Canvas.Line(px, py, nx, ny)
		px, py = nx, ny
	}

	ex, _ := r.Camera.Project(physics.Vec2{X: o.Params.EquilibriumX})
	for dy := -4; dy <= 4; dy += 2 {
		r.Canvas.Set(ex, wy+dy)
	}
}

func (r *Renderer) drawCollision(sn scene.Snapshot) {
	p := sn.Collision
	y := sn.GroundY + 0.5
	for _, b := range []struct{ x, m float64 }{{p.X1, p.M1}, {p.X2, p.M2}} {
		cx, cy := r.Camera.Project(physics.Vec2{X: b.x, Y: y})
		r.Canvas.Disc(cx, cy, massRadius(b.m))
	}
}

func massRadius(m float64) int {
	return min(5, 1+int(math.Sqrt(m)))
}

func (r *Renderer) drawLever(l statics.Lever) {
	tilt := 0.0
	switch l.Balance() {
	case statics.Counterclockwise:
		tilt = 10 * math.Pi / 180
	case statics.Clockwise:
		tilt = -10 * math.Pi / 180
	}
	dir := physics.Vec2{X: math.Cos(tilt), Y: math.Sin(tilt)}

	left := leverPivot.Sub(dir.Scale(l.D1))
	right := leverPivot.Add(dir.Scale(l.D2))
	r.segment(left, right)

	px, py := r.Camera.Project(leverPivot)
	r.Canvas.Line(px, py, px-3, py+5)
	r.Canvas.Line(px, py, px+3, py+5)
	r.Canvas.Line(px-3, py+5, px+3, py+5)

	r.arrow(left, left.Add(physics.Vec2{Y: -l.F1 * forceScale}))
	r.arrow(right, right.Add(physics.Vec2{Y: -l.F2 * forceScale}))
}

func (r *Renderer) drawComposition(c statics.Composition) {
	v1, v2 := c.Components()
	r.arrow(forceOrigin, forceOrigin.Add(v1.Scale(forceScale)))
	r.arrow(forceOrigin, forceOrigin.Add(v2.Scale(forceScale)))

	res := c.Resultant()
	end := forceOrigin.Add(res.Scale(forceScale))
	r.arrow(forceOrigin, end)

	// parallelogram
	a, b := r.Camera.Project(forceOrigin.Add(v1.Scale(forceScale)))
	ex, ey := r.Camera.Project(end)
	dashLine(r.Canvas, a, b, ex, ey)
	a, b = r.Camera.Project(forceOrigin.Add(v2.Scale(forceScale)))
	dashLine(r.Canvas, a, b, ex, ey)
}

func (r *Renderer) segment(from, to physics.Vec2) {
	x0, y0 := r.Camera.Project(from)
	x1, y1 := r.Camera.Project(to)
	r.Canvas.Line(x0, y0, x1, y1)
}

func (r *Renderer) arrow(from, to physics.Vec2) {
	x0, y0 := r.Camera.Project(from)
	x1, y1 := r.Camera.Project(to)
	if x0 == x1 && y0 == y1 {
		return
	}
	r.Canvas.Line(x0, y0, x1, y1)

	ang := math.Atan2(float64(y1-y0), float64(x1-x0))
	for _, side := range []float64{-1, 1} {
		a := ang + math.Pi - side*math.Pi/6
		hx := x1 + int(math.Round(arrowHead*math.Cos(a)))
		hy := y1 + int(math.Round(arrowHead*math.Sin(a)))
		r.Canvas.Line(x1, y1, hx, hy)
	}
}

func dashLine(c *Canvas, x0, y0, x1, y1 int) {
	n := max(absInt(x1-x0), absInt(y1-y0))
	for i := 0; i <= n; i++ {
		if (i/2)%2 != 0 {
			continue
		}
		x := x0 + (x1-x0)*i/max(n, 1)
		y := y0 + (y1-y0)*i/max(n, 1)
		c.Set(x, y)
	}
}
