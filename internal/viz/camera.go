package viz

import (
	"math"

	"github.com/san-kum/kinelab/internal/physics"
)

const (
	DefaultScale = 6.0
	MinScale     = 5.0
	MaxScale     = 2000.0

	zoomStep = 1.25
)

// Camera maps world meters onto canvas dots. The world origin sits at
// Origin (in dots) and y grows upward.
type Camera struct {
	Scale  float64
	Origin physics.Vec2

	home physics.Vec2
}

// NewCamera places the world origin margin dots from the bottom-left of a
// canvas of w x h dots.
func NewCamera(w, h, margin int) *Camera {
	home := physics.Vec2{X: float64(margin), Y: float64(h - margin)}
	return &Camera{Scale: DefaultScale, Origin: home, home: home}
}

// Project returns the dot under world point p.
func (c *Camera) Project(p physics.Vec2) (int, int) {
	x := c.Origin.X + p.X*c.Scale
	y := c.Origin.Y - p.Y*c.Scale
	return int(math.Round(x)), int(math.Round(y))
}

// Unproject returns the world point under dot (x, y).
func (c *Camera) Unproject(x, y int) physics.Vec2 {
	return physics.Vec2{
		X: (float64(x) - c.Origin.X) / c.Scale,
		Y: (c.Origin.Y - float64(y)) / c.Scale,
	}
}

// Pan shifts the view by (dx, dy) dots.
func (c *Camera) Pan(dx, dy int) {
	c.Origin.X += float64(dx)
	c.Origin.Y += float64(dy)
}

func (c *Camera) ZoomIn()  { c.SetScale(c.Scale * zoomStep) }
func (c *Camera) ZoomOut() { c.SetScale(c.Scale / zoomStep) }

// SetScale sets pixels per meter, clamped to [MinScale, MaxScale].
func (c *Camera) SetScale(s float64) {
	c.Scale = min(MaxScale, max(MinScale, s))
}

func (c *Camera) Reset() {
	c.Scale = DefaultScale
	c.Origin = c.home
}
