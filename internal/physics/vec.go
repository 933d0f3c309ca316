package physics

import "math"

// Vec2 is a 2D vector in world units (meters, m/s, m/s², newtons).
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// FromPolar builds a vector of the given magnitude pointing deg degrees
// counterclockwise from +x.
func FromPolar(mag, deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{mag * math.Cos(rad), mag * math.Sin(rad)}
}
