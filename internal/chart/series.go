// Package chart keeps bounded time series of object quantities and plots
// them with asciigraph.
package chart

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// MaxPoints bounds every series.
const MaxPoints = 300

type Point struct {
	T float64
	V float64
}

// Series is a FIFO of the most recent MaxPoints samples.
type Series struct {
	Name   string
	Unit   string
	points []Point
	t      float64
}

func NewSeries(name, unit string) *Series {
	return &Series{Name: name, Unit: unit, points: make([]Point, 0, MaxPoints)}
}

// Push advances the series clock by dt and records v.
func (s *Series) Push(v, dt float64) {
	s.t += dt
	s.points = append(s.points, Point{T: s.t, V: v})
	if len(s.points) > MaxPoints {
		n := copy(s.points, s.points[len(s.points)-MaxPoints:])
		s.points = s.points[:n]
	}
}

func (s *Series) Reset() {
	s.points = s.points[:0]
	s.t = 0
}

func (s *Series) Len() int         { return len(s.points) }
func (s *Series) Elapsed() float64 { return s.t }

// Window returns the time span covered by the retained samples.
func (s *Series) Window() (from, to float64) {
	if len(s.points) == 0 {
		return 0, 0
	}
	return s.points[0].T, s.t
}

func (s *Series) Values() []float64 {
	out := make([]float64, len(s.points))
	for i, p := range s.points {
		out[i] = p.V
	}
	return out
}

// Last returns the newest value, or 0 for an empty series.
func (s *Series) Last() float64 {
	if len(s.points) == 0 {
		return 0
	}
	return s.points[len(s.points)-1].V
}

// Header summarises the newest value and the retained window, e.g.
// "speed 5.00 m/s  t 0.0..5.0s".
func (s *Series) Header() string {
	from, to := s.Window()
	v := fmt.Sprintf("%s %.2f", s.Name, s.Last())
	if s.Unit != "" {
		v += " " + s.Unit
	}
	return fmt.Sprintf("%s  t %.1f..%.1fs", v, from, to)
}

// Plot renders the series with the given height and width. An empty
// series renders as an empty string.
func (s *Series) Plot(width, height int) string {
	data := s.Values()
	if len(data) < 2 {
		return ""
	}
	caption := s.Name
	if s.Unit != "" {
		caption = fmt.Sprintf("%s (%s)", s.Name, s.Unit)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(2),
		asciigraph.Caption(caption),
	)
}
