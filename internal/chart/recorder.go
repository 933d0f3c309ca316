package chart

import (
	"github.com/san-kum/kinelab/internal/physics"
)

// Recorder feeds the speed and acceleration charts from one object per
// tick.
type Recorder struct {
	Speed *Series
	Accel *Series
}

func NewRecorder() *Recorder {
	return &Recorder{
		Speed: NewSeries("speed", "m/s"),
		Accel: NewSeries("|a|", "m/s²"),
	}
}

func (r *Recorder) Observe(o physics.Object, dt float64) {
	r.Speed.Push(o.Velocity.Len(), dt)
	r.Accel.Push(o.Acceleration.Len(), dt)
}

func (r *Recorder) Reset() {
	r.Speed.Reset()
	r.Accel.Reset()
}
