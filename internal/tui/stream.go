package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/san-kum/kinelab/internal/metrics"
	"github.com/san-kum/kinelab/internal/scene"
	"github.com/san-kum/kinelab/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Stream writes rate-limited frames of a non-interactive run to a
// terminal.
type Stream struct {
	out       io.Writer
	frameRate int
	lastFrame time.Time
	renderer  *viz.Renderer
	opts      viz.Options
}

func NewStream(out io.Writer, frameRate, w, h int, opts viz.Options) *Stream {
	return &Stream{
		out:       out,
		frameRate: frameRate,
		renderer:  viz.NewRenderer(w, h),
		opts:      opts,
	}
}

// Frame draws sn unless the previous frame is more recent than the frame
// interval. It reports whether a frame was written.
func (s *Stream) Frame(sn scene.Snapshot, now time.Time) bool {
	if s.frameRate > 0 && now.Sub(s.lastFrame) < time.Second/time.Duration(s.frameRate) {
		return false
	}
	s.lastFrame = now

	var b strings.Builder
	b.WriteString(clearScreen)
	fmt.Fprintf(&b, "  %s  t=%.2fs\n", sn.Scenario, sn.Time)
	rule := "  " + strings.Repeat("─", s.renderer.Canvas.Width) + "\n"
	b.WriteString(rule)
	for _, row := range strings.SplitAfter(s.renderer.Render(sn, s.opts), "\n") {
		if row != "" {
			b.WriteString("  " + row)
		}
	}
	b.WriteString(rule)

	if o, ok := sn.Primary(); ok {
		st := metrics.ForObject(o, sn.GroundY)
		fmt.Fprintf(&b, "  x=%.2f y=%.2f |v|=%.2f Em=%.2f\n", o.Position.X, o.Position.Y, st.Speed, st.Mechanical)
	} else if sn.Scenario == scene.Collision1D {
		c := sn.Collision
		fmt.Fprintf(&b, "  x1=%.2f x2=%.2f v1=%.2f v2=%.2f p=%.2f\n", c.X1, c.X2, c.V1, c.V2, c.Momentum())
	}

	fmt.Fprint(s.out, b.String())
	return true
}

func (s *Stream) Start() { fmt.Fprint(s.out, hideCursor) }
func (s *Stream) Stop()  { fmt.Fprint(s.out, showCursor) }
