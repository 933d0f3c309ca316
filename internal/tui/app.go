// Package tui is the interactive terminal sandbox built on Bubble Tea.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/san-kum/kinelab/internal/chart"
	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/metrics"
	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/scene"
	"github.com/san-kum/kinelab/internal/viz"
)

const (
	canvasWidth  = 72
	canvasHeight = 22

	frameInterval = time.Second / 60
	cursorStep    = 0.5
	panStep       = 4

	minTimeScale = 0.125
	maxTimeScale = 8.0
)

// addMotions is the cycle of motion types offered for new objects. The
// empty entry follows the scenario.
var addMotions = append([]physics.MotionType{""}, physics.MotionTypes...)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the Bubble Tea model of the live sandbox.
type Model struct {
	log   zerolog.Logger
	cfg   *config.Config
	scene *scene.Scene

	params scene.ParameterSet
	clock  *scene.Clock
	snap   scene.Snapshot

	renderer *viz.Renderer
	opts     viz.Options
	charts   *chart.Recorder
	drift    *metrics.EnergyDrift
	driftID  string
	theme    viz.Theme
	styles   viz.Styles

	cursor   physics.Vec2
	addIdx   int
	knobIdx  int
	running  bool
	showHelp bool
}

// New builds the sandbox from cfg. The scene starts paused when
// startPaused is set.
func New(cfg *config.Config, theme string, log zerolog.Logger, startPaused bool) Model {
	th := viz.GetTheme(theme)
	scale := cfg.Run.TimeScale
	if scale <= 0 {
		scale = 1
	}
	maxDt := cfg.Run.MaxFrameDt
	if maxDt <= 0 || maxDt > scene.MaxFrameDt {
		maxDt = scene.MaxFrameDt
	}
	m := Model{
		log:      log.With().Str("component", "tui").Logger(),
		cfg:      cfg.Clone(),
		scene:    scene.New(cfg.Environment, log),
		params:   cfg.Params,
		clock:    &scene.Clock{MaxDt: maxDt, TimeScale: scale},
		renderer: viz.NewRenderer(canvasWidth, canvasHeight),
		opts:     viz.OptionsFrom(cfg.Params),
		charts:   chart.NewRecorder(),
		drift:    metrics.NewEnergyDrift(),
		theme:    th,
		styles:   viz.NewStyles(th),
		cursor:   physics.Vec2{X: 3, Y: 4},
		running:  !startPaused,
	}
	m.reset()
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

// Snapshot returns the last rendered state.
func (m Model) Snapshot() scene.Snapshot { return m.snap }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		dt := m.clock.Tick(time.Time(msg))
		if m.running && dt > 0 {
			m.advance(dt)
		}
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		m.running = !m.running
		m.clock.Restart()
	case ".":
		if !m.running {
			m.advance(scene.FrameDt(frameInterval.Seconds(), m.clock.TimeScale))
		}
	case "r":
		m.reset()
	case "s":
		m.cycleScenario(1)
	case "S":
		m.cycleScenario(-1)
	case "c":
		m.scene.ClearTrace()
		m.refresh()
	case "a":
		id := m.scene.AddObject(m.cursor, m.params, addMotions[m.addIdx])
		m.scene.SelectObject(id)
		m.refresh()
	case "m":
		m.addIdx = (m.addIdx + 1) % len(addMotions)
	case "tab":
		m.cycleSelection()
	case "esc":
		m.scene.SelectObject("")
		m.refresh()
	case "d", "delete":
		m.scene.RemoveObject(m.snap.SelectedID)
		m.refresh()
	case "x":
		m.scene.ClearObjects()
		m.refresh()
	case "f":
		if o := m.scene.SelectedObject(); o != nil {
			active := !o.Active
			m.scene.UpdateObjectParams(o.ID, scene.ObjectUpdate{Active: &active})
			m.refresh()
		}
	case "i":
		if o := m.scene.SelectedObject(); o != nil {
			launch := m.params.Launch()
			m.scene.UpdateObjectParams(o.ID, scene.ObjectUpdate{Launch: &launch, ResetState: true})
			m.refresh()
		}
	case "+", "=":
		m.clock.TimeScale = min(maxTimeScale, m.clock.TimeScale*2)
	case "-", "_":
		m.clock.TimeScale = max(minTimeScale, m.clock.TimeScale/2)
	case "up":
		m.cursor.Y += cursorStep
	case "down":
		m.cursor.Y -= cursorStep
	case "left":
		m.cursor.X -= cursorStep
	case "right":
		m.cursor.X += cursorStep
	case "h":
		m.renderer.Camera.Pan(panStep, 0)
	case "l":
		m.renderer.Camera.Pan(-panStep, 0)
	case "k":
		m.renderer.Camera.Pan(0, panStep)
	case "j":
		m.renderer.Camera.Pan(0, -panStep)
	case "z":
		m.renderer.Camera.ZoomIn()
	case "Z":
		m.renderer.Camera.ZoomOut()
	case "0":
		m.renderer.Camera.Reset()
	case "n":
		if ks := knobsFor(m.snap.Scenario); len(ks) > 0 {
			m.knobIdx = (m.knobIdx + 1) % len(ks)
		}
	case "]":
		m.tune(1)
	case "[":
		m.tune(-1)
	case "t":
		m.theme = viz.NextTheme(m.theme)
		m.styles = viz.NewStyles(m.theme)
	case "g":
		m.opts.Grid = !m.opts.Grid
	case "v":
		m.opts.Velocity = !m.opts.Velocity
	case "e":
		m.opts.Accel = !m.opts.Accel
	case "w":
		m.opts.Trace = !m.opts.Trace
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m *Model) advance(dt float64) {
	m.snap = m.scene.Step(dt, m.params)
	if o, ok := m.focus(); ok {
		m.charts.Observe(o, dt)
		if o.ID != m.driftID {
			m.drift.Reset()
			m.driftID = o.ID
		}
		m.drift.Observe(metrics.ForObject(o, m.snap.GroundY).Mechanical)
	}
}

// refresh re-reads the scene after an edit without advancing time.
func (m *Model) refresh() { m.snap = m.scene.Snapshot() }

func (m *Model) reset() {
	cfg := m.cfg.Clone()
	cfg.Params = m.params
	cfg.Populate(m.scene)
	m.charts.Reset()
	m.drift.Reset()
	m.driftID = ""
	m.clock.Restart()
	m.refresh()
	m.log.Debug().Str("scenario", string(m.snap.Scenario)).Msg("sandbox reset")
}

func (m *Model) cycleScenario(dir int) {
	n := len(scene.Scenarios)
	idx := 0
	for i, sc := range scene.Scenarios {
		if sc == m.snap.Scenario {
			idx = i
		}
	}
	m.params.Scenario = scene.Scenarios[(idx+dir+n)%n]
	m.knobIdx = 0
	// configured objects belong to the scenario they were written for
	m.cfg.Objects = nil
	m.reset()
}

func (m *Model) cycleSelection() {
	objs := m.snap.Objects
	if len(objs) == 0 {
		return
	}
	next := 0
	for i, o := range objs {
		if o.ID == m.snap.SelectedID {
			next = (i + 1) % len(objs)
		}
	}
	m.scene.SelectObject(objs[next].ID)
	m.refresh()
}

func (m *Model) tune(dir float64) {
	ks := knobsFor(m.snap.Scenario)
	if len(ks) == 0 {
		return
	}
	k := ks[m.knobIdx%len(ks)]
	k.adjust(&m.params, dir)
	if staticScenario(m.snap.Scenario) {
		m.reset()
	}
}

// focus is the object feeding the charts: the selection, else the primary.
func (m Model) focus() (physics.Object, bool) {
	if o, ok := m.snap.Selected(); ok {
		return o, true
	}
	return m.snap.Primary()
}

func (m Model) View() string {
	m.renderer.Render(m.snap, m.opts)
	x, y := m.renderer.Camera.Project(m.cursor)
	m.renderer.Canvas.Set(x, y)
	m.renderer.Canvas.Set(x-1, y)
	m.renderer.Canvas.Set(x+1, y)
	m.renderer.Canvas.Set(x, y-1)
	m.renderer.Canvas.Set(x, y+1)
	canvasView := m.styles.Canvas.Render(m.renderer.Canvas.String())

	var s strings.Builder
	st := m.styles
	s.WriteString(st.Header.Render(strings.ToUpper(string(m.snap.Scenario))+"  "+m.snap.Scenario.Description()) + "\n")

	if m.running {
		s.WriteString(st.Running.Render("RUNNING"))
	} else {
		s.WriteString(st.Paused.Render("PAUSED"))
	}
	s.WriteString(fmt.Sprintf("  ×%g\n\n", m.clock.TimeScale))
	s.WriteString(st.Row("Time", fmt.Sprintf("%.2fs", m.snap.Time)))
	s.WriteString(st.Row("Objects", fmt.Sprintf("%d", len(m.snap.Objects))))
	add := string(addMotions[m.addIdx])
	if add == "" {
		add = "scenario"
	}
	s.WriteString(st.Row("Add", add))

	s.WriteString("\n")
	s.WriteString(m.viewStats())

	if m.charts.Speed.Len() > 1 {
		for _, ser := range []*chart.Series{m.charts.Speed, m.charts.Accel} {
			s.WriteString(st.Label.Render(ser.Header()) + "\n")
			s.WriteString(st.Graph.Render(ser.Plot(30, 4)) + "\n")
		}
	}

	s.WriteString("\nPARAMETERS\n")
	ks := knobsFor(m.snap.Scenario)
	for i, k := range ks {
		mark := " "
		if !k.live && !staticScenario(m.snap.Scenario) {
			mark = "*"
		}
		line := fmt.Sprintf("%-6s %s%s", k.name, k.format(m.params), mark)
		if i == m.knobIdx%len(ks) {
			s.WriteString(st.Active.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.Label.UnsetWidth().Render(line) + "\n")
		}
	}
	if len(ks) > 0 {
		s.WriteString(st.Label.UnsetWidth().Render("  * applies on reset") + "\n")
	}

	s.WriteString(st.Help.Render("SP:Pause .:Step R:Reset S:Scenario Q:Quit\nA:Add M:Motion TAB:Select D:Delete ?:Help"))
	statsView := st.Panel.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpText + "\n" + mainView
	}
	return mainView
}

func (m Model) viewStats() string {
	var s strings.Builder
	st := m.styles
	switch m.snap.Scenario {
	case scene.Collision1D:
		ps := metrics.ForPair(m.snap.Collision)
		c := m.snap.Collision
		s.WriteString(st.Row("v1, v2", fmt.Sprintf("%.2f, %.2f m/s", c.V1, c.V2)))
		s.WriteString(st.Row("Momentum", fmt.Sprintf("%.2f kg·m/s", ps.Momentum)))
		s.WriteString(st.Row("KE", fmt.Sprintf("%.2f J", ps.Kinetic)))
		state := "approaching"
		if c.Resolved {
			state = "resolved"
		}
		s.WriteString(st.Row("Contact", state))
	case scene.Lever:
		l := m.snap.Lever
		t1, t2 := l.Torques()
		s.WriteString(st.Row("τ1, τ2", fmt.Sprintf("%.2f, %.2f N·m", t1, t2)))
		s.WriteString(st.Row("State", string(l.Balance())))
	case scene.Force:
		c := m.snap.Composition
		s.WriteString(st.Row("|R|", fmt.Sprintf("%.2f N", c.Resultant().Len())))
		s.WriteString(st.Row("Direction", fmt.Sprintf("%.1f°", c.Direction())))
	}

	if o, ok := m.focus(); ok {
		stats := metrics.ForObject(o, m.snap.GroundY)
		s.WriteString(st.Row("Focus", fmt.Sprintf("%s %s", o.MotionType, shortID(o.ID))))
		s.WriteString(st.Row("Position", fmt.Sprintf("(%.2f, %.2f) m", o.Position.X, o.Position.Y)))
		s.WriteString(st.Row("Speed", fmt.Sprintf("%.2f m/s", stats.Speed)))
		s.WriteString(st.Row("|a|", fmt.Sprintf("%.2f m/s²", stats.Accel)))
		s.WriteString(st.Row("Ek", fmt.Sprintf("%.2f J", stats.Kinetic)))
		s.WriteString(st.Row("Ep", fmt.Sprintf("%.2f J", stats.Potential)))
		s.WriteString(st.Row("Em", fmt.Sprintf("%.2f J", stats.Mechanical)))
		if o.ID == m.driftID && m.drift.Initial() != 0 {
			s.WriteString(st.Row("Drift", fmt.Sprintf("%.2f%%", 100*m.drift.Value())))
		}
	}
	return s.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  .        - Single step (paused)     ║
║  R        - Reset scene              ║
║  s / S    - Next/previous scenario   ║
║  Arrows   - Move placement cursor    ║
║  A        - Add object at cursor     ║
║  M        - Cycle motion for new     ║
║  Tab/Esc  - Select next/none         ║
║  D / X    - Delete selected/all aux  ║
║  F / I    - Freeze / re-launch sel.  ║
║  C        - Clear traces             ║
║  N, [ ]   - Pick and tune parameter  ║
║  + / -    - Time multiplier          ║
║  hjkl z Z - Pan / zoom, 0 resets     ║
║  G V E W  - Grid/vel/accel/trace     ║
║  T        - Cycle theme              ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
