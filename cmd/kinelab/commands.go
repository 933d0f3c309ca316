package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinelab/internal/chart"
	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/export"
	"github.com/san-kum/kinelab/internal/metrics"
	"github.com/san-kum/kinelab/internal/scene"
	"github.com/san-kum/kinelab/internal/tui"
	"github.com/san-kum/kinelab/internal/viz"
)

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("dt") || cfg.Run.Dt <= 0 {
		cfg.Run.Dt = dt
	}
	if cmd.Flags().Changed("time") || cfg.Run.Duration <= 0 {
		cfg.Run.Duration = duration
	}
	if cmd.Flags().Changed("time-scale") {
		cfg.Run.TimeScale = timeScale
	}
	if cfg.Run.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %g", cfg.Run.Dt)
	}
	if sub, h := scene.SubSteps(cfg.Run.Dt); sub > 1 {
		log.Warn().
			Float64("dt", cfg.Run.Dt).
			Int("substeps", sub).
			Float64("h", h).
			Msg("dt above frame clamp, sub-stepping")
	}

	s := scene.New(cfg.Environment, log)
	cfg.Populate(s)

	var stream *tui.Stream
	if watch {
		stream = tui.NewStream(os.Stdout, frameRate, 60, 18, viz.OptionsFrom(cfg.Params))
		stream.Start()
		defer stream.Stop()
	}

	rec := chart.NewRecorder()
	drift := metrics.NewEnergyDrift()
	steps := int(math.Ceil(cfg.Run.Duration/cfg.Run.Dt - 1e-9))
	pace := time.Duration(cfg.Run.Dt / math.Max(cfg.Run.TimeScale, 1e-3) * float64(time.Second))

	log.Info().
		Str("scenario", string(s.Scenario())).
		Float64("dt", cfg.Run.Dt).
		Int("steps", steps).
		Msg("run started")

	sn := s.Snapshot()
	done := 0
	for i := 0; i < steps; i++ {
		done++
		sn = s.Advance(cfg.Run.Dt, cfg.Params)
		if o, ok := sn.Primary(); ok {
			rec.Observe(o, cfg.Run.Dt)
			drift.Observe(metrics.ForObject(o, sn.GroundY).Mechanical)
			if untilLanding && o.Grounded {
				log.Info().Float64("t", sn.Time).Float64("x", o.Position.X).Msg("primary landed")
				break
			}
		}
		if stream != nil {
			stream.Frame(sn, time.Now())
			time.Sleep(pace)
		}
	}

	if jsonPath == "-" {
		return export.WriteJSON(os.Stdout, export.NewDocument(sn, cfg.Run.Dt, done))
	}

	printSummary(sn, drift)
	if err := writeExports(sn, cfg, done); err != nil {
		return err
	}
	if showChart && rec.Speed.Len() > 1 {
		for _, ser := range []*chart.Series{rec.Speed, rec.Accel} {
			fmt.Println()
			fmt.Println(ser.Header())
			fmt.Println(ser.Plot(60, 8))
		}
	}
	return nil
}

func writeExports(sn scene.Snapshot, cfg *config.Config, steps int) error {
	if jsonPath != "" {
		if err := export.WriteJSONFile(jsonPath, export.NewDocument(sn, cfg.Run.Dt, steps)); err != nil {
			return err
		}
		log.Info().Str("path", jsonPath).Msg("state exported")
	}
	if svgPath != "" {
		r := viz.NewRenderer(80, 24)
		r.Render(sn, viz.OptionsFrom(cfg.Params))
		if err := export.WriteFile(svgPath, export.CanvasToSVG(r.Canvas, 4)); err != nil {
			return err
		}
		log.Info().Str("path", svgPath).Msg("frame exported")
	}
	if tracePath != "" {
		out := export.TracesToSVG(sn.Objects, 800, 600)
		if out == "" {
			return fmt.Errorf("no trajectories to export")
		}
		if err := export.WriteFile(tracePath, out); err != nil {
			return err
		}
		log.Info().Str("path", tracePath).Msg("trajectories exported")
	}
	return nil
}

func printSummary(sn scene.Snapshot, drift *metrics.EnergyDrift) {
	fmt.Printf("%s  t=%.3fs\n\n", sn.Scenario, sn.Time)

	switch sn.Scenario {
	case scene.Collision1D:
		c := sn.Collision
		ps := metrics.ForPair(c)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "BODY\tMASS\tX\tV")
		fmt.Fprintf(w, "1\t%.2f\t%.3f\t%.3f\n", c.M1, c.X1, c.V1)
		fmt.Fprintf(w, "2\t%.2f\t%.3f\t%.3f\n", c.M2, c.X2, c.V2)
		w.Flush()
		fmt.Printf("\nresolved=%v momentum=%.3f kinetic=%.3f\n", c.Resolved, ps.Momentum, ps.Kinetic)
	case scene.Lever:
		t1, t2 := sn.Lever.Torques()
		fmt.Printf("τ1=%.2f N·m  τ2=%.2f N·m  %s\n", t1, t2, sn.Lever.Balance())
	case scene.Force:
		r := sn.Composition.Resultant()
		fmt.Printf("R=(%.2f, %.2f) N  |R|=%.2f N  θ=%.1f°\n", r.X, r.Y, r.Len(), sn.Composition.Direction())
	}

	if len(sn.Objects) == 0 {
		return
	}
	if sn.Scenario == scene.Collision1D || sn.Scenario == scene.Lever || sn.Scenario == scene.Force {
		fmt.Println()
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROLE\tMOTION\tX\tY\tVX\tVY\tSPEED\tEm")
	for _, o := range sn.Objects {
		st := metrics.ForObject(o, sn.GroundY)
		fmt.Fprintf(w, "%s\t%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
			o.ID[:8], o.Role, o.MotionType,
			o.Position.X, o.Position.Y, o.Velocity.X, o.Velocity.Y,
			st.Speed, st.Mechanical)
	}
	w.Flush()

	if drift.Initial() != 0 {
		fmt.Printf("\nprimary energy: start %.3f J, end %.3f J, max drift %.2f%%\n",
			drift.Initial(), drift.Current(), 100*drift.Value())
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	m := tui.New(cfg, theme, log, startPaused)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func listPresets(cmd *cobra.Command, args []string) error {
	scenarios := scene.Scenarios
	if len(args) > 0 {
		sc, ok := scene.ParseScenario(args[0])
		if !ok {
			return fmt.Errorf("unknown scenario %q", args[0])
		}
		scenarios = []scene.Scenario{sc}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tDESCRIPTION\tPRESETS")
	for _, sc := range scenarios {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sc, sc.Description(), strings.Join(config.ListPresets(sc), ", "))
	}
	return w.Flush()
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[:1])
	if err != nil {
		return err
	}
	path := "kinelab.yaml"
	if len(args) > 1 {
		path = args[1]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s)\n", path, cfg.Params.Scenario)
	return nil
}

func showConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
