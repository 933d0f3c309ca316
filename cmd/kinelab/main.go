package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/san-kum/kinelab/internal/config"
	"github.com/san-kum/kinelab/internal/logging"
	"github.com/san-kum/kinelab/internal/scene"
)

var (
	dt           float64
	duration     float64
	timeScale    float64
	preset       string
	untilLanding bool
	showChart    bool
	watch        bool
	frameRate    int
	theme        string
	startPaused  bool
	svgPath      string
	tracePath    string
	jsonPath     string

	log = zerolog.Nop()
)

// main registers the commands and runs the root command. With no
// subcommand the live sandbox starts on the default scenario.
func main() {
	rootCmd := &cobra.Command{
		Use:           "kinelab",
		Short:         "2D kinematics and dynamics teaching sandbox",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = logging.New(os.Stderr, viper.GetString("log-level"), viper.GetBool("no-color"))
			log.Debug().Str("config", viper.GetString("config")).Msg("settings loaded")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().String("config", "", "run configuration file (yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored log output")
	viper.SetEnvPrefix("kinelab")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"log-level", "config", "no-color"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario headless and print the final state",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScenario,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	runCmd.Flags().Float64Var(&timeScale, "time-scale", config.DefaultTimeScale, "playback speed with --watch")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&untilLanding, "until-landing", false, "stop when the primary body touches the ground")
	runCmd.Flags().BoolVar(&showChart, "chart", false, "plot speed and acceleration of the primary body")
	runCmd.Flags().BoolVar(&watch, "watch", false, "draw frames while running")
	runCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate with --watch")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write the final frame as svg")
	runCmd.Flags().StringVar(&tracePath, "trace-svg", "", "write object trajectories as svg")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write the final state as json (- for stdout)")

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "interactive sandbox",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&theme, "theme", "chalkboard", "color theme")
	liveCmd.Flags().BoolVar(&startPaused, "paused", false, "start paused")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list scenarios and their presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage run configuration files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [scenario] [path]",
		Short: "write a configuration file",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  initConfig,
	}
	configInitCmd.Flags().StringVar(&preset, "preset", "", "start from a preset")
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "print the effective configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showConfig,
	}
	configShowCmd.Flags().StringVar(&preset, "preset", "", "apply a preset")
	configCmd.AddCommand(configInitCmd, configShowCmd)

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig builds the configuration for a command: the --config file
// (or defaults), then the scenario argument, then --preset.
func resolveConfig(args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := viper.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	sc := cfg.Params.Scenario
	if len(args) > 0 {
		parsed, ok := scene.ParseScenario(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (see kinelab presets)", args[0])
		}
		sc = parsed
	}
	cfg.Params.Scenario = sc

	if preset != "" {
		p, err := config.GetPreset(sc, preset)
		if err != nil {
			return nil, err
		}
		cfg = p
	}
	return cfg, nil
}
