package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/scene"
)

const (
	DefaultDt        = 1.0 / 60
	DefaultDuration  = 10.0
	DefaultTimeScale = 1.0
)

var (
	ErrUnknownPreset = errors.New("unknown preset")
	ErrUnknownMotion = errors.New("unknown motion type")
)

type Config struct {
	Params      scene.ParameterSet  `yaml:"params"`
	Environment physics.Environment `yaml:"environment"`
	Run         RunConfig           `yaml:"run"`
	Objects     []ObjectConfig      `yaml:"objects,omitempty"`
}

type RunConfig struct {
	Dt         float64 `yaml:"dt"`
	Duration   float64 `yaml:"duration"`
	TimeScale  float64 `yaml:"time_scale"`
	MaxFrameDt float64 `yaml:"max_frame_dt"`
}

// ObjectConfig places an auxiliary body when the scene starts. An empty
// motion follows the scenario.
type ObjectConfig struct {
	X      float64            `yaml:"x"`
	Y      float64            `yaml:"y"`
	Motion physics.MotionType `yaml:"motion,omitempty"`
	Mass   float64            `yaml:"mass,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Params:      scene.DefaultParams(),
		Environment: physics.DefaultEnvironment(),
		Run: RunConfig{
			Dt:         DefaultDt,
			Duration:   DefaultDuration,
			TimeScale:  DefaultTimeScale,
			MaxFrameDt: scene.MaxFrameDt,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Run.MaxFrameDt <= 0 || cfg.Run.MaxFrameDt > scene.MaxFrameDt {
		cfg.Run.MaxFrameDt = scene.MaxFrameDt
	}
	return cfg, nil
}

// Validate rejects objects whose motion type is outside the known set.
func (c *Config) Validate() error {
	for i, oc := range c.Objects {
		if oc.Motion != "" && !oc.Motion.Valid() {
			return fmt.Errorf("objects[%d]: %w %q", i, ErrUnknownMotion, oc.Motion)
		}
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Clone returns a copy that can be edited without touching the receiver.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Objects = append([]ObjectConfig(nil), c.Objects...)
	return &cp
}

// Populate resets s from the configuration and adds the configured
// auxiliary objects.
func (c *Config) Populate(s *scene.Scene) {
	s.Reset(c.Params)
	for _, oc := range c.Objects {
		p := c.Params
		if oc.Mass > 0 {
			p.MassKg = oc.Mass
		}
		s.AddObject(physics.Vec2{X: oc.X, Y: oc.Y}, p, oc.Motion)
	}
}
