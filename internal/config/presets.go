package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/kinelab/internal/physics"
	"github.com/san-kum/kinelab/internal/scene"
)

// Presets maps scenario -> preset name -> configuration edit.
var Presets = map[scene.Scenario]map[string]func(*Config){
	scene.Projectile: {
		"default": func(c *Config) {},
		"steep": func(c *Config) {
			c.Params.AngleDeg = 75
		},
		"moon": func(c *Config) {
			c.Params.G = 1.62
			c.Params.V0 = 10
			c.Run.Duration = 15
		},
		"drag": func(c *Config) {
			c.Params.DragC = 0.1
		},
		"volley": func(c *Config) {
			c.Objects = []ObjectConfig{{X: 0, Y: 0}, {X: 0, Y: 5}, {X: 0, Y: 10}}
		},
	},
	scene.Freefall: {
		"default": func(c *Config) {},
		"moon": func(c *Config) {
			c.Params.G = 1.62
			c.Run.Duration = 5
		},
		"side-by-side": func(c *Config) {
			c.Objects = []ObjectConfig{{X: 3, Y: 6, Mass: 10}, {X: 9, Y: 6, Mass: 0.5}}
			c.Run.Duration = 2
		},
	},
	scene.Spring: {
		"default": func(c *Config) {},
		"undamped": func(c *Config) {
			c.Params.DampingB = 0
		},
		"overdamped": func(c *Config) {
			c.Params.DampingB = 20
		},
		"stiff": func(c *Config) {
			c.Params.SpringK = 200
		},
	},
	scene.Uniform: {
		"default": func(c *Config) {},
		"race": func(c *Config) {
			c.Objects = []ObjectConfig{{X: 1, Y: 3, Motion: physics.UniformAccel}}
		},
	},
	scene.UniformAccel: {
		"default": func(c *Config) {},
		"braking": func(c *Config) {
			c.Params.UaU0 = 10
			c.Params.UaAx = -2
			c.Run.Duration = 5
		},
	},
	scene.Collision1D: {
		"elastic": func(c *Config) {},
		"inelastic": func(c *Config) {
			c.Params.ColE = 0
		},
		"newton-cradle": func(c *Config) {
			c.Params.ColM1, c.Params.ColM2 = 1, 1
			c.Params.ColV1, c.Params.ColV2 = 4, 0
		},
		"heavy-light": func(c *Config) {
			c.Params.ColM1, c.Params.ColM2 = 10, 1
			c.Params.ColV1, c.Params.ColV2 = 2, 0
		},
	},
	scene.Lever: {
		"balanced": func(c *Config) {},
		"long-arm": func(c *Config) {
			c.Params.LevF1, c.Params.LevD1 = 10, 3
			c.Params.LevF2, c.Params.LevD2 = 30, 1
		},
		"tipping": func(c *Config) {
			c.Params.LevF1 = 40
		},
	},
	scene.Force: {
		"perpendicular": func(c *Config) {},
		"opposed": func(c *Config) {
			c.Params.FcompA2 = 180
		},
		"aligned": func(c *Config) {
			c.Params.FcompA2 = 0
		},
	},
}

// GetPreset builds the named preset for scenario on top of the defaults.
func GetPreset(sc scene.Scenario, name string) (*Config, error) {
	edit, ok := Presets[sc][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrUnknownPreset, sc, name)
	}
	cfg := DefaultConfig()
	cfg.Params.Scenario = sc
	edit(cfg)
	return cfg, nil
}

// ListPresets returns the preset names for scenario in sorted order.
func ListPresets(sc scene.Scenario) []string {
	scenarioPresets, ok := Presets[sc]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(scenarioPresets))
	for name := range scenarioPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
