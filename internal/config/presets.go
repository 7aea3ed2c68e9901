package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"default":  DefaultConfig(),
	"straight": withPipe(func(p *PipeConfig) { p.BendAngle = 0 }),
	"gentle":   withPipe(func(p *PipeConfig) { p.BendAngle = math.Pi / 4 }),
	"u-bend":   withPipe(func(p *PipeConfig) { p.BendAngle = math.Pi }),
	"coarse": withPipe(func(p *PipeConfig) {
		p.LengthPoints = 60
		p.RadiusPoints = 12
	}),
}

func withPipe(fn func(*PipeConfig)) *Config {
	cfg := DefaultConfig()
	fn(&cfg.Pipe)
	return cfg
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *cfg
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
