package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/pipeflow/internal/pipe"
)

const (
	DefaultElevation   = 30.0
	DefaultAzimuth     = -60.0
	DefaultArrowLength = 0.1
)

type Config struct {
	Pipe PipeConfig `yaml:"pipe"`
	View ViewConfig `yaml:"view"`
}

type PipeConfig struct {
	Length         float64 `yaml:"length" ini:"length"`
	Radius         float64 `yaml:"radius" ini:"radius"`
	LengthPoints   int     `yaml:"length_points" ini:"length_points"`
	RadiusPoints   int     `yaml:"radius_points" ini:"radius_points"`
	PressureInlet  float64 `yaml:"pressure_inlet" ini:"pressure_inlet"`
	PressureOutlet float64 `yaml:"pressure_outlet" ini:"pressure_outlet"`
	BendAngle      float64 `yaml:"bend_angle" ini:"bend_angle"`
}

// ViewConfig angles are in degrees.
type ViewConfig struct {
	Elevation   float64 `yaml:"elevation" ini:"elevation"`
	Azimuth     float64 `yaml:"azimuth" ini:"azimuth"`
	ArrowLength float64 `yaml:"arrow_length" ini:"arrow_length"`
	Normalize   bool    `yaml:"normalize" ini:"normalize"`
}

func DefaultConfig() *Config {
	p := pipe.DefaultParams()
	return &Config{
		Pipe: PipeConfig{
			Length:         p.Length,
			Radius:         p.Radius,
			LengthPoints:   p.LengthPoints,
			RadiusPoints:   p.RadiusPoints,
			PressureInlet:  p.PressureInlet,
			PressureOutlet: p.PressureOutlet,
			BendAngle:      p.BendAngle,
		},
		View: ViewConfig{
			Elevation:   DefaultElevation,
			Azimuth:     DefaultAzimuth,
			ArrowLength: DefaultArrowLength,
			Normalize:   true,
		},
	}
}

// Load overlays the file at path on DefaultConfig. Files ending in .ini are
// read as INI with [pipe] and [view] sections, everything else as YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if strings.EqualFold(filepath.Ext(path), ".ini") {
		f, err := ini.Load(path)
		if err != nil {
			return nil, err
		}
		if err := f.Section("pipe").MapTo(&cfg.Pipe); err != nil {
			return nil, fmt.Errorf("section pipe: %w", err)
		}
		if err := f.Section("view").MapTo(&cfg.View); err != nil {
			return nil, fmt.Errorf("section view: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Params() pipe.Params {
	return pipe.Params{
		Length:         c.Pipe.Length,
		Radius:         c.Pipe.Radius,
		LengthPoints:   c.Pipe.LengthPoints,
		RadiusPoints:   c.Pipe.RadiusPoints,
		PressureInlet:  c.Pipe.PressureInlet,
		PressureOutlet: c.Pipe.PressureOutlet,
		BendAngle:      c.Pipe.BendAngle,
	}
}
