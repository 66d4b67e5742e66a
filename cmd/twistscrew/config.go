package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/soypat/screw/report"
	"go.uber.org/multierr"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// Config holds twistscrew settings. Flags override file values.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	Format    string `yaml:"format"`
	Precision int    `yaml:"precision"`
	// RotationTol routes twists with |w| at or below it to the translation case.
	RotationTol float64     `yaml:"rotation_tol"`
	Sweep       SweepConfig `yaml:"sweep"`
}

// SweepConfig describes the twists (ε·axis, V) solved by the sweep command.
type SweepConfig struct {
	Hi      float64    `yaml:"hi"`
	Lo      float64    `yaml:"lo"`
	Samples int        `yaml:"samples"`
	Axis    [3]float64 `yaml:"axis,flow"`
	V       [3]float64 `yaml:"v,flow"`
}

func (s SweepConfig) axis() r3.Vec { return r3.Vec{X: s.Axis[0], Y: s.Axis[1], Z: s.Axis[2]} }
func (s SweepConfig) v() r3.Vec    { return r3.Vec{X: s.V[0], Y: s.V[1], Z: s.V[2]} }

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		Format:    string(report.FormatText),
		Precision: 4,
		Sweep: SweepConfig{
			Hi:      1,
			Lo:      1e-6,
			Samples: 25,
			Axis:    [3]float64{1, 0, 0},
			V:       [3]float64{1, 1, 0},
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the config for values the solver cannot use.
// All problems are reported together.
func (c Config) Validate() error {
	var err error
	if _, perr := logrus.ParseLevel(c.LogLevel); perr != nil {
		err = multierr.Append(err, perr)
	}
	if _, perr := report.ParseFormat(c.Format); perr != nil {
		err = multierr.Append(err, perr)
	}
	if c.Precision < 0 || c.Precision > 17 {
		err = multierr.Append(err, fmt.Errorf("precision %d out of range [0, 17]", c.Precision))
	}
	if !(c.RotationTol >= 0) || math.IsInf(c.RotationTol, 0) {
		err = multierr.Append(err, fmt.Errorf("rotation_tol must be a finite non-negative number, got %v", c.RotationTol))
	}
	s := c.Sweep
	if !(s.Hi > 0 && s.Lo > 0 && s.Lo < s.Hi) {
		err = multierr.Append(err, fmt.Errorf("sweep range must satisfy 0 < lo < hi, got lo=%v hi=%v", s.Lo, s.Hi))
	}
	if s.Samples < 2 {
		err = multierr.Append(err, fmt.Errorf("sweep needs at least 2 samples, got %d", s.Samples))
	}
	if s.axis() == (r3.Vec{}) {
		err = multierr.Append(err, errors.New("sweep axis must be non-zero"))
	}
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
