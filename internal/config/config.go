// Package config loads the run configuration from an INI-style file. The
// solver location and working directory are explicit configuration handed to
// the components that need them — never ambient process-wide globals.
package config

import (
	"fmt"
	"time"

	"gopkg.in/gcfg.v1"
)

// Config is the full aerosweep run configuration.
//
//	[solver]
//	executable      = /usr/local/bin/avl
//	work-dir        = ./avl_files
//	timeout-seconds = 30
//
//	[tails]
//	horizontal-volume = 0.60
//	vertical-volume   = 0.05
//	arm-factor        = 2.5
//
//	[sweep]
//	beta          = 0.0
//	mach          = 0.0
//	output-prefix = case
//	keep-reports  = false
type Config struct {
	Solver struct {
		Executable     string `gcfg:"executable"`
		WorkDir        string `gcfg:"work-dir"`
		TimeoutSeconds int    `gcfg:"timeout-seconds"`
	}
	Tails struct {
		HorizontalVolume float64 `gcfg:"horizontal-volume"`
		VerticalVolume   float64 `gcfg:"vertical-volume"`
		ArmFactor        float64 `gcfg:"arm-factor"`
	}
	Sweep struct {
		Beta         float64 `gcfg:"beta"`
		Mach         float64 `gcfg:"mach"`
		OutputPrefix string  `gcfg:"output-prefix"`
		KeepReports  bool    `gcfg:"keep-reports"`
	}
}

// Default returns a configuration with every optional value filled in.
// Volume coefficients default to the usual conventional-layout range.
func Default() Config {
	var c Config
	c.Solver.WorkDir = "."
	c.Solver.TimeoutSeconds = 30
	c.Tails.HorizontalVolume = 0.60
	c.Tails.VerticalVolume = 0.05
	c.Tails.ArmFactor = 2.5
	c.Sweep.OutputPrefix = "case"
	return c
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := gcfg.ReadFileInto(&cfg, path); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the cross-field requirements Load can't express.
func (c *Config) Validate() error {
	if c.Solver.Executable == "" {
		return fmt.Errorf("config: [solver] executable is required")
	}
	if c.Solver.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: [solver] timeout-seconds must be positive, got %d",
			c.Solver.TimeoutSeconds)
	}
	if c.Tails.HorizontalVolume <= 0 || c.Tails.VerticalVolume <= 0 {
		return fmt.Errorf("config: [tails] volume coefficients must be positive, got %g and %g",
			c.Tails.HorizontalVolume, c.Tails.VerticalVolume)
	}
	if c.Tails.ArmFactor <= 0 {
		return fmt.Errorf("config: [tails] arm-factor must be positive, got %g",
			c.Tails.ArmFactor)
	}
	if c.Sweep.OutputPrefix == "" {
		return fmt.Errorf("config: [sweep] output-prefix must not be empty")
	}
	return nil
}

// Timeout returns the solver budget as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Solver.TimeoutSeconds) * time.Second
}
