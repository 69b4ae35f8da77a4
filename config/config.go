// SPDX-License-Identifier: MIT

// Package config loads defectra settings from YAML with environment
// overrides and validates them.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/defectra/defect"
	"github.com/katalvlaran/defectra/neighbor"
	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvTolerance = "DEFECTRA_TOLERANCE"
	EnvMethod    = "DEFECTRA_METHOD"
	EnvLogLevel  = "DEFECTRA_LOG_LEVEL"
	EnvWorkers   = "DEFECTRA_WORKERS"
)

// Policy names accepted in defect.policy.
const (
	PolicyFirstMinimum = "first-minimum"
	PolicyFraction     = "fraction"
)

// ErrInvalid wraps every validation and environment parsing failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the root of the configuration file.
type Config struct {
	Neighbor NeighborConfig `yaml:"neighbor"`
	Defect   DefectConfig   `yaml:"defect"`
	Cluster  ClusterConfig  `yaml:"cluster"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// NeighborConfig controls neighbor index construction.
type NeighborConfig struct {
	Tolerance float64 `yaml:"tolerance" validate:"gt=0,lte=3"`
	Workers   int     `yaml:"workers" validate:"gte=0"`
}

// DefectConfig controls the defect classifier.
type DefectConfig struct {
	Method      string  `yaml:"method" validate:"oneof=species-abundance local-environment any"`
	Policy      string  `yaml:"policy" validate:"oneof=first-minimum fraction"`
	Bandwidth   float64 `yaml:"bandwidth" validate:"gt=0"`
	Samples     int     `yaml:"samples" validate:"gte=3"`
	Fraction    float64 `yaml:"fraction" validate:"gt=0,lt=1"`
	Placeholder string  `yaml:"placeholder"`
}

// ClusterConfig controls the cluster pipeline.
type ClusterConfig struct {
	Shells             int    `yaml:"shells" validate:"gte=0"`
	Smooth             bool   `yaml:"smooth"`
	SmoothCutoff       int    `yaml:"smooth_cutoff" validate:"gte=0"`
	IgnoreElement      string `yaml:"ignore_element"`
	IgnoreCoordination int    `yaml:"ignore_coordination" validate:"gte=0"`
	Hydrogenate        bool   `yaml:"hydrogenate"`
	Terminator         string `yaml:"terminator" validate:"required"`
	UseTerminatorBond  bool   `yaml:"use_terminator_bond"`
}

// LoggingConfig selects the log level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Neighbor: NeighborConfig{
			Tolerance: neighbor.DefaultTolerance,
			Workers:   1,
		},
		Defect: DefectConfig{
			Method:    string(defect.MethodAny),
			Policy:    PolicyFirstMinimum,
			Bandwidth: defect.DefaultBandwidth,
			Samples:   defect.DefaultSamples,
			Fraction:  0.05,
		},
		Cluster: ClusterConfig{
			Shells:       1,
			Smooth:       true,
			SmoothCutoff: 1,
			Terminator:   "H",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and
// validates the result. A missing file is not an error; an empty path skips
// the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read: %w", err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if v, ok := os.LookupEnv(EnvTolerance); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvTolerance, v)
		}
		c.Neighbor.Tolerance = f
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalid, EnvWorkers, v)
		}
		c.Neighbor.Workers = n
	}
	if v, ok := os.LookupEnv(EnvMethod); ok {
		c.Defect.Method = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.Logging.Level = v
	}

	return nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Save writes c as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// NeighborOptions converts the neighbor section into build options.
func (c *Config) NeighborOptions() []neighbor.Option {
	return []neighbor.Option{
		neighbor.WithTolerance(c.Neighbor.Tolerance),
		neighbor.WithWorkers(c.Neighbor.Workers),
	}
}

// ThresholdPolicy returns the configured defect threshold policy.
func (c *Config) ThresholdPolicy() defect.ThresholdPolicy {
	if c.Defect.Policy == PolicyFraction {
		return defect.FractionOfAtoms{Fraction: c.Defect.Fraction}
	}

	return defect.FirstMinimum{Bandwidth: c.Defect.Bandwidth, Samples: c.Defect.Samples}
}
