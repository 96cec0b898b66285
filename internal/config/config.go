// Package config loads the settings of the mulscan command from an optional
// YAML file and from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/mulscan"
	"github.com/midbel/mulscan/internal/bench"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "input.txt"

const (
	EnvFile       = "MULSCAN_FILE"
	EnvRuns       = "MULSCAN_RUNS"
	EnvStrategies = "MULSCAN_STRATEGIES"
	EnvParallel   = "MULSCAN_PARALLEL"
)

type Config struct {
	File       string   `yaml:"file"`
	Runs       int      `yaml:"runs"`
	Strategies []string `yaml:"strategies"`
	// 0 runs strategies one after the other, -1 runs them all at once.
	Parallel int  `yaml:"parallel"`
	Verbose  bool `yaml:"verbose"`
}

func Default() *Config {
	return &Config{
		File:       DefaultFile,
		Runs:       bench.DefaultRuns,
		Strategies: mulscan.Strategies(),
	}
}

// Load reads the configuration at path, an empty path meaning defaults
// only. A path given explicitly must exist. Environment variables are
// applied last.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() error {
	if file := os.Getenv(EnvFile); file != "" {
		c.File = file
	}
	if str := os.Getenv(EnvRuns); str != "" {
		n, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("%s: invalid number of runs %q", EnvRuns, str)
		}
		c.Runs = n
	}
	if str := os.Getenv(EnvStrategies); str != "" {
		c.Strategies = c.Strategies[:0]
		for _, s := range strings.Split(str, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Strategies = append(c.Strategies, s)
			}
		}
	}
	if str := os.Getenv(EnvParallel); str != "" {
		n, err := strconv.Atoi(str)
		if err != nil {
			return fmt.Errorf("%s: invalid parallel limit %q", EnvParallel, str)
		}
		c.Parallel = n
	}
	return nil
}

func (c *Config) Validate() error {
	if c.File == "" {
		return fmt.Errorf("no input file configured")
	}
	if c.Runs < 1 {
		return fmt.Errorf("invalid number of runs: %d (must be at least 1)", c.Runs)
	}
	if c.Parallel < -1 {
		return fmt.Errorf("invalid parallel limit: %d", c.Parallel)
	}
	for _, s := range c.Strategies {
		if _, err := mulscan.Lookup(s); err != nil {
			return err
		}
	}
	return nil
}
