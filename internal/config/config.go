// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package config provides YAML-based configuration loading for eitherstress.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration of the stress harness.
type Config struct {
	// Log holds logging configuration
	Log LogConfig `mapstructure:"log"`

	// Stress holds the trial schedule
	Stress StressConfig `mapstructure:"stress"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: list of outputs: stdout, stderr, or file paths
	Outputs []string `mapstructure:"outputs"`

	// Rotation controls file rotation when writing to files
	Rotation RotationConfig `mapstructure:"rotation"`
	// Development toggles development-friendly logging options
	Development bool `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// StressConfig defines how many trials run and how actions are mixed.
type StressConfig struct {
	// Trials is the total number of slot pairs to resolve
	Trials int `mapstructure:"trials"`
	// Workers is the number of concurrent trial goroutines
	Workers int `mapstructure:"workers"`
	// QueueCapacity bounds each worker's result queue
	QueueCapacity int `mapstructure:"queue_capacity"`
	// Seed seeds the per-worker mode pickers
	Seed uint64 `mapstructure:"seed"`
	// Mix weights the four action combinations
	Mix MixConfig `mapstructure:"mix"`
	// Rate caps trials started per second; 0 means unlimited
	Rate float64 `mapstructure:"rate"`
}

// MixConfig holds relative weights per action combination.
type MixConfig struct {
	SendSend       int `mapstructure:"send_send"`
	SendDiscard    int `mapstructure:"send_discard"`
	DiscardSend    int `mapstructure:"discard_send"`
	DiscardDiscard int `mapstructure:"discard_discard"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:       "info",
			Format:      "console",
			Outputs:     []string{"stderr"},
			Development: false,
			Rotation: RotationConfig{
				Enable:     false,
				Filename:   "logs/eitherstress.log",
				MaxSizeMB:  50,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   true,
			},
		},
		Stress: StressConfig{
			Trials:        100000,
			Workers:       4,
			QueueCapacity: 64,
			Seed:          1,
			Mix: MixConfig{
				SendSend:       4,
				SendDiscard:    2,
				DiscardSend:    2,
				DiscardDiscard: 1,
			},
		},
	}
}

// Load reads configuration from the provided path (if non-empty),
// otherwise it searches common locations and supports environment overrides.
// Environment variables use the prefix EITHERSTRESS and `.`/`-` are replaced with `_`.
// Example: EITHERSTRESS_STRESS_TRIALS=5000
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("EITHERSTRESS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// seed defaults for viper so env-only configs work
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.filename", cfg.Log.Rotation.Filename)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)
	v.SetDefault("stress.trials", cfg.Stress.Trials)
	v.SetDefault("stress.workers", cfg.Stress.Workers)
	v.SetDefault("stress.queue_capacity", cfg.Stress.QueueCapacity)
	v.SetDefault("stress.seed", cfg.Stress.Seed)
	v.SetDefault("stress.mix.send_send", cfg.Stress.Mix.SendSend)
	v.SetDefault("stress.mix.send_discard", cfg.Stress.Mix.SendDiscard)
	v.SetDefault("stress.mix.discard_send", cfg.Stress.Mix.DiscardSend)
	v.SetDefault("stress.mix.discard_discard", cfg.Stress.Mix.DiscardDiscard)
	v.SetDefault("stress.rate", cfg.Stress.Rate)

	if path == "" {
		if envPath := os.Getenv("EITHERSTRESS_CONFIG"); envPath != "" {
			path = envPath
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("eitherstress")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".eitherstress"))
		}
	}

	// Read config file if present; if not found, continue with defaults/env
	if err := v.ReadInConfig(); err != nil {
		var viperConfigFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &viperConfigFileNotFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	lvl := strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch lvl {
	case "debug", "info", "warn", "warning", "error":
		// ok
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}

	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if len(c.Log.Outputs) == 0 {
		c.Log.Outputs = []string{"stderr"}
	}

	s := &c.Stress
	if s.Trials < 0 {
		return fmt.Errorf("invalid stress.trials: %d", s.Trials)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("invalid stress.workers: %d", s.Workers)
	}
	if s.QueueCapacity < 2 {
		return fmt.Errorf("invalid stress.queue_capacity: %d", s.QueueCapacity)
	}
	if s.Rate < 0 {
		return fmt.Errorf("invalid stress.rate: %g", s.Rate)
	}
	m := s.Mix
	if m.SendSend < 0 || m.SendDiscard < 0 || m.DiscardSend < 0 || m.DiscardDiscard < 0 {
		return fmt.Errorf("invalid stress.mix: negative weight in %+v", m)
	}
	if m.SendSend+m.SendDiscard+m.DiscardSend+m.DiscardDiscard == 0 {
		return errors.New("invalid stress.mix: all weights are zero")
	}
	return nil
}
