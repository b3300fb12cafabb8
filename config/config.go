// Package config loads the optional defaults file. Values here are the
// lowest-precedence layer: command-line flags and bundle manifests win.
package config

import (
	"github.com/bfkit/bfrt/bundle"
	"github.com/bfkit/bfrt/program"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	TapeSize       int    `mapstructure:"tape-size"`
	MemoryOverflow string `mapstructure:"memory-overflow"`
	Optimize       bool   `mapstructure:"optimize"`
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("tape-size", 1024)
	v.SetDefault("memory-overflow", "wrap")
	v.SetDefault("optimize", true)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}

	return &config, nil
}

// Defaults validates the configuration and converts it to loader
// defaults.
func (c *Config) Defaults() (bundle.Defaults, error) {
	if c.TapeSize <= 0 {
		return bundle.Defaults{}, &InvalidTapeSizeError{Size: c.TapeSize}
	}

	mode, err := program.ParseOverflowMode(c.MemoryOverflow)
	if err != nil {
		return bundle.Defaults{}, err
	}

	return bundle.Defaults{
		TapeSize: c.TapeSize,
		Overflow: mode,
		Optimize: c.Optimize,
	}, nil
}
