package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = ".svgmin.yaml"

type Config struct {
	// Strict makes an empty minification result an error.
	Strict bool
	// KeepUnchanged lists document paths whose data did not shrink.
	KeepUnchanged bool
	Log           Log
}

type Log struct {
	Debug bool
	JSON  bool
}

func DefaultConfig() Config {
	return Config{}
}

// Load reads the configuration at path and applies it over the defaults.
// A missing file is not an error when optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// Apply parsed values on top of defaults.
	if y.Svgmin.Strict != nil {
		cfg.Strict = *y.Svgmin.Strict
	}
	if y.Svgmin.KeepUnchanged != nil {
		cfg.KeepUnchanged = *y.Svgmin.KeepUnchanged
	}
	if y.Svgmin.Log.Debug != nil {
		cfg.Log.Debug = *y.Svgmin.Log.Debug
	}
	if y.Svgmin.Log.JSON != nil {
		cfg.Log.JSON = *y.Svgmin.Log.JSON
	}

	return cfg, nil
}

type yamlConfig struct {
	Svgmin struct {
		Strict        *bool `yaml:"strict"`
		KeepUnchanged *bool `yaml:"keep_unchanged"`

		Log struct {
			Debug *bool `yaml:"debug"`
			JSON  *bool `yaml:"json"`
		} `yaml:"log"`
	} `yaml:"svgmin"`
}
