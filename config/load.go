package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
)

// DefaultConfigPath is read when no explicit path is given and the file exists
const DefaultConfigPath = "config/arcade.toml"

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "ARCADE_AUDIO_ENABLED"
	EnvMasterVolume = "ARCADE_MASTER_VOLUME" // 0-100
)

// Load builds the configuration with priority: explicit path > DefaultConfigPath >
// built-in defaults, then applies environment overrides. The result is not
// validated so callers can overlay flags first.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" && fileExists(DefaultConfigPath) {
		path = DefaultConfigPath
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeFile layers a TOML file over cfg; unknown keys are errors so typos surface
func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	var result *multierror.Error
	for _, key := range undecoded {
		result = multierror.Append(result, fmt.Errorf("unknown key %q", key.String()))
	}
	return fmt.Errorf("failed to load config from %s: %w", path, result)
}

// applyEnv reads overrides through lookup so tests need not touch the process env
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	var result *multierror.Error

	if v, ok := lookup(EnvAudioEnabled); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvAudioEnabled, err))
		} else {
			c.Audio.Enabled = enabled
		}
	}

	if v, ok := lookup(EnvMasterVolume); ok && v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", EnvMasterVolume, err))
		} else {
			c.Audio.Volume = min(max(float64(vol)/100, 0), 1)
		}
	}

	return result.ErrorOrNil()
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
