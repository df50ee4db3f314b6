package config

import (
	"errors"
	"fmt"
	"strconv"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "TEXTOBJ_"

// LookupFunc returns the value of an environment variable. os.LookupEnv
// satisfies it.
type LookupFunc func(name string) (string, bool)

type envSetting struct {
	name string
	set  func(c *Config, v string) error
}

// envSettings maps environment variables to the settings they override.
var envSettings = []envSetting{
	{EnvPrefix + "LOG_LEVEL", func(c *Config, v string) error {
		c.Logging.Level = v
		return nil
	}},
	{EnvPrefix + "LOG_FILE", func(c *Config, v string) error {
		c.Logging.File = v
		return nil
	}},
	{EnvPrefix + "HELP_OVERLAY", func(c *Config, v string) error {
		return parseBool(v, &c.Editor.HelpOverlay)
	}},
	{EnvPrefix + "PARALLEL_THRESHOLD", func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.Editor.ParallelThreshold = n
		return nil
	}},
	{EnvPrefix + "SHOW_HIDDEN", func(c *Config, v string) error {
		return parseBool(v, &c.Listing.ShowHidden)
	}},
}

// EnvNames returns the environment variables ApplyEnv reads.
func EnvNames() []string {
	out := make([]string, len(envSettings))
	for i, s := range envSettings {
		out[i] = s.name
	}
	return out
}

// ApplyEnv overrides settings from environment variables. Empty values
// are treated as set. Every malformed variable is reported.
func ApplyEnv(c *Config, lookup LookupFunc) error {
	var errs []error
	for _, s := range envSettings {
		v, ok := lookup(s.name)
		if !ok {
			continue
		}
		if err := s.set(c, v); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", s.name, v, err))
		}
	}
	return errors.Join(errs...)
}

func parseBool(v string, dst *bool) error {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
