package config

import (
	"errors"
	"slices"

	"github.com/dshills/textobj/internal/dirlist"
	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/input/keymap"
	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/syntax"
)

// Config is the complete textobj configuration.
type Config struct {
	Logging   Logging             `toml:"logging" yaml:"logging"`
	Editor    Editor              `toml:"editor" yaml:"editor"`
	Listing   Listing             `toml:"listing" yaml:"listing"`
	Languages []syntax.LangConfig `toml:"languages,omitempty" yaml:"languages,omitempty"`
	// Keys maps a mode name to key sequence → command bindings that are
	// layered over the default keymaps.
	Keys map[string]map[string]string `toml:"keys,omitempty" yaml:"keys,omitempty"`
}

// Logging configures the log output.
type Logging struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output. Empty discards logs.
	File string `toml:"file" yaml:"file"`
}

// Editor configures text object resolution.
type Editor struct {
	HelpOverlay bool `toml:"help_overlay" yaml:"help_overlay"`
	// ParallelThreshold is the range count at which ranges are resolved
	// concurrently. Zero disables concurrent resolution.
	ParallelThreshold int `toml:"parallel_threshold" yaml:"parallel_threshold"`
}

// Listing configures directory listings.
type Listing struct {
	ShowHidden bool `toml:"show_hidden" yaml:"show_hidden"`
	DirsFirst  bool `toml:"dirs_first" yaml:"dirs_first"`
}

// Default returns the built-in configuration.
func Default() Config {
	ed := editor.DefaultConfig()
	ls := dirlist.DefaultConfig()
	return Config{
		Logging: Logging{Level: "info"},
		Editor: Editor{
			HelpOverlay:       ed.HelpOverlay,
			ParallelThreshold: ed.ParallelThreshold,
		},
		Listing: Listing{
			ShowHidden: ls.ShowHidden,
			DirsFirst:  ls.DirsFirst,
		},
	}
}

// Validate checks every setting and returns all failures joined.
func (c Config) Validate() error {
	var errs []error
	if !log.ValidLevel(c.Logging.Level) {
		errs = append(errs, &ValidationError{Path: "logging.level", Message: "unknown log level", Value: c.Logging.Level})
	}
	if c.Editor.ParallelThreshold < 0 {
		errs = append(errs, &ValidationError{Path: "editor.parallel_threshold", Message: "must not be negative", Value: c.Editor.ParallelThreshold})
	}
	for i, l := range c.Languages {
		if l.Name == "" {
			errs = append(errs, &ValidationError{Path: "languages", Message: "language without a name", Value: i})
		}
	}
	kms, err := keymap.FromTable(c.Keys)
	if err != nil {
		errs = append(errs, &ValidationError{Path: "keys", Message: err.Error(), Value: len(c.Keys)})
	}
	for _, km := range kms {
		if err := km.Validate(knownCommand); err != nil {
			errs = append(errs, &ValidationError{Path: "keys." + km.Mode.String(), Message: err.Error(), Value: len(km.Bindings)})
		}
	}
	return errors.Join(errs...)
}

func knownCommand(name string) bool {
	_, ok := editor.Lookup(name)
	return ok
}

// LogLevel returns the parsed logging level.
func (c Config) LogLevel() log.Level {
	return log.ParseLevel(c.Logging.Level)
}

// EditorConfig returns the editor settings.
func (c Config) EditorConfig() editor.Config {
	return editor.Config{
		HelpOverlay:       c.Editor.HelpOverlay,
		ParallelThreshold: c.Editor.ParallelThreshold,
	}
}

// ListingConfig returns the directory listing settings.
func (c Config) ListingConfig() dirlist.Config {
	return dirlist.Config{
		ShowHidden: c.Listing.ShowHidden,
		DirsFirst:  c.Listing.DirsFirst,
	}
}

// Syntax returns a registry holding the built-in languages plus the
// configured ones.
func (c Config) Syntax() *syntax.Registry {
	return syntax.NewRegistry(slices.Clone(c.Languages)...)
}

// Keymaps returns the default keymaps with the configured bindings
// registered over them.
func (c Config) Keymaps() (*keymap.Registry, error) {
	r := keymap.NewRegistry()
	if err := keymap.LoadDefaults(r); err != nil {
		return nil, err
	}
	user, err := keymap.FromTable(c.Keys)
	if err != nil {
		return nil, err
	}
	for _, km := range user {
		if err := r.Register(km); err != nil {
			return nil, err
		}
	}
	return r, nil
}
