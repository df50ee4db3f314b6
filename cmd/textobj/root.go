package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/textobj/internal/config"
	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/input/keymap"
	"github.com/dshills/textobj/internal/integration/git"
	"github.com/dshills/textobj/internal/log"
	"github.com/dshills/textobj/internal/syntax"
)

// app carries the state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	logFile    string
	noGit      bool

	// loadedFrom is the configuration file in use, empty for none.
	loadedFrom string
	cfg        config.Config
	logger     *log.Logger
	closeLog   func()
	syntax     *syntax.Registry
	keys       *keymap.Registry
	git        *git.Manager
}

func newRootCmd() *cobra.Command {
	a := &app{logger: log.Null}
	root := &cobra.Command{
		Use:           "textobj",
		Short:         "Resolve text objects over multi-cursor selections",
		Long:          `textobj selects, changes, deletes and yanks text objects (words, paragraphs, bracket and quote pairs, syntax nodes, diff hunks) around every cursor of a selection.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/textobj/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFile, "log-file", "", "append logs to this file")
	flags.BoolVar(&a.noGit, "no-git", false, "do not use git for diff baselines")

	root.AddCommand(
		newResolveCmd(a),
		newJumpCmd(a),
		newLsCmd(a),
		newPlayCmd(a),
		newKeysCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup loads the configuration and builds the shared collaborators.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, from, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		if !log.ValidLevel(a.logLevel) {
			return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", a.logLevel)
		}
		cfg.Logging.Level = a.logLevel
	}
	if a.logFile != "" {
		cfg.Logging.File = a.logFile
	}
	a.cfg = cfg
	a.loadedFrom = from

	if cfg.Logging.File != "" {
		logger, closeLog, err := log.OpenFile(cfg.Logging.File, cfg.LogLevel())
		if err != nil {
			return err
		}
		a.logger, a.closeLog = logger, closeLog
	}

	a.syntax = cfg.Syntax()
	keys, err := cfg.Keymaps()
	if err != nil {
		return err
	}
	a.keys = keys
	if !a.noGit {
		a.git = git.NewManager()
	}
	a.logger.WithField("config", from).Debug("starting %s", cmd.CommandPath())
	return nil
}

func (a *app) teardown() {
	if a.git != nil {
		_ = a.git.Close()
	}
	if a.closeLog != nil {
		a.closeLog()
	}
}

// loadConfig loads path, or the per-user file when path is empty and that
// file exists. It returns the file actually used.
func loadConfig(path string) (config.Config, string, error) {
	if path != "" {
		cfg, err := config.Load(path)
		return cfg, path, err
	}
	def, err := config.DefaultPath()
	if err == nil {
		cfg, err := config.Load(def)
		if err == nil {
			return cfg, def, nil
		}
		if !errors.Is(err, config.ErrFileNotFound) {
			return config.Config{}, "", err
		}
	}
	cfg, err := config.Load("")
	return cfg, "", err
}

// newEditor creates an editor configured from the loaded configuration.
func (a *app) newEditor(opts ...editor.Option) *editor.Editor {
	base := []editor.Option{
		editor.WithConfig(a.cfg.EditorConfig()),
		editor.WithLogger(a.logger),
		editor.WithSyntax(a.syntax),
		editor.WithListing(a.cfg.ListingConfig()),
	}
	if a.git != nil {
		base = append(base, editor.WithBaselines(a.git))
	}
	return editor.New(append(base, opts...)...)
}
