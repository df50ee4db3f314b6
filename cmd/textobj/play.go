package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/textobj/internal/config"
	"github.com/dshills/textobj/internal/editor"
	"github.com/dshills/textobj/internal/ui/term"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play [path]",
		Short: "Edit a file or browse a directory in the terminal",
		Long: `Play opens an interactive terminal view. A directory opens in the
browser, a file opens for editing and no argument starts with an empty
scratch buffer. Ctrl+Q quits.

When a configuration file is in use, changes to it are applied while the
view is open.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ed := a.newEditor()
			if len(args) == 1 {
				if err := openPath(ctx, ed, args[0]); err != nil {
					return err
				}
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			if a.loadedFrom != "" {
				go a.watchConfig(ctx, ed)
			}

			err = term.New(screen, ed, a.keys, term.WithLogger(a.logger)).Run(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func openPath(ctx context.Context, ed *editor.Editor, path string) error {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return ed.BrowseDir(path)
	}
	_, err = ed.OpenFile(ctx, path)
	return err
}

// watchConfig applies editor settings from the configuration file each
// time it is saved.
func (a *app) watchConfig(ctx context.Context, ed *editor.Editor) {
	logger := a.logger.WithField("config", a.loadedFrom)
	err := config.Watch(ctx, a.loadedFrom, func(cfg config.Config, err error) {
		if err != nil {
			logger.Warn("reload failed: %v", err)
			return
		}
		ed.SetConfig(cfg.EditorConfig())
		logger.Info("configuration reloaded")
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("watch stopped: %v", err)
	}
}
