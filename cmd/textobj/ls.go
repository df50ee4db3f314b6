package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/dshills/textobj/internal/dirlist"
	"github.com/dshills/textobj/internal/vfs"
)

func newLsCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "Print a directory listing as shown by the browser",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			cfg := a.cfg.ListingConfig()
			if cmd.Flags().Changed("all") {
				cfg.ShowHidden = all
			}
			listing, err := dirlist.New(vfs.NewOSFS(), cfg, a.logger).List(dir)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), listing.Text)
			return err
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include entries starting with a dot")
	return cmd
}
