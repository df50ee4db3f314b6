package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dshills/textobj/internal/help"
	"github.com/dshills/textobj/internal/input/mode"
)

func newKeysCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "keys [mode]",
		Short:     "List the key bindings of a mode",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"normal", "insert", "select", "browse"},
		RunE: func(cmd *cobra.Command, args []string) error {
			md := mode.Normal
			if len(args) == 1 {
				m, err := mode.Parse(args[0])
				if err != nil {
					return err
				}
				md = m
			}

			bindings := a.keys.Bindings(md)
			pairs := make([][2]string, len(bindings))
			for i, b := range bindings {
				desc := b.Description
				if desc == "" {
					desc = b.Command
				}
				pairs[i] = [2]string{b.Keys, desc}
			}
			info := help.New(md.String()+" mode", pairs...)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info.String())
			return err
		},
	}
}
