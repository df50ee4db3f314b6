package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJumpCmd(a *app) *cobra.Command {
	var at, lang string
	cmd := &cobra.Command{
		Use:   "jump [file]",
		Short: "Print the bracket matching the one at a position",
		Long: `Jump finds the bracket matching the one under the cursor using the
syntax tree of the file. Files without a supported language have no
tree, so nothing matches.`,
		Example: `  textobj jump main.go --at 14:22`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ed := a.newEditor()
			doc, err := a.openInput(cmd, ed, args, lang)
			if err != nil {
				return err
			}
			t := doc.Text()
			r, err := parseRange(t, at)
			if err != nil {
				return err
			}
			sel, err := parseSelection(t, []string{at})
			if err != nil {
				return err
			}
			ed.SetSelection(sel)

			ed.GotoMatchingPair()
			got := ed.Selection().Primary()
			if got == r {
				return fmt.Errorf("no matching bracket at %s", at)
			}
			pos := got.Cursor()
			line, col := lineCol(t, pos)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d %d:%d\n", pos, line, col)
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "0", "cursor: OFFSET or LINE:COL")
	cmd.Flags().StringVar(&lang, "lang", "", "language of standard input, e.g. go")
	return cmd
}
