package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/textobj/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Config prints the configuration after the file and TEXTOBJ_*
environment variables are applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				out []byte
				err error
			)
			switch format {
			case "toml":
				out, err = toml.Marshal(a.cfg)
			case "yaml":
				out, err = yaml.Marshal(a.cfg)
			default:
				return fmt.Errorf("%w: %s", config.ErrUnsupportedFormat, format)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if a.loadedFrom != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "# loaded from %s\n", a.loadedFrom)
			}
			_, err = w.Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "output format (toml|yaml)")
	return cmd
}
