package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Long: "Print the effective configuration as TOML.\n\n" +
			"With --write the configuration is saved to the --config path, or to\n" +
			"~/.config/filenamify/config.toml when no path is given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}

			if !write {
				return cfg.Encode(cmd.OutOrStdout())
			}

			path, err := cfg.Save(ctx.configFlag)
			if err != nil {
				return err
			}
			ctx.log().Debug("configuration saved", zap.String("path", path))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Save the configuration instead of printing it")
	return cmd
}
