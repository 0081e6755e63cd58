package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

func newTraceCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <input>",
		Short: "Show the output of every sanitization stage",
		Long: "Run the sanitizer on a single input and print the value after each\n" +
			"stage. Stages that changed the value are marked with *.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig(cmd)
			if err != nil {
				return err
			}

			results, err := filenamify.Trace(args[0], filenamify.WithOptions(cfg.Options()))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderStages(args[0], results))
			return err
		},
	}
}
