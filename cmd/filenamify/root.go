package main

import (
	"github.com/spf13/cobra"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:   "filenamify [input...]",
		Short: "Convert strings into valid filenames",
		Long: "Convert strings into valid, portable filenames.\n\n" +
			"With no arguments, every line read from stdin is converted.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_, err := ctx.ensureConfig(cmd)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEach(ctx, cmd, args, filenamify.Sanitize)
		},
	}

	defaults := filenamify.DefaultOptions()
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	flags.StringVarP(&ctx.replacementFlag, "replacement", "r", defaults.Replacement, "Replacement for invalid characters")
	flags.IntVarP(&ctx.maxLengthFlag, "max-length", "m", defaults.MaxLength, "Maximum filename length in UTF-16 code units")
	flags.BoolVarP(&ctx.verboseFlag, "verbose", "v", false, "Log every conversion to stderr")

	rootCmd.AddCommand(newPathCommand(ctx))
	rootCmd.AddCommand(newComponentsCommand(ctx))
	rootCmd.AddCommand(newTraceCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
