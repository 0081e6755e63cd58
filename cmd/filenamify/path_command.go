package main

import (
	"github.com/spf13/cobra"

	"github.com/tragoedia0722/filenamify/pkg/filenamify"
)

func newPathCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "path <path...>",
		Short: "Sanitize the last element of each path",
		Long: "Resolve each path to an absolute path, expanding a leading ~, and\n" +
			"sanitize only its last element. The directory part is left untouched.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEach(ctx, cmd, args, filenamify.Path)
		},
	}
}

func newComponentsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "components <path...>",
		Short: "Sanitize every element of relative paths",
		Long: "Split each path on / and \\, sanitize every element and join them\n" +
			"with the OS separator. \".\" and \"..\" elements are replaced.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEach(ctx, cmd, args, filenamify.Components)
		},
	}
}
