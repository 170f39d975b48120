package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bale/internal/engine/bundler"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	var opts bundler.Options

	cmd := &cobra.Command{
		Use:   "bundle [entry-point]",
		Short: "Produce executables for the project's entry points",
		Long: `Bundle reads bundle.yaml and bundle.lock from the current directory and
produces one self-contained executable per entry point under dist/. With an
argument, only that entry point is built.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.EntryPoint = args[0]
			}
			return c.app.Bundle(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.DirtyBuild, "dirty-build", false, "reuse previously downloaded packages instead of re-fetching")
	cmd.Flags().BoolVar(&opts.KeepArchive, "keep-archive", false, "keep the intermediate archive next to each executable")

	return cmd
}
