package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose      bool
	forceRefresh bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "zjthemes",
		Short:         "Browse and apply Zellij themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(flags)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.forceRefresh, "force-refresh", false, "Ignore the cached catalog and fetch from the remote source")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newRefreshCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
