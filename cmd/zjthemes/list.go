package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

func newListCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			catalog, err := app.Resolver.Resolve(cmd.Context(), flags.forceRefresh)
			if err != nil {
				var cacheErr *apperrors.CacheWriteError
				if !errors.As(err, &cacheErr) {
					return newCommandError("list themes", "resolving the theme catalog", err, "Check your network connection, or try again later.")
				}
				app.Log.Error(err, "could not persist theme cache")
			}

			for _, theme := range catalog {
				fmt.Fprintln(cmd.OutOrStdout(), theme)
			}
			return nil
		},
	}
}
