package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

func newRefreshCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Fetch the theme catalog from the remote source and rewrite the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			catalog, err := app.Resolver.Resolve(cmd.Context(), true)
			if err != nil {
				var cacheErr *apperrors.CacheWriteError
				if errors.As(err, &cacheErr) {
					return newCommandError("refresh catalog", "writing the theme cache", err, "Check disk space and permissions on your Zellij config directory.")
				}
				return newCommandError("refresh catalog", "fetching the theme catalog", err, "Check your network connection, or try again later.")
			}

			skipped := app.Resolver.SkippedLastFetch()
			if len(skipped) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Catalog refreshed: %d themes (%d remote files skipped)\n", len(catalog), len(skipped))
				for _, name := range skipped {
					fmt.Fprintf(cmd.OutOrStdout(), "  skipped: %s\n", name)
				}
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Catalog refreshed: %d themes\n", len(catalog))
			return nil
		},
	}
}
