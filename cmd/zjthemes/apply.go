package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

func newApplyCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <theme>",
		Short: "Set the theme in your Zellij config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := strings.TrimSpace(args[0])
			if theme == "" {
				return fmt.Errorf("theme name must not be empty")
			}

			app, err := newAppContext(flags)
			if err != nil {
				return err
			}

			if err := app.Resolver.ApplySelection(theme); err != nil {
				var parseErr *apperrors.ParseError
				if errors.As(err, &parseErr) {
					return newCommandError("apply theme", fmt.Sprintf("parsing %s", app.Paths.Config), err, "Your config file is not valid KDL; fix it by hand before applying a theme.")
				}
				return newCommandError("apply theme", "updating the config file", err, "Check that the config file exists and is writable.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Applied theme: %s\n", theme)
			return nil
		},
	}
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
