package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/lcault/zjthemes/internal/tui"
	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

func runPicker(flags *rootFlags) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the picker needs a terminal; use 'zjthemes list' in scripts")
	}

	app, err := newAppContext(flags)
	if err != nil {
		return err
	}

	if err := app.Resolver.EnsureThemeDir(); err != nil {
		return newCommandError("prepare theme directory", "creating "+app.Paths.ThemeDir, err, "Check permissions on your Zellij config directory.")
	}

	catalog, err := app.Resolver.Resolve(context.Background(), flags.forceRefresh)
	if err != nil {
		var cacheErr *apperrors.CacheWriteError
		if !errors.As(err, &cacheErr) {
			return newCommandError("fetch themes", "resolving the theme catalog", err, "Check your network connection, or try again later.")
		}
		// The catalog is good; only persisting it failed. Keep going.
		app.Log.Error(err, "could not persist theme cache")
	}

	program := tea.NewProgram(tui.NewModel(catalog, app.Resolver), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running picker: %w", err)
	}

	return nil
}
