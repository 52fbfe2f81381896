package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcault/zjthemes/internal/paths"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func setupConfigDir(t *testing.T, config string) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(paths.EnvConfigDir, dir)
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.kdl"), []byte(config), 0644))
	}
	return dir
}

func TestApplyCommandAppendsThemeNode(t *testing.T) {
	dir := setupConfigDir(t, "other_setting 1\n")

	out, err := runCLI(t, "apply", "gruvbox")
	require.NoError(t, err)
	assert.Contains(t, out, "Applied theme: gruvbox")

	data, err := os.ReadFile(filepath.Join(dir, "config.kdl"))
	require.NoError(t, err)
	assert.Equal(t, "other_setting 1\ntheme \"gruvbox\"\n", string(data))
}

func TestApplyCommandReplacesExistingTheme(t *testing.T) {
	dir := setupConfigDir(t, "theme \"old\"\nmouse_mode true\n")

	_, err := runCLI(t, "apply", "nord")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "config.kdl"))
	require.NoError(t, err)
	assert.Equal(t, "theme \"nord\"\nmouse_mode true\n", string(data))
}

func TestApplyCommandRejectsInvalidConfig(t *testing.T) {
	dir := setupConfigDir(t, "themes {\n    broken\n")

	_, err := runCLI(t, "apply", "nord")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Suggestion")

	data, readErr := os.ReadFile(filepath.Join(dir, "config.kdl"))
	require.NoError(t, readErr)
	assert.Equal(t, "themes {\n    broken\n", string(data))
}

func TestApplyCommandRequiresThemeArgument(t *testing.T) {
	setupConfigDir(t, "")

	_, err := runCLI(t, "apply")
	assert.Error(t, err)
}
