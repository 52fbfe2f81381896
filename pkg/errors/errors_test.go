package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("config.kdl", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "config.kdl", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "config.kdl")
	require.Contains(t, err.Error(), ":12:")
}

func TestParseErrorOmitsZeroLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("gruvbox.kdl", 0, stdErrors.New("unterminated string"))
	require.NotContains(t, err.Error(), ":0:")
	require.Contains(t, err.Error(), "unterminated string")
}

func TestConfigErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("$HOME is not defined")
	err := NewConfigError("cannot locate zellij config directory", underlying)

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "cannot locate zellij config directory")
}

func TestCacheWriteErrorCarriesPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewCacheWriteError("/home/u/.config/zellij/.zjthemes-cache.json", underlying)

	var cacheErr *CacheWriteError
	require.ErrorAs(t, err, &cacheErr)
	require.Equal(t, "/home/u/.config/zellij/.zjthemes-cache.json", cacheErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}
