package paths

import (
	"os"
	"path/filepath"

	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

// EnvConfigDir is the environment override for the Zellij config directory,
// honored the same way Zellij itself honors it.
const EnvConfigDir = "ZELLIJ_CONFIG_DIR"

const (
	configFileName   = "config.kdl"
	themeDirName     = "themes"
	cacheFileName    = ".zjthemes-cache.json"
	settingsFileName = "zjthemes.yml"
)

// Paths holds every filesystem location the tool touches, resolved once at
// startup and passed explicitly to the components that need them. Resolution
// performs no I/O.
type Paths struct {
	Config   string
	ThemeDir string
	Cache    string
	Settings string
}

// Resolve determines the config file path from ZELLIJ_CONFIG_DIR, falling
// back to ~/.config/zellij, and derives the theme directory, cache file and
// settings file as siblings. Returns a ConfigError when neither the override
// nor a home directory is available.
func Resolve() (Paths, error) {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, apperrors.NewConfigError("cannot locate zellij config directory: "+EnvConfigDir+" is unset and no home directory is available", err)
		}
		dir = filepath.Join(home, ".config", "zellij")
	}

	return Paths{
		Config:   filepath.Join(dir, configFileName),
		ThemeDir: filepath.Join(dir, themeDirName),
		Cache:    filepath.Join(dir, cacheFileName),
		Settings: filepath.Join(dir, settingsFileName),
	}, nil
}
