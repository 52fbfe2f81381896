package settings

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultListURL points at the themes shipped with Zellij itself.
const DefaultListURL = "https://api.github.com/repos/zellij-org/zellij/contents/zellij-utils/assets/themes"

const (
	// DefaultTimeout bounds each HTTP request during a fetch.
	DefaultTimeout = 15 * time.Second
	// DefaultCacheTTL matches the one hour staleness window of the cache.
	DefaultCacheTTL = time.Hour
	// DefaultConcurrency bounds parallel theme file downloads.
	DefaultConcurrency = 4
)

// Settings are optional user overrides read from zjthemes.yml next to the
// Zellij config. Every field has a working default; the file may be absent.
type Settings struct {
	ListURL     string        `validate:"omitempty,url"`
	Timeout     time.Duration `validate:"omitempty,min=0"`
	CacheTTL    time.Duration `validate:"omitempty,min=0"`
	Concurrency int           `validate:"omitempty,min=1,max=16"`
}

// UnmarshalYAML decodes duration fields from Go duration strings ("5s",
// "2m"), which yaml.v3 does not do for time.Duration on its own.
func (s *Settings) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		ListURL     string `yaml:"list_url"`
		Timeout     string `yaml:"timeout"`
		CacheTTL    string `yaml:"cache_ttl"`
		Concurrency int    `yaml:"concurrency"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	s.ListURL = raw.ListURL
	s.Concurrency = raw.Concurrency

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		s.Timeout = d
	}
	if raw.CacheTTL != "" {
		d, err := time.ParseDuration(raw.CacheTTL)
		if err != nil {
			return fmt.Errorf("cache_ttl: %w", err)
		}
		s.CacheTTL = d
	}

	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Defaults returns the settings used when no file is present.
func Defaults() Settings {
	return Settings{
		ListURL:     DefaultListURL,
		Timeout:     DefaultTimeout,
		CacheTTL:    DefaultCacheTTL,
		Concurrency: DefaultConcurrency,
	}
}

// Load reads the settings file at path, applying defaults for anything left
// unset. A missing file yields the defaults; a malformed or invalid file is
// an error the caller should surface before doing any work.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Defaults(), nil
		}
		return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings %s: %w", path, err)
	}

	if err := validatorInstance().Struct(&s); err != nil {
		return Settings{}, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	defaults := Defaults()
	if s.ListURL == "" {
		s.ListURL = defaults.ListURL
	}
	if s.Timeout == 0 {
		s.Timeout = defaults.Timeout
	}
	if s.CacheTTL == 0 {
		s.CacheTTL = defaults.CacheTTL
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaults.Concurrency
	}

	return s, nil
}
