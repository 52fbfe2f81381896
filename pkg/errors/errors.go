package errors

import (
	"fmt"
)

// ParseError represents a KDL parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConfigError indicates the tool could not determine its filesystem layout.
type ConfigError struct {
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(message string, err error) error {
	return &ConfigError{Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("config error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CacheWriteError reports that a catalog was fetched successfully but could
// not be persisted. Callers holding the catalog may keep using it.
type CacheWriteError struct {
	Path string
	Err  error
}

// NewCacheWriteError constructs a CacheWriteError.
func NewCacheWriteError(path string, err error) error {
	return &CacheWriteError{Path: path, Err: err}
}

func (e *CacheWriteError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cache write error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *CacheWriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
