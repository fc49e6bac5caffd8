package config

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// Validation errors.
var (
	ErrInvalidLogLevel = errors.New("unknown log level")
	ErrInvalidFormat   = errors.New("unknown output format")
	ErrInvalidCacheTTL = errors.New("invalid cache ttl")
	ErrInvalidMaxWidth = errors.New("max_width cannot be negative")
)

// Formats lists the accepted display formats.
var Formats = []string{"text", "json", "yaml"}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidationError wraps a validation error with context.
type ValidationError struct {
	Field   string
	Value   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks every field and returns all problems joined.
// A nil config is valid.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}

	var errs []error

	if c.LogLevel != "" && !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Value:   c.LogLevel,
			Message: "must be one of debug, info, warn, error",
			Err:     ErrInvalidLogLevel,
		})
	}

	if ttl := c.Detector.CacheTTL; ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil || d <= 0 {
			errs = append(errs, &ValidationError{
				Field:   "detector.cache_ttl",
				Value:   ttl,
				Message: "must be a positive duration such as \"1s\"",
				Err:     ErrInvalidCacheTTL,
			})
		}
	}

	if f := c.Display.Format; f != "" && !slices.Contains(Formats, f) {
		errs = append(errs, &ValidationError{
			Field:   "display.format",
			Value:   f,
			Message: "must be one of " + strings.Join(Formats, ", "),
			Err:     ErrInvalidFormat,
		})
	}

	if c.Display.MaxWidth < 0 {
		errs = append(errs, &ValidationError{
			Field:   "display.max_width",
			Value:   strconv.Itoa(c.Display.MaxWidth),
			Message: "cannot be negative",
			Err:     ErrInvalidMaxWidth,
		})
	}

	return errors.Join(errs...)
}
