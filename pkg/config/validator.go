package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/rs/zerolog"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Fetcher config
	if c.Fetcher.URL == "" {
		errors = append(errors, ValidationError{
			Field:   "fetcher.url",
			Message: "URL is required",
		})
	} else if u, err := url.Parse(c.Fetcher.URL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "fetcher.url",
			Message: fmt.Sprintf("invalid URL: %s", c.Fetcher.URL),
		})
	}

	if strings.TrimSpace(c.Fetcher.UserAgent) == "" {
		errors = append(errors, ValidationError{
			Field:   "fetcher.user_agent",
			Message: "user_agent must not be blank",
		})
	}

	if c.Fetcher.Timeout <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetcher.timeout",
			Message: "timeout must be positive",
		})
	}

	// Validate Extractor config
	if len(c.Extractor.Selectors) == 0 {
		errors = append(errors, ValidationError{
			Field:   "extractor.selectors",
			Message: "at least one selector is required",
		})
	}

	for _, sel := range c.Extractor.Selectors {
		if _, err := cascadia.Compile(sel); err != nil {
			errors = append(errors, ValidationError{
				Field:   "extractor.selectors",
				Message: fmt.Sprintf("invalid selector %q: %v", sel, err),
			})
		}
	}

	if c.Extractor.MinLength < 1 {
		errors = append(errors, ValidationError{
			Field:   "extractor.min_length",
			Message: "min_length must be positive",
		})
	}

	// Validate Output config
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		errors = append(errors, ValidationError{
			Field:   "output.color",
			Message: fmt.Sprintf("color must be one of auto, always, never: %s", c.Output.Color),
		})
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		errors = append(errors, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("unknown log level: %s", c.Log.Level),
		})
	}

	return errors
}
