package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xhad/headlines/pkg/extractor"
	"github.com/xhad/headlines/pkg/fetcher"
	"github.com/xhad/headlines/pkg/reporter"
	"gopkg.in/yaml.v3"
)

const DefaultURL = "https://www.sueddeutsche.de/"

type Config struct {
	Fetcher struct {
		URL       string        `yaml:"url"`
		UserAgent string        `yaml:"user_agent"`
		Timeout   time.Duration `yaml:"timeout"`
	} `yaml:"fetcher"`

	Extractor struct {
		Selectors []string `yaml:"selectors"`
		MinLength int      `yaml:"min_length"`
	} `yaml:"extractor"`

	Output struct {
		Header string `yaml:"header"`
		Color  string `yaml:"color"` // auto, always or never
	} `yaml:"output"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func LoadConfig(path string) (*Config, error) {
	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"headlines.yaml",
			"headlines.yml",
			filepath.Join(os.Getenv("HOME"), ".config/headlines/config.yaml"),
			"/etc/headlines/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	mergeWithEnv(&config)
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Fetcher.URL == "" {
		config.Fetcher.URL = DefaultURL
	}
	if config.Fetcher.UserAgent == "" {
		config.Fetcher.UserAgent = fetcher.DefaultUserAgent
	}
	if config.Fetcher.Timeout == 0 {
		config.Fetcher.Timeout = fetcher.DefaultTimeout
	}

	if len(config.Extractor.Selectors) == 0 {
		config.Extractor.Selectors = append([]string(nil), extractor.DefaultSelectors...)
	}
	if config.Extractor.MinLength == 0 {
		config.Extractor.MinLength = extractor.DefaultMinLength
	}

	if config.Output.Header == "" {
		config.Output.Header = reporter.DefaultHeader
	}
	if config.Output.Color == "" {
		config.Output.Color = "auto"
	}

	if config.Log.Level == "" {
		config.Log.Level = "warn"
	}
}

func mergeWithEnv(config *Config) {
	if url := os.Getenv("HEADLINES_URL"); url != "" {
		config.Fetcher.URL = url
	}
	if ua := os.Getenv("HEADLINES_USER_AGENT"); ua != "" {
		config.Fetcher.UserAgent = ua
	}
	if level := os.Getenv("HEADLINES_LOG_LEVEL"); level != "" {
		config.Log.Level = level
	}
}
