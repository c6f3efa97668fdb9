package app

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the yaml-backed application configuration. Every field has a
// default, so a missing config file is not an error.
type Config struct {
	APIBase        string `yaml:"api_base"`
	AssistantKey   string `yaml:"assistant_api_key"`
	AssistantModel string `yaml:"assistant_model"`
	GitHubUser     string `yaml:"github_user"`
	ContribBase    string `yaml:"contrib_base"`
	Theme          string `yaml:"theme"`
	PageSize       int    `yaml:"page_size"`
	TokenPath      string `yaml:"token_path"`
	LogLevel       string `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		APIBase:        "http://localhost:3000",
		AssistantModel: "gemini-2.5-flash-lite",
		GitHubUser:     "raghavdwd",
		Theme:          "glass",
		PageSize:       10,
		LogLevel:       "info",
	}
}

// LoadConfig reads the config file at path and applies environment
// overrides. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return cfg, err
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if v := os.Getenv("FOLIO_API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.AssistantKey = v
	}
	if v := os.Getenv("FOLIO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("FOLIO_GITHUB_USER"); v != "" {
		cfg.GitHubUser = v
	}

	if cfg.APIBase == "" {
		cfg.APIBase = "http://localhost:3000"
	}
	if cfg.AssistantModel == "" {
		cfg.AssistantModel = "gemini-2.5-flash-lite"
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "folio", "config.yml")
}
