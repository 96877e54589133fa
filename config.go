package quizai

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries the caller-configured constants of the pipeline: model
// parameters, the per-call timeout and collaborator locations. The API key
// always comes from the GROQ_API_KEY environment variable, never the file.
type Config struct {
	Model              string `yaml:"model"`
	BaseURL            string `yaml:"base_url"`
	RequestTimeoutSecs int    `yaml:"request_timeout_seconds"`
	DBPath             string `yaml:"db_path"`
	ListenAddr         string `yaml:"listen_addr"`
	TranscriptDir      string `yaml:"transcript_dir"`
	SessionSecret      string `yaml:"session_secret"`

	APIKey string `yaml:"-"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Model:              DefaultModel,
		BaseURL:            GroqBaseURL,
		RequestTimeoutSecs: int(DefaultRequestTimeout / time.Second),
		DBPath:             "./quiz.db",
		ListenAddr:         ":8080",
		TranscriptDir:      "log",
	}
}

// LoadConfig reads the yaml config at path (optional) and the GROQ_API_KEY
// environment variable (required). File values override defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.APIKey = os.Getenv("GROQ_API_KEY")
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("environment variable GROQ_API_KEY is required but not set")
	}
	return cfg, nil
}

// GeneratorOptions translates the config into Generator options.
func (c *Config) GeneratorOptions() []GeneratorOption {
	return []GeneratorOption{
		WithModel(c.Model),
		WithBaseURL(c.BaseURL),
		WithTimeout(time.Duration(c.RequestTimeoutSecs) * time.Second),
	}
}
