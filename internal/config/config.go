package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alfredodrv/mwrgen/internal/logger"
	"github.com/alfredodrv/mwrgen/internal/workrule"
)

// Environment variables read by Load.
const (
	EnvInputFilePath  = "MWR_INPUT_FILE_PATH"
	EnvOutputFilePath = "MWR_OUTPUT_FILE_PATH"
	EnvIncludePastDue = "MWR_INCLUDE_PAST_DUE"
	EnvOnError        = "MWR_ON_ERROR"
	EnvLogLevel       = "MWR_LOG_LEVEL"
	EnvLogFormat      = "MWR_LOG_FORMAT"
)

// ErrMissingArguments is returned by Validate when an input or output path is missing.
var ErrMissingArguments = errors.New("missing input or output file path")

// Config holds the settings for one generator run.
type Config struct {
	InputFilePath  string `yaml:"input_file_path"`
	OutputFilePath string `yaml:"output_file_path"`
	IncludePastDue bool   `yaml:"include_past_due"`
	OnError        string `yaml:"on_error"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		OnError:   string(workrule.PolicyAbort),
		LogLevel:  "info",
		LogFormat: logger.FormatConsole,
	}
}

// Load builds a Config from the defaults, the optional YAML file at path and
// the environment, in increasing order of precedence. A .env file in the
// working directory is loaded first if present.
func Load(path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	cfg.InputFilePath = getEnv(EnvInputFilePath, cfg.InputFilePath)
	cfg.OutputFilePath = getEnv(EnvOutputFilePath, cfg.OutputFilePath)
	cfg.OnError = getEnv(EnvOnError, cfg.OnError)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)

	includePastDue, err := getEnvAsBool(EnvIncludePastDue, cfg.IncludePastDue)
	if err != nil {
		return err
	}
	cfg.IncludePastDue = includePastDue
	return nil
}

// Validate checks that both paths are set and every enumerated value is known.
func (c *Config) Validate() error {
	if c.InputFilePath == "" || c.OutputFilePath == "" {
		return ErrMissingArguments
	}
	if _, err := workrule.ParseErrorPolicy(c.OnError); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", logger.FormatConsole, logger.FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q (want console|json)", c.LogFormat)
	}
	return nil
}

// ErrorPolicy returns the configured policy. Call Validate first.
func (c *Config) ErrorPolicy() workrule.ErrorPolicy {
	policy, _ := workrule.ParseErrorPolicy(c.OnError)
	return policy
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}
