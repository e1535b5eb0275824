package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	envOutput   = "TROUBLESHOOTER_OUTPUT"
	envLogLevel = "TROUBLESHOOTER_LOG_LEVEL"
	envNoColor  = "NO_COLOR"
)

var outputFormats = []string{"human", "json", "yaml"}

type Config struct {
	Output   string
	LogLevel string
	NoColor  bool
}

func Default() *Config {
	return &Config{
		Output:   "human",
		LogLevel: "info",
	}
}

// Load starts from the defaults and applies a .env file, if one exists,
// and then the environment.
func Load() (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	// 2. Override with Environment Variables if present
	cfg := Default()
	if v := os.Getenv(envOutput); v != "" {
		cfg.Output = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if _, ok := os.LookupEnv(envNoColor); ok {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	for _, f := range outputFormats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported output format: %s (supported: %s)", c.Output, strings.Join(outputFormats, ", "))
}
