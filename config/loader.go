package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderOptions controls where configuration is read from.
type LoaderOptions struct {
	// ConfigFile is an explicit YAML config path. When empty, the
	// loader searches the standard locations and accepts none found.
	ConfigFile string
	// EnvFile is an explicit .env path. When empty, ".env" in the
	// working directory is loaded if present.
	EnvFile string
}

// standard config search locations, in order.
var searchPaths = []string{
	"./config.yml",
	"./config/config.yml",
}

// Load resolves the engine configuration from file, .env, and
// CALLINTEL_* environment variables. A missing config file is not an
// error; every value has a default.
func Load(opts LoaderOptions) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix("CALLINTEL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	file := opts.ConfigFile
	if file == "" {
		file = findConfigFile()
	}
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Default returns the all-defaults configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

func loadEnvFile(path string) {
	if path != "" {
		_ = godotenv.Load(path)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}

func findConfigFile() string {
	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
