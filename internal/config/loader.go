package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	defaultConfigPath = "./config.yaml"
	defaultDotEnvPath = ".env"
)

// Load builds the configuration shared by the server and the bot.
// Values resolve from env-default tags, then the YAML file, then the process
// environment. A .env file only fills variables the process leaves unset.
func Load() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := readSources(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// readSources reads CONFIG_PATH or ./config.yaml when present, else the
// environment alone. A file named through CONFIG_PATH must exist.
func readSources(cfg *Config) error {
	path, required := lookupPath("CONFIG_PATH", defaultConfigPath)

	found, err := fileExists(path, required)
	if err != nil {
		return fmt.Errorf("config: file %s: %w", path, err)
	}

	if !found {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
		return nil
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

func loadDotEnv() error {
	path, required := lookupPath("DOTENV_PATH", defaultDotEnvPath)

	found, err := fileExists(path, required)
	if err != nil {
		return fmt.Errorf("config: dotenv %s: %w", path, err)
	}
	if !found {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: dotenv %s: %w", path, err)
	}
	return nil
}

// lookupPath returns the path set in key, or fallback. Only a path set in
// key is required to exist.
func lookupPath(key, fallback string) (path string, required bool) {
	if path := os.Getenv(key); path != "" {
		return path, true
	}
	return fallback, false
}

func fileExists(path string, required bool) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case required:
		return false, err
	default:
		return false, nil
	}
}
