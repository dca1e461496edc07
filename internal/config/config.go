package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Web       WebConfig       `yaml:"web"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	History   HistoryConfig   `yaml:"history"`
}

type WebConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

type HistoryConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

const defaultConfigFile = "config.yaml"

func defaults() *Config {
	return &Config{
		Web:       WebConfig{ListenAddr: ":8080"},
		Artifacts: ArtifactsConfig{Dir: "artifacts"},
		History:   HistoryConfig{MaxEntries: 200},
	}
}

// Load builds the config in three layers: baked-in defaults, an optional
// YAML file, then environment variables. A .env file is honored when
// present. The default config file may be absent; a file named via
// CONFIG_FILE must exist.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	path := os.Getenv("CONFIG_FILE")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case explicit || !os.IsNotExist(err):
		return nil, err
	}

	if v := os.Getenv("WEB_LISTEN_ADDR"); v != "" {
		cfg.Web.ListenAddr = v
	}
	if v := os.Getenv("ARTIFACTS_DIR"); v != "" {
		cfg.Artifacts.Dir = v
	}
	if v := os.Getenv("HISTORY_MAX_ENTRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HISTORY_MAX_ENTRIES: %w", err)
		}
		cfg.History.MaxEntries = n
	}

	return cfg, nil
}
