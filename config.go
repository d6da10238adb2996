package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Config struct {
	Prompt string `json:"prompt"`
	Quiet  bool   `json:"quiet"`
}

func defaultConfig() Config {
	return Config{Prompt: "> "}
}

// loadConfig reads config.json from configDir. A missing file yields
// the defaults; a present-but-invalid file is an error.
func loadConfig(configDir string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(filepath.Join(configDir, "config.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
