// CLAUDE:SUMMARY Service config struct, YAML file loading with defaults, env overrides.
package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration. Env vars override file
// values; the file is optional.
type Config struct {
	Port     string `yaml:"port"`
	DBPath   string `yaml:"db_path"`
	LogLevel string `yaml:"log_level"`
	Admin    struct {
		Password string `yaml:"password"`
	} `yaml:"admin"`
}

// loadConfig reads the YAML file at path when it exists, then applies
// env overrides and defaults. A missing file is not an error.
func loadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, err
			}
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "8086"
	}
	if c.DBPath == "" {
		c.DBPath = "db/vcm.db"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Admin.Password == "" {
		c.Admin.Password = "admin123!!!"
	}
}
