package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv     = "ARTICLES_RATE_CONFIG"
	serverAddressEnv  = "SERVER_ADDRESS"
	maxWaitingTimeEnv = "MAX_WAITING_TIME"
	maxURLsEnv        = "MAX_URLS"
	chargedDictDirEnv = "CHARGED_DICT_DIR"
	morphDictPathEnv  = "MORPH_DICT_PATH"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Address string `yaml:"address"`
}

// AnalysisConfig tunes the article pipeline.
type AnalysisConfig struct {
	MaxWaitingTimeSeconds int    `yaml:"maxWaitingTimeSeconds"`
	MaxURLs               int    `yaml:"maxURLs"`
	ChargedDictDir        string `yaml:"chargedDictDir"`
	MorphDictPath         string `yaml:"morphDictPath"`
}

// Timeout converts the configured per-article deadline to a duration.
func (a AnalysisConfig) Timeout() time.Duration {
	return time.Duration(a.MaxWaitingTimeSeconds) * time.Second
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverAddressEnv); v != "" {
		c.Server.Address = v
	}

	if v := os.Getenv(maxWaitingTimeEnv); v != "" {
		if seconds, err := strconv.Atoi(v); err != nil || seconds <= 0 {
			log.Printf("config: invalid %s=%q, keeping %d", maxWaitingTimeEnv, v, c.Analysis.MaxWaitingTimeSeconds)
		} else {
			c.Analysis.MaxWaitingTimeSeconds = seconds
		}
	}

	if v := os.Getenv(maxURLsEnv); v != "" {
		if count, err := strconv.Atoi(v); err != nil || count <= 0 {
			log.Printf("config: invalid %s=%q, keeping %d", maxURLsEnv, v, c.Analysis.MaxURLs)
		} else {
			c.Analysis.MaxURLs = count
		}
	}

	if v := os.Getenv(chargedDictDirEnv); v != "" {
		c.Analysis.ChargedDictDir = v
	}

	if v := os.Getenv(morphDictPathEnv); v != "" {
		c.Analysis.MorphDictPath = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Address != "" {
		base.Server.Address = override.Server.Address
	}

	if override.Analysis.MaxWaitingTimeSeconds > 0 {
		base.Analysis.MaxWaitingTimeSeconds = override.Analysis.MaxWaitingTimeSeconds
	}
	if override.Analysis.MaxURLs > 0 {
		base.Analysis.MaxURLs = override.Analysis.MaxURLs
	}
	if override.Analysis.ChargedDictDir != "" {
		base.Analysis.ChargedDictDir = override.Analysis.ChargedDictDir
	}
	if override.Analysis.MorphDictPath != "" {
		base.Analysis.MorphDictPath = override.Analysis.MorphDictPath
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Address: ":8080"},
		Analysis: AnalysisConfig{
			MaxWaitingTimeSeconds: 3,
			MaxURLs:               10,
			ChargedDictDir:        "charged_dict",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
