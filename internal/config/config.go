package config

import (
	"fmt"
	"os"

	pkgconfig "solarflow/pkg/config"

	"gopkg.in/yaml.v3"
)

// ProgressConfig holds derivation engine settings.
type ProgressConfig struct {
	// WeightScheme is "weighted" (documents 25, checklist 25, wiring 20,
	// inspection 15, commissioning 15) or "equal".
	WeightScheme    string `yaml:"weight_scheme"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds"`
}

// Config is the full application configuration.
type Config struct {
	Server   pkgconfig.ServerConfig `yaml:"server"`
	DB       pkgconfig.DBConfig     `yaml:"db"`
	MQ       pkgconfig.MQConfig     `yaml:"mq"`
	Redis    pkgconfig.RedisConfig  `yaml:"redis"`
	JWT      pkgconfig.JWTConfig    `yaml:"jwt"`
	Progress ProgressConfig         `yaml:"progress"`
}

// Load reads the layered YAML configuration for the current environment and
// applies environment variable overrides on top.
func Load() (*Config, error) {
	env := pkgconfig.GetConfigEnv()
	configDir := pkgconfig.GetEnv("CONFIG_DIR", "config")

	cfgMap, err := pkgconfig.LoadConfig(env, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	raw, err := yaml.Marshal(cfgMap)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode config: %w", err)
	}

	cfg := &Config{
		Server: pkgconfig.ServerConfig{Port: "8080"},
		Progress: ProgressConfig{
			WeightScheme:    "weighted",
			CacheTTLSeconds: 300,
		},
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	pkgconfig.OverrideServerFromEnv(&cfg.Server)
	pkgconfig.OverrideDBFromEnv(&cfg.DB)
	pkgconfig.OverrideMQFromEnv(&cfg.MQ)
	pkgconfig.OverrideRedisFromEnv(&cfg.Redis)
	pkgconfig.OverrideJWTFromEnv(&cfg.JWT)

	if scheme := os.Getenv("PROGRESS_WEIGHT_SCHEME"); scheme != "" {
		cfg.Progress.WeightScheme = scheme
	}

	return cfg, nil
}
