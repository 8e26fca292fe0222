package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Addr                 string `env:"ADDR"                   envDefault:":8080"`
	DatabaseURL          string `env:"DATABASE_URL"           envDefault:"data.db"`
	ModelName            string `env:"MODEL_NAME"             envDefault:"llama3"`
	OllamaURL            string `env:"OLLAMA_URL"             envDefault:"http://localhost:11434"`
	RetentionSeconds     int64  `env:"RETENTION_SECONDS"      envDefault:"3600"`
	SweepIntervalSeconds int64  `env:"SWEEP_INTERVAL_SECONDS" envDefault:"600"`
	LLMTimeoutSeconds    int64  `env:"LLM_TIMEOUT_SECONDS"    envDefault:"120"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Retention() time.Duration {
	return time.Duration(c.RetentionSeconds) * time.Second
}

func (c Config) SweepInterval() time.Duration {
	return time.Duration(c.SweepIntervalSeconds) * time.Second
}

func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}
