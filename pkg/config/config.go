package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Dataset DatasetConfig
	HTTP    HTTPConfig
	Report  ReportConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Dataset.ensurePath(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESDASH_APP_ENV" required:"true"`
	Port         string `envconfig:"SALESDASH_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SALESDASH_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESDASH_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DatasetConfig struct {
	CSVPath string `envconfig:"SALESDASH_DATASET_CSV_PATH" required:"true"`
}

func (d *DatasetConfig) ensurePath() error {
	if strings.TrimSpace(d.CSVPath) == "" {
		return fmt.Errorf("%s must point at the order export CSV", EnvDatasetCSVPath)
	}
	return nil
}

type HTTPConfig struct {
	CORSOrigins  []string      `envconfig:"SALESDASH_CORS_ORIGINS" default:"http://localhost:3000"`
	ReadTimeout  time.Duration `envconfig:"SALESDASH_HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SALESDASH_HTTP_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout  time.Duration `envconfig:"SALESDASH_HTTP_IDLE_TIMEOUT" default:"60s"`
}

type ReportConfig struct {
	DefaultTopN int `envconfig:"SALESDASH_REPORT_DEFAULT_TOP_N" default:"5"`
	MaxTopN     int `envconfig:"SALESDASH_REPORT_MAX_TOP_N" default:"100"`
}
