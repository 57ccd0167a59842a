package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type BankingConfig struct {
	Env             string `yaml:"env"`
	HTTPServer      `yaml:"http_server"`
	BankingDB       `yaml:"banking_db"`
	ExchangeService `yaml:"exchange-service"`
	TransferConfig  `yaml:"transfer"`
	KafkaService    `yaml:"kafka-service"`
	LogConfig       `yaml:"log_config"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type BankingDB struct {
	Dsn            string `yaml:"dsn" env:"BANKING_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path"`
}

type ExchangeService struct {
	Endpoint      string                        `yaml:"endpoint"`
	APIKey        string                        `yaml:"api_key" env:"EXCHANGE_RATE_API_KEY"`
	Timeout       time.Duration                 `yaml:"timeout"`
	CacheTTL      time.Duration                 `yaml:"cache_ttl"`
	FallbackRates map[string]map[string]float64 `yaml:"fallback_rates"`
}

type TransferConfig struct {
	SpreadFraction     float64 `yaml:"spread_fraction"`
	MaxConflictRetries int     `yaml:"max_conflict_retries"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"transfer_topic"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func MustLoad() *BankingConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BANKING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BANKING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BankingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	if cfg.ExchangeService.Timeout == 0 {
		cfg.ExchangeService.Timeout = 5 * time.Second
	}
	if cfg.ExchangeService.CacheTTL == 0 {
		cfg.ExchangeService.CacheTTL = 10 * time.Second
	}
	if cfg.TransferConfig.MaxConflictRetries == 0 {
		cfg.TransferConfig.MaxConflictRetries = 3
	}

	return &cfg
}
