package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env            string `yaml:"env" env-default:"local"`
	OrderDB        `yaml:"order_db"`
	KafkaService   `yaml:"kafka-service"`
	EscrowGateway  `yaml:"escrow-gateway"`
	ContentService `yaml:"content-service"`
	MetricsServer  `yaml:"metrics_server"`
	LogConfig      `yaml:"log_config"`
	EscrowPolicy   `yaml:"escrow_policy"`
	AdminIDs       []string `yaml:"admin_ids"`
	MigrationsPath string   `yaml:"migrations_path"`
}

type OrderDB struct {
	Dsn string `yaml:"dsn"`
}

type KafkaService struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	OrderTopic   string `yaml:"order_topic" env-default:"order-events"`
	DisputeTopic string `yaml:"dispute_topic" env-default:"dispute-events"`
}

type EscrowGateway struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type ContentService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port" env-default:"9091"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type EscrowPolicy struct {
	GracePeriod   time.Duration `yaml:"grace_period" env-default:"72h"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"30s"`
	DisputeTTL    time.Duration `yaml:"dispute_ttl" env-default:"168h"`
}

func MustLoad() *EscrowConfig {
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
