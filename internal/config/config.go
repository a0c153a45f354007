package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type StorefrontConfig struct {
	Env          string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	GRPCServer   `yaml:"grpc_server"`
	StorefrontDB `yaml:"storefront_db"`
	Telegram     `yaml:"telegram"`
	Sessions     `yaml:"sessions"`
	KafkaService `yaml:"kafka_service"`
}

type HTTPServer struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	// Scheme used when building order links.
	LinkScheme string `yaml:"link_scheme" env-default:"https"`
}

type GRPCServer struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"9090"`
}

type StorefrontDB struct {
	Dsn            string `yaml:"dsn" env:"STOREFRONT_DB_DSN" env-required:"true"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH"`
}

type Telegram struct {
	Token   string `yaml:"token" env:"TELEGRAM_TOKEN" env-required:"true"`
	Debug   bool   `yaml:"debug" env:"TELEGRAM_DEBUG"`
	Timeout int    `yaml:"timeout" env-default:"60"`
}

type Sessions struct {
	// memory or redis
	Backend       string        `yaml:"backend" env:"SESSIONS_BACKEND" env-default:"memory"`
	RedisAddr     string        `yaml:"redis_addr" env:"REDIS_ADDR"`
	RedisPassword string        `yaml:"redis_password" env:"REDIS_PASSWORD"`
	RedisDB       int           `yaml:"redis_db" env:"REDIS_DB"`
	IdleTTL       time.Duration `yaml:"idle_ttl" env-default:"24h"`
}

type KafkaService struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env-default:"storefront-order-events"`
}

func MustLoad() *StorefrontConfig {

	// Processing env config variable and file
	configPath := os.Getenv("STOREFRONT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("STOREFRONT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg StorefrontConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
