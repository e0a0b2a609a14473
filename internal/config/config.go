package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type OrderConfig struct {
	Env          string `yaml:"env" env-default:"local"`
	HTTPServer   `yaml:"http_server"`
	OrderDB      `yaml:"order_db"`
	RedisCache   `yaml:"redis"`
	KafkaService `yaml:"kafka-service"`
	Auth         `yaml:"auth"`
	Sale         `yaml:"sale"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type OrderDB struct {
	Dsn            string `yaml:"dsn" env:"ORDER_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"migrations"`
}

type RedisCache struct {
	Addr     string `yaml:"addr" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type KafkaService struct {
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	Topic      string `yaml:"topic" env-default:"order-events"`
	Username   string `yaml:"username" env:"KAFKA_USERNAME"`
	Password   string `yaml:"password" env:"KAFKA_PASSWORD"`
	Mechanism  string `yaml:"mechanism"`
	TLSEnabled bool   `yaml:"tls_enabled"`
}

type Auth struct {
	JWTSecret     string `yaml:"jwt_secret" env:"JWT_SECRET"`
	TokenTTLHours int    `yaml:"token_ttl_hours" env-default:"72"`
	AdminUsername string `yaml:"admin_username" env:"ADMIN_USERNAME"`
	AdminPassword string `yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

type Sale struct {
	// Venue timezone for the daily window and quota day boundary.
	Timezone string `yaml:"timezone" env-default:"Asia/Shanghai"`
	// pending_pay orders older than this are auto-cancelled.
	PendingOrderTTLMinutes int `yaml:"pending_order_ttl_minutes" env-default:"1440"`
	// Fee ratios applied at listing time, relative to the locked price.
	ListingMarkupRate float64 `yaml:"listing_markup_rate" env-default:"0.06"`
	ListingFeeRate    float64 `yaml:"listing_fee_rate" env-default:"0.01"`
	CommissionRate    float64 `yaml:"commission_rate" env-default:"0.02"`
	PlatformFeeRate   float64 `yaml:"platform_fee_rate" env-default:"0.01"`
}

func MustLoad() *OrderConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ORDER_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ORDER_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg OrderConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("jwt secret must be configured")
	}

	return &cfg
}

// Location resolves the venue timezone, falling back to UTC.
func (c *OrderConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Sale.Timezone)
	if err != nil {
		log.Printf("unknown timezone %q, falling back to UTC", c.Sale.Timezone)
		return time.UTC
	}
	return loc
}
