// Package config reads service settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	VehicleAPIURL     string
	VehicleAPITimeout time.Duration
	VehicleCacheTTL   time.Duration
	VpicDBPath        string

	RedisHost string
	RedisPort string

	RabbitMQURL    string
	EventsExchange string

	MySQL MySQL

	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string

	TracesStdout   bool
	SeedDemoOrders bool
}

type MySQL struct {
	Host     string
	Port     string
	User     string
	Password string
	Database string
}

// Enabled reports whether orders should be persisted to MySQL.
func (m MySQL) Enabled() bool { return m.Host != "" }

func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

// RedisAddr is empty when no cache is configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// Load reads .env (if any) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (*Config, error) {
	c := &Config{
		Port:           getenv("PORT", "8080"),
		VehicleAPIURL:  getenv("VEHICLE_API_URL", "https://vpic.nhtsa.dot.gov/api/vehicles"),
		VpicDBPath:     os.Getenv("VPIC_DB_PATH"),
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPort:      getenv("REDIS_PORT", "6379"),
		RabbitMQURL:    os.Getenv("RABBITMQ_URL"),
		EventsExchange: getenv("EVENTS_EXCHANGE", "parts.exchange"),
		MySQL: MySQL{
			Host:     os.Getenv("MYSQL_HOST"),
			Port:     getenv("MYSQL_PORT", "3306"),
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Database: os.Getenv("MYSQL_DATABASE"),
		},
		CORSOrigins: splitList(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}

	var err error
	if c.VehicleAPITimeout, err = duration("VEHICLE_API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if c.VehicleCacheTTL, err = duration("VEHICLE_CACHE_TTL", time.Hour); err != nil {
		return nil, err
	}
	if c.RateLimitRPS, err = float("RATE_LIMIT_RPS", 20); err != nil {
		return nil, err
	}
	if c.RateLimitBurst, err = integer("RATE_LIMIT_BURST", 40); err != nil {
		return nil, err
	}
	if c.TracesStdout, err = boolean("OTEL_TRACES_STDOUT", false); err != nil {
		return nil, err
	}
	if c.SeedDemoOrders, err = boolean("SEED_DEMO_ORDERS", true); err != nil {
		return nil, err
	}
	return c, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func float(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func integer(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func boolean(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
