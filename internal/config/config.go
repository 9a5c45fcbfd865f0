package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port        string   `mapstructure:"port"`
		GinMode     string   `mapstructure:"gin_mode"`
		CORSOrigins []string `mapstructure:"-"`
		LogLevel    string   `mapstructure:"log_level"`
	} `mapstructure:"server"`
	Database struct {
		URL      string `mapstructure:"url"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Redis struct {
		Addr               string `mapstructure:"addr"`
		Password           string `mapstructure:"password"`
		DB                 int    `mapstructure:"db"`
		RateLimitPerMinute int    `mapstructure:"rate_limit_per_minute"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers      []string `mapstructure:"-"`
		CatalogTopic string   `mapstructure:"catalog_topic"`
	} `mapstructure:"kafka"`
	Firebase struct {
		ProjectID       string `mapstructure:"project_id"`
		CredentialsJSON string `mapstructure:"credentials_json"`
		VerifyIDTokens  bool   `mapstructure:"verify_id_tokens"`
	} `mapstructure:"firebase"`
	WebSocket struct {
		TicketSecret string        `mapstructure:"ticket_secret"`
		TicketTTL    time.Duration `mapstructure:"ticket_ttl"`
	} `mapstructure:"websocket"`
}

// envBindings maps config keys to the environment variable names the service reads
var envBindings = map[string]string{
	"server.port":                 "PORT",
	"server.gin_mode":             "GIN_MODE",
	"server.cors_allowed_origins": "CORS_ALLOWED_ORIGINS",
	"server.log_level":            "LOG_LEVEL",
	"database.url":                "DATABASE_URL",
	"database.host":               "DB_HOST",
	"database.port":               "DB_PORT",
	"database.user":               "DB_USER",
	"database.password":           "DB_PASSWORD",
	"database.name":               "DB_NAME",
	"database.sslmode":            "DB_SSLMODE",
	"redis.addr":                  "REDIS_ADDR",
	"redis.password":              "REDIS_PASSWORD",
	"redis.db":                    "REDIS_DB",
	"redis.rate_limit_per_minute": "RATE_LIMIT_PER_MINUTE",
	"kafka.brokers":               "KAFKA_BROKERS",
	"kafka.catalog_topic":         "KAFKA_CATALOG_TOPIC",
	"firebase.project_id":         "FIREBASE_PROJECT_ID",
	"firebase.credentials_json":   "FIREBASE_CREDENTIALS_JSON",
	"firebase.verify_id_tokens":   "FIREBASE_VERIFY_ID_TOKENS",
	"websocket.ticket_secret":     "WS_TICKET_SECRET",
	"websocket.ticket_ttl":        "WS_TICKET_TTL",
}

// Load reads .env files (when present) and the process environment into a Config.
func Load() (*Config, error) {
	for _, path := range []string{"configs/.env", ".env"} {
		if err := godotenv.Load(path); err != nil {
			log.Printf("No %s file found or error loading it", path)
		}
	}

	v := viper.New()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("server.port", "8080")
	v.SetDefault("server.gin_mode", "debug")
	v.SetDefault("server.cors_allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "postgres")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.rate_limit_per_minute", 60)
	v.SetDefault("kafka.catalog_topic", "catalog_events")
	v.SetDefault("firebase.verify_id_tokens", false)
	v.SetDefault("websocket.ticket_ttl", "60s")

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.Server.CORSOrigins = splitList(v.GetString("server.cors_allowed_origins"))
	cfg.Kafka.Brokers = splitList(v.GetString("kafka.brokers"))

	if cfg.Server.GinMode == "release" && cfg.WebSocket.TicketSecret == "" {
		return nil, fmt.Errorf("WS_TICKET_SECRET is required in release mode")
	}
	if cfg.WebSocket.TicketSecret == "" {
		cfg.WebSocket.TicketSecret = "dev_ws_ticket_secret" // development fallback
	}
	if cfg.Firebase.VerifyIDTokens && cfg.Firebase.ProjectID == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required when FIREBASE_VERIFY_ID_TOKENS is set")
	}
	return &cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a postgres URL assembled from the DB_* parts.
func (c *Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	d := c.Database
	return "postgres://" + d.User + ":" + d.Password + "@" + d.Host + ":" + d.Port + "/" + d.Name + "?sslmode=" + d.SSLMode
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
