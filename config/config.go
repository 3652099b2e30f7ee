package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatasetPath string

	HTTPHost string
	HTTPPort int

	SliderMin  float64
	SliderMax  float64
	SliderStep float64

	StoreDriver      string
	SQLitePath       string
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	SnapshotDir    string
	ChromeBin      string
	MaxConcurrency int
	RateLimitMs    int
	MaxRetries     int

	LogLevel string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return fromEnv()
}

func fromEnv() *Config {
	return &Config{
		DatasetPath: getEnv("DATASET_PATH", "spacex_launch_dash.csv"),

		HTTPHost: getEnv("HTTP_HOST", "127.0.0.1"),
		HTTPPort: getEnvInt("HTTP_PORT", 8050),

		SliderMin:  getEnvFloat("SLIDER_MIN", 0),
		SliderMax:  getEnvFloat("SLIDER_MAX", 10000),
		SliderStep: getEnvFloat("SLIDER_STEP", 1000),

		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", "")),
		SQLitePath:       getEnv("SQLITE_PATH", "./output/launches.db"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "dashboard"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "dashboard"),
		PostgresDB:       getEnv("POSTGRES_DB", "launch_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		SnapshotDir:    getEnv("SNAPSHOT_DIR", ""),
		ChromeBin:      getEnv("CHROME_BIN", ""),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 2),
		RateLimitMs:    getEnvInt("RATE_LIMIT_MS", 500),
		MaxRetries:     getEnvInt("MAX_RETRIES", 3),

		LogLevel: strings.ToLower(getEnv("LOG_LEVEL", "info")),
	}
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTPHost, strconv.Itoa(c.HTTPPort))
}

// DSN returns the connection string for the configured store driver.
func (c *Config) DSN() string {
	if c.StoreDriver == "sqlite" {
		return c.SQLitePath
	}
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		f, err := strconv.ParseFloat(val, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}
