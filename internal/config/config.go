package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the address resolution service.
//
// Fields:
// - Env: The current environment (local, development, production).
// - Port: The port for the monitoring server.
// - ProviderType: The geocoding provider to use (google, googlesdk, nominatim).
// - APIKey: The API key for the remote geocoding service (required for the Google providers).
// - Workers: The number of concurrent workers for processing requests.
// - Interval: The duration between queue polling intervals.
// - RateLimit: The provider request rate cap in requests per second.
// - HTTPTimeout: The timeout for a single geocoding call.
// - AddrPrefix: An optional prefix prepended to every address before resolution.
// - InboxDir: The directory scanned for .tsv and .pdf address files; empty disables ingest.
// - InboxInterval: The duration between inbox scans.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env           string
	Port          int
	ProviderType  string
	APIKey        string
	Workers       int
	Interval      time.Duration
	RateLimit     int
	HTTPTimeout   time.Duration
	AddrPrefix    string
	InboxDir      string
	InboxInterval time.Duration
	Database      PostgresConfig
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Name     string // Name is the name of the database.
}

// MustLoad loads the configuration from the environment and returns a Config.
// A .env file in the working directory is honored when present. The provider
// credential is never hard-coded; it comes exclusively from WAYPOINT_PROVIDER_KEY.
func MustLoad() *Config {
	_ = godotenv.Load()

	vpr := viper.New()
	vpr.SetEnvPrefix("WAYPOINT")
	vpr.AutomaticEnv()

	vpr.SetDefault("env", "production")
	vpr.SetDefault("health_port", 8080)
	vpr.SetDefault("provider_type", "google")
	vpr.SetDefault("workers", 10)
	vpr.SetDefault("interval", "10m")
	vpr.SetDefault("rate_limit", 50)
	vpr.SetDefault("http_timeout", "10s")
	vpr.SetDefault("address_prefix", "")
	vpr.SetDefault("inbox_dir", "")
	vpr.SetDefault("inbox_interval", "1m")

	interval := vpr.GetDuration("interval")
	if interval <= 0 {
		panic("failed to parse interval from configuration")
	}

	inboxInterval := vpr.GetDuration("inbox_interval")
	if inboxInterval <= 0 {
		panic("failed to parse inbox interval from configuration")
	}

	httpTimeout := vpr.GetDuration("http_timeout")
	if httpTimeout <= 0 {
		panic("failed to parse HTTP timeout from configuration")
	}

	healthPort := vpr.GetInt("health_port")
	if healthPort <= 0 {
		panic("failed to parse port for monitoring server from configuration")
	}

	workers := vpr.GetInt("workers")
	if workers <= 0 {
		panic("failed to parse workers from configuration, must be an integer type")
	}

	return &Config{
		Env:           vpr.GetString("env"),
		Port:          healthPort,
		ProviderType:  vpr.GetString("provider_type"),
		APIKey:        vpr.GetString("provider_key"),
		Workers:       workers,
		Interval:      interval,
		RateLimit:     vpr.GetInt("rate_limit"),
		HTTPTimeout:   httpTimeout,
		AddrPrefix:    vpr.GetString("address_prefix"),
		InboxDir:      vpr.GetString("inbox_dir"),
		InboxInterval: inboxInterval,
		Database: PostgresConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     os.Getenv("DB_PORT"),
			User:     os.Getenv("DB_USERNAME"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}
}
