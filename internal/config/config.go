// Package config provides centralized configuration management for the
// service. Settings come from environment variables with sensible defaults
// and are validated on startup so misconfiguration fails fast.
package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Sheets  SheetsConfig
	Cache   CacheConfig
	Auth    AuthConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"60s"`
}

// SheetsConfig selects and configures the backing tabular store.
type SheetsConfig struct {
	// Backend is "google" for the live document or "excel" for a local
	// workbook snapshot (default: google)
	Backend string `env:"SHEETS_BACKEND" default:"google"`

	// SpreadsheetID is the Google Sheets document ID (required for google)
	SpreadsheetID string `env:"SHEETS_SPREADSHEET_ID"`

	// CredentialsFile is the service-account key file (default: credentials.json)
	CredentialsFile string `env:"SHEETS_CREDENTIALS_FILE" default:"credentials.json"`

	// WorkbookPath is the .xlsx path (required for excel)
	WorkbookPath string `env:"SHEETS_WORKBOOK_PATH"`
}

// CacheConfig holds dataset snapshot cache settings.
type CacheConfig struct {
	// DatabaseURL is the Postgres connection string for the shared cache.
	// When empty the service falls back to an in-process cache.
	DatabaseURL string `env:"CACHE_DATABASE_URL" envAlt:"DATABASE_URL"`

	// TTL is the snapshot time-to-live (default: 1h)
	TTL time.Duration `env:"CACHE_TTL" default:"1h"`

	// Key is the cache key for the dataset snapshot (default: dataset:v1)
	Key string `env:"CACHE_KEY" default:"dataset:v1"`
}

// AuthConfig holds endpoint authorization settings.
type AuthConfig struct {
	// Enabled controls the email-domain check (default: true)
	Enabled bool `env:"AUTH_ENABLED" default:"true"`

	// AllowedDomains is the comma-separated email-domain allow-list
	AllowedDomains []string `env:"AUTH_ALLOWED_DOMAINS"`

	// IdentityHeader carries the caller's email, set by the auth proxy
	// (default: X-Auth-Request-Email)
	IdentityHeader string `env:"AUTH_IDENTITY_HEADER" default:"X-Auth-Request-Email"`

	// TrustedProxies is a comma-separated list of proxy CIDRs whose
	// forwarded headers (client IP, identity) may be trusted
	TrustedProxies []string `env:"TRUSTED_PROXIES"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	if c.Host == "" {
		return ":" + itoa(c.Port)
	}
	return c.Host + ":" + itoa(c.Port)
}

// itoa converts an int to string without importing strconv in this file.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var b [20]byte
	n := len(b)
	neg := i < 0
	if neg {
		i = -i
	}
	for i > 0 {
		n--
		b[n] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		n--
		b[n] = '-'
	}
	return string(b[n:])
}
