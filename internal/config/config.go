package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Backend   BackendConfig
	Auth      AuthConfig
	Search    SearchConfig
	Scheduler SchedulerConfig
	CORS      CORSConfig
	Log       LogConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration.
// Driver is either "sqlite" (Path is the file) or "pgx" (URL is the DSN).
type DatabaseConfig struct {
	Driver string
	Path   string
	URL    string
}

// DSN returns the data source name for the configured driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "pgx" {
		return d.URL
	}
	return d.Path
}

// BackendConfig holds the location of the property-management REST backend.
type BackendConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// AuthConfig holds authentication settings. An empty JWTSecret disables
// bearer authentication and falls back to anonymous session cookies.
type AuthConfig struct {
	JWTSecret        string
	SessionCookie    string
	KVEncryptionKey  string
	SessionCookieTTL time.Duration
}

// SearchConfig holds search module settings.
type SearchConfig struct {
	DirectoryFile string
	Debounce      time.Duration
	RecentLimit   int
	RecentTTL     time.Duration
}

// SchedulerConfig holds cron schedules for background jobs.
type SchedulerConfig struct {
	ClientRefresh string
	RecentPrune   string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	backendTimeout, err := getEnvDuration("BACKEND_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}
	debounce, err := getEnvDuration("SEARCH_DEBOUNCE", 500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	recentTTL, err := getEnvDuration("RECENT_SEARCH_TTL", 30*24*time.Hour)
	if err != nil {
		return nil, err
	}
	cookieTTL, err := getEnvDuration("SESSION_COOKIE_TTL", 365*24*time.Hour)
	if err != nil {
		return nil, err
	}
	recentLimit, err := getEnvInt("RECENT_SEARCH_LIMIT", 5)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Driver: getEnv("DB_DRIVER", "sqlite"),
			Path:   getEnv("DB_PATH", "./data/portal.db"),
			URL:    os.Getenv("DATABASE_URL"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8000"), "/"),
			Token:   os.Getenv("BACKEND_TOKEN"),
			Timeout: backendTimeout,
		},
		Auth: AuthConfig{
			JWTSecret:        os.Getenv("JWT_SECRET"),
			SessionCookie:    getEnv("SESSION_COOKIE", "portal_session"),
			KVEncryptionKey:  os.Getenv("KV_ENCRYPTION_KEY"),
			SessionCookieTTL: cookieTTL,
		},
		Search: SearchConfig{
			DirectoryFile: os.Getenv("DIRECTORY_FILE"),
			Debounce:      debounce,
			RecentLimit:   recentLimit,
			RecentTTL:     recentTTL,
		},
		Scheduler: SchedulerConfig{
			ClientRefresh: getEnv("CLIENT_REFRESH_SCHEDULE", "@every 15m"),
			RecentPrune:   getEnv("RECENT_PRUNE_SCHEDULE", "@daily"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	switch c.Database.Driver {
	case "sqlite":
	case "pgx":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER=pgx")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL cannot be empty")
	}
	if c.Search.RecentLimit < 1 {
		return fmt.Errorf("RECENT_SEARCH_LIMIT must be at least 1")
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
