// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Catalog sources
const (
	SourceStatic = "static"
	SourceMySQL  = "mysql"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Catalog  CatalogConfig
	Site     SiteConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port               int
	RateLimitPerMinute int
	MaxRequestSize     int64
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// CatalogConfig selects where courses are loaded from
type CatalogConfig struct {
	Source string
}

// SiteConfig holds settings of the rendered site
type SiteConfig struct {
	BaseURL        string
	SearchDebounce time.Duration
}

// Load reads configuration from environment variables.
// A missing .env file is not an error: the process environment is used as is.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}

	// Server configuration
	serverPort, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	cfg.Server.Port = serverPort

	rateLimit, err := intEnv("RATE_LIMIT_PER_MINUTE", 100)
	if err != nil {
		return nil, err
	}
	if rateLimit < 1 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_PER_MINUTE: must be positive")
	}
	cfg.Server.RateLimitPerMinute = rateLimit
	cfg.Server.MaxRequestSize = 1 * 1024 * 1024 // 1MB, the API only reads query strings

	// Logging configuration
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info" // default level
	}
	cfg.Logging.Level = logLevel

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Site configuration
	baseURL := strings.TrimRight(os.Getenv("SITE_BASE_URL"), "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	cfg.Site.BaseURL = baseURL

	debounce := 300 * time.Millisecond
	if v := os.Getenv("SEARCH_DEBOUNCE"); v != "" {
		debounce, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE: %w", err)
		}
		if debounce < 0 {
			return nil, fmt.Errorf("invalid SEARCH_DEBOUNCE: must not be negative")
		}
	}
	cfg.Site.SearchDebounce = debounce

	// Catalog configuration
	source := strings.ToLower(strings.TrimSpace(os.Getenv("CATALOG_SOURCE")))
	if source == "" {
		source = SourceStatic
	}
	switch source {
	case SourceStatic:
	case SourceMySQL:
		if err := loadDatabase(&cfg.Database); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("invalid CATALOG_SOURCE: %q", source)
	}
	cfg.Catalog.Source = source

	return cfg, nil
}

// LoadDatabase reads only the database settings, for commands that always need MySQL.
func LoadDatabase() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := loadDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadDatabase(db *DatabaseConfig) error {
	db.Host = os.Getenv("DB_HOST")
	if db.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = dbPort

	db.User = os.Getenv("DB_USER")
	if db.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	db.Password = os.Getenv("DB_PASSWORD")
	if db.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	db.DBName = os.Getenv("DB_NAME")
	if db.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func parseOrigins(raw string) []string {
	if raw == "" {
		// Default to allow all origins if not specified (for development)
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, origin := range parts {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	// If no valid origins found, default to allow all
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&multiStatements=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}

// Addr returns the listen address of the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
