// Package config provides configuration management for the pricing service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
}

// CatalogConfig holds product catalog configuration.
type CatalogConfig struct {
	// RemoteURL is an optional JSON endpoint fetched on startup; empty
	// disables remote fetching and the built-in catalog is used.
	RemoteURL string
	// FetchTimeout bounds one remote catalog fetch.
	FetchTimeout time.Duration
}

// AccountConfig is one operator credential with its role.
type AccountConfig struct {
	Username string
	Password string
	Role     string
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	JWTSecretKey string
	TokenTTL     time.Duration
	Accounts     []AccountConfig
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
			CORSOrigins:    parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
		},
		Catalog: CatalogConfig{
			RemoteURL:    getEnv("CATALOG_URL", ""),
			FetchTimeout: getEnvDuration("CATALOG_FETCH_TIMEOUT", 10*time.Second),
		},
		Auth: AuthConfig{
			JWTSecretKey: getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			TokenTTL:     getEnvDuration("JWT_TOKEN_TTL", 12*time.Hour),
			Accounts:     parseAccounts(os.Getenv("AUTH_ACCOUNTS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "ztq_pricing"),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

// defaultAccounts are the two operator logins shipped with the service.
// Override with AUTH_ACCOUNTS ("user:pass:role,user:pass:role").
func defaultAccounts() []AccountConfig {
	return []AccountConfig{
		{Username: "zwz", Password: "zhangwu1992", Role: "zwz"},
		{Username: "admin", Password: "zj123456", Role: "admin"},
	}
}

// parseAccounts parses "user:pass:role" triples separated by commas.
// Malformed entries are skipped; an empty result falls back to the defaults.
func parseAccounts(s string) []AccountConfig {
	if s == "" {
		return defaultAccounts()
	}
	var result []AccountConfig
	for _, entry := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			continue
		}
		result = append(result, AccountConfig{
			Username: parts[0],
			Password: parts[1],
			Role:     parts[2],
		})
	}
	if len(result) == 0 {
		return defaultAccounts()
	}
	return result
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
