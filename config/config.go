// Package config provides configuration management for the truckload service.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Engine   EngineConfig   `toml:"engine"`
	Cache    CacheConfig    `toml:"cache"`
	Auth     AuthConfig     `toml:"auth"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string        `toml:"port"`
	RateLimit      int           `toml:"rate_limit"`
	RateWindow     time.Duration `toml:"rate_window"`
	RequestTimeout time.Duration `toml:"request_timeout"`
	CORSOrigins    []string      `toml:"cors_origins"`
	SwaggerUser    string        `toml:"swagger_user"`
	SwaggerPass    string        `toml:"swagger_pass"`
}

// EngineConfig holds packing engine configuration.
type EngineConfig struct {
	TruckWidth  float64 `toml:"truck_width"`
	TruckLength float64 `toml:"truck_length"`
	// MaxBoxSide rejects boxes with a longer side as invalid; 0 disables it.
	MaxBoxSide float64 `toml:"max_box_side"`
	Sequential bool    `toml:"sequential"`
}

// CacheConfig holds plan cache configuration.
type CacheConfig struct {
	Size int           `toml:"size"`
	TTL  time.Duration `toml:"ttl"`
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool `toml:"enabled"`
	// APIKeys holds plain keys or bcrypt hashes of keys.
	APIKeys      []string `toml:"api_keys"`
	JWTSecretKey string   `toml:"jwt_secret_key"`
	JWTIssuer    string   `toml:"jwt_issuer"`
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string        `toml:"uri"`
	DatabaseName string        `toml:"database"`
	LogsTTL      time.Duration `toml:"logs_ttl"`
	PlansTTL     time.Duration `toml:"plans_ttl"`
	Enabled      bool          `toml:"enabled"`
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int           `toml:"circuit_breaker_failure_threshold"`
	CircuitBreakerSuccessThreshold int           `toml:"circuit_breaker_success_threshold"`
	CircuitBreakerTimeout          time.Duration `toml:"circuit_breaker_timeout"`
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// defaultCORSOrigins are always allowed for local development.
var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// Defaults returns the configuration used when nothing is set.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:           "8080",
			RateLimit:      100,
			RateWindow:     time.Minute,
			RequestTimeout: 10 * time.Second,
			CORSOrigins:    append([]string(nil), defaultCORSOrigins...),
		},
		Engine: EngineConfig{
			TruckWidth:  2.4,
			TruckLength: 13.2,
		},
		Cache: CacheConfig{
			Size: 1000,
			TTL:  5 * time.Minute,
		},
		Database: DatabaseConfig{
			URI:                            "mongodb://localhost:27017",
			DatabaseName:                   "truckload",
			LogsTTL:                        30 * 24 * time.Hour,
			PlansTTL:                       90 * 24 * time.Hour,
			CircuitBreakerFailureThreshold: 5,
			CircuitBreakerSuccessThreshold: 2,
			CircuitBreakerTimeout:          30 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load creates a Config from the defaults and environment variables.
func Load() Config {
	cfg := Defaults()
	applyEnv(&cfg)
	return cfg
}

// LoadFile decodes a TOML file over the defaults, then applies environment
// variables on top. Unknown keys in the file are an error.
func LoadFile(path string) (Config, error) {
	cfg := Defaults()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config file %s: unknown keys %v", path, undecoded)
	}
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv overrides cfg with every environment variable that is set.
func applyEnv(cfg *Config) {
	cfg.Server.Port = getEnv("PORT", cfg.Server.Port)
	cfg.Server.RateLimit = getEnvInt("RATE_LIMIT", cfg.Server.RateLimit)
	cfg.Server.RateWindow = getEnvDuration("RATE_WINDOW", cfg.Server.RateWindow)
	cfg.Server.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", cfg.Server.RequestTimeout)
	cfg.Server.CORSOrigins = mergeCORSOrigins(cfg.Server.CORSOrigins, os.Getenv("CORS_ORIGINS"))
	cfg.Server.SwaggerUser = getEnv("SWAGGER_USER", cfg.Server.SwaggerUser)
	cfg.Server.SwaggerPass = getEnv("SWAGGER_PASS", cfg.Server.SwaggerPass)

	cfg.Engine.TruckWidth = getEnvFloat("TRUCK_WIDTH", cfg.Engine.TruckWidth)
	cfg.Engine.TruckLength = getEnvFloat("TRUCK_LENGTH", cfg.Engine.TruckLength)
	cfg.Engine.MaxBoxSide = getEnvFloat("MAX_BOX_SIDE", cfg.Engine.MaxBoxSide)
	cfg.Engine.Sequential = getEnvBool("ENGINE_SEQUENTIAL", cfg.Engine.Sequential)

	cfg.Cache.Size = getEnvInt("CACHE_SIZE", cfg.Cache.Size)
	cfg.Cache.TTL = getEnvDuration("CACHE_TTL", cfg.Cache.TTL)

	cfg.Auth.Enabled = getEnvBool("AUTH_ENABLED", cfg.Auth.Enabled)
	if keys := parseList(os.Getenv("API_KEYS")); len(keys) > 0 {
		cfg.Auth.APIKeys = keys
	}
	cfg.Auth.JWTSecretKey = getEnv("JWT_SECRET_KEY", cfg.Auth.JWTSecretKey)
	cfg.Auth.JWTIssuer = getEnv("JWT_ISSUER", cfg.Auth.JWTIssuer)

	cfg.Database.URI = getEnv("MONGODB_URI", cfg.Database.URI)
	cfg.Database.DatabaseName = getEnv("MONGODB_DATABASE", cfg.Database.DatabaseName)
	cfg.Database.LogsTTL = getEnvDuration("MONGODB_LOGS_TTL", cfg.Database.LogsTTL)
	cfg.Database.PlansTTL = getEnvDuration("MONGODB_PLANS_TTL", cfg.Database.PlansTTL)
	cfg.Database.Enabled = getEnvBool("MONGODB_ENABLED", cfg.Database.Enabled)
	cfg.Database.CircuitBreakerFailureThreshold = getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", cfg.Database.CircuitBreakerFailureThreshold)
	cfg.Database.CircuitBreakerSuccessThreshold = getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", cfg.Database.CircuitBreakerSuccessThreshold)
	cfg.Database.CircuitBreakerTimeout = getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", cfg.Database.CircuitBreakerTimeout)

	cfg.Log.Level = getEnv("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Pretty = getEnvBool("LOG_PRETTY", cfg.Log.Pretty)
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

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

// mergeCORSOrigins appends the comma separated extra origins to base,
// skipping duplicates.
func mergeCORSOrigins(base []string, extra string) []string {
	result := make([]string, 0, len(base))
	seen := make(map[string]bool, len(base))
	for _, origin := range slices.Concat(base, parseList(extra)) {
		if !seen[origin] {
			seen[origin] = true
			result = append(result, origin)
		}
	}
	return result
}
