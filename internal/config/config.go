package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	JWTSecret       string        // JWT secret key
	RedisAddr       string        // Redis server address
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	SpoonKey        string        // Spoonacular API key
	SpoonBaseURL    string        // Spoonacular base URL, overridable for tests
	ProviderTimeout time.Duration // Outbound request timeout for the recipe provider
	SearchCacheTTL  time.Duration // TTL for cached provider responses
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	timeout := 10 * time.Second
	if v, err := strconv.Atoi(os.Getenv("PROVIDER_TIMEOUT_SECONDS")); err == nil && v > 0 {
		timeout = time.Duration(v) * time.Second
	}
	cacheTTL := 60 * time.Second
	if v, err := strconv.Atoi(os.Getenv("SEARCH_CACHE_TTL_SECONDS")); err == nil && v > 0 {
		cacheTTL = time.Duration(v) * time.Second
	}

	baseURL := os.Getenv("SPOONACULAR_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.spoonacular.com"
	}

	return &Config{
		AppPort:         os.Getenv("APP_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBName:          os.Getenv("DB_NAME"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         redisDB,
		SpoonKey:        os.Getenv("SPOONACULAR_API_KEY"),
		SpoonBaseURL:    baseURL,
		ProviderTimeout: timeout,
		SearchCacheTTL:  cacheTTL,
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}
