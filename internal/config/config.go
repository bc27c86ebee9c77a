package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppPort string

	DBDSN string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	// Listing behavior
	PageSize      int
	IndexCacheTTL time.Duration

	// Where uploaded post images land
	MediaDir string
}

var cfg *Config

// Init loads .env (if present) and binds environment variables with defaults.
func Init() *Config {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PAGE_SIZE", 10)
	viper.SetDefault("INDEX_CACHE_TTL", "20s")
	viper.SetDefault("MEDIA_DIR", "media")

	viper.AutomaticEnv()

	cfg = &Config{
		AppPort:       viper.GetString("APP_PORT"),
		DBDSN:         viper.GetString("DB_DSN"),
		RedisAddr:     viper.GetString("REDIS_ADDR"),
		RedisPassword: viper.GetString("REDIS_PASSWORD"),
		RedisDB:       viper.GetInt("REDIS_DB"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		PageSize:      viper.GetInt("PAGE_SIZE"),
		IndexCacheTTL: parseDuration(viper.GetString("INDEX_CACHE_TTL"), 20*time.Second),
		MediaDir:      viper.GetString("MEDIA_DIR"),
	}

	if cfg.DBDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

func parseDuration(s string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return def
}

// Get returns the loaded config instance
func Get() *Config {
	return cfg
}
