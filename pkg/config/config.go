package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage backend identifiers.
const (
	StorageMemory = "memory"
	StorageFile   = "file"
	StorageRedis  = "redis"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Storage  StorageConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Matching MatchingConfig
	Signal   SignalConfig
	Meeting  MeetingConfig
}

// StorageConfig selects where learning-request snapshots are persisted.
type StorageConfig struct {
	Backend string
	Dir     string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// MatchingConfig tunes the simulated background matcher.
type MatchingConfig struct {
	BackgroundDelay time.Duration
}

// SignalConfig controls fan-out of the collection change signal.
type SignalConfig struct {
	RedisFanout bool
	Channel     string
}

// MeetingConfig governs synthetic meeting-link generation.
type MeetingConfig struct {
	DemoMode bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// A missing .env is fine; only a present but unreadable file is fatal.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Storage = StorageConfig{
		Backend: strings.ToLower(v.GetString("STORAGE_BACKEND")),
		Dir:     v.GetString("STORAGE_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Matching = MatchingConfig{
		BackgroundDelay: parseDuration(v.GetString("MATCH_BACKGROUND_DELAY"), 5*time.Second),
	}

	cfg.Signal = SignalConfig{
		RedisFanout: v.GetBool("SIGNAL_REDIS_FANOUT"),
		Channel:     v.GetString("SIGNAL_CHANNEL"),
	}

	cfg.Meeting = MeetingConfig{
		DemoMode: v.GetBool("MEETING_DEMO_MODE"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("STORAGE_BACKEND", StorageFile)
	v.SetDefault("STORAGE_DIR", "./data")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ALLOWED_ORIGINS", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("MATCH_BACKGROUND_DELAY", "5s")

	v.SetDefault("SIGNAL_REDIS_FANOUT", false)
	v.SetDefault("SIGNAL_CHANNEL", "skillswap:learning:updated")

	v.SetDefault("MEETING_DEMO_MODE", true)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
