package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	API      APIConfig
	Feed     FeedConfig
	Search   SearchConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Tab      TabConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type APIConfig struct {
	BaseURL string
}

type FeedConfig struct {
	InitialFloor    time.Duration
	LoadMoreFloor   time.Duration
	ScrollThreshold int
}

type SearchConfig struct {
	Debounce time.Duration
}

type StorageConfig struct {
	Driver string // memory, postgres, redis
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	HashPasswords bool
}

type TabConfig struct {
	IdleTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom reads an env-style file. A missing file is not an error;
// environment variables and defaults still apply.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "artliving")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("API_BASE_URL", "http://localhost:3000")
	v.SetDefault("FEED_INITIAL_FLOOR_MS", 500)
	v.SetDefault("FEED_MORE_FLOOR_MS", 700)
	v.SetDefault("FEED_SCROLL_THRESHOLD_PX", 100)
	v.SetDefault("SEARCH_DEBOUNCE_MS", 300)
	v.SetDefault("STORAGE_DRIVER", "memory")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("AUTH_HASH_PASSWORDS", false)
	v.SetDefault("TAB_IDLE_MINUTES", 120)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		API: APIConfig{
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Feed: FeedConfig{
			InitialFloor:    time.Duration(v.GetInt("FEED_INITIAL_FLOOR_MS")) * time.Millisecond,
			LoadMoreFloor:   time.Duration(v.GetInt("FEED_MORE_FLOOR_MS")) * time.Millisecond,
			ScrollThreshold: v.GetInt("FEED_SCROLL_THRESHOLD_PX"),
		},
		Search: SearchConfig{
			Debounce: time.Duration(v.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
		},
		Storage: StorageConfig{
			Driver: v.GetString("STORAGE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			HashPasswords: v.GetBool("AUTH_HASH_PASSWORDS"),
		},
		Tab: TabConfig{
			IdleTimeout: time.Duration(v.GetInt("TAB_IDLE_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}
