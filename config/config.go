package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Store StoreConfig
	DB    DBConfig
	Redis RedisConfig
	CORS  CORSConfig
}

type AppConfig struct {
	Host  string
	Port  string
	Debug bool
}

// Addr is the listen address for the HTTP server.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// StoreConfig addresses the hosted REST store.
type StoreConfig struct {
	URL        string
	Key        string
	ServiceKey string
	Timeout    time.Duration
}

// DBConfig switches the store to a direct SQL connection when URL is set.
type DBConfig struct {
	URL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether the hospital network feature has a backing store.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("DEBUG", true)
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("STORE_TIMEOUT", "10s")
	v.SetDefault("REDIS_DB", 0)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read .env: %w", err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("STORE_TIMEOUT"))
	if err != nil {
		timeout = 10 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Host:  v.GetString("HOST"),
			Port:  v.GetString("PORT"),
			Debug: v.GetBool("DEBUG"),
		},
		Store: StoreConfig{
			URL:        strings.TrimRight(v.GetString("SUPABASE_URL"), "/"),
			Key:        v.GetString("SUPABASE_KEY"),
			ServiceKey: v.GetString("SUPABASE_SERVICE_KEY"),
			Timeout:    timeout,
		},
		DB: DBConfig{
			URL: v.GetString("DATABASE_URL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that at least one way of reaching the store is configured.
func (c *Config) Validate() error {
	if c.DB.URL != "" {
		return nil
	}
	if c.Store.URL == "" || c.Store.Key == "" {
		return errors.New("either DATABASE_URL or both SUPABASE_URL and SUPABASE_KEY must be set")
	}
	return nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
