package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	config.SetEnvPrefix("APP")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	setDefaults(config)

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	// A bare OPENAI_API_KEY selects the openai backend.
	if config.GetString("llm.api_key") == "" {
		if key := os.Getenv("OPENAI_API_KEY"); key != "" {
			config.Set("llm.api_key", key)
			if config.GetString("llm.provider") == "" {
				config.Set("llm.provider", "openai")
			}
		}
	}

	return config
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "PathFinder")
	config.SetDefault("api.port", 8080)
	config.SetDefault("api.prefork", false)
	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")

	config.SetDefault("database.host", "localhost")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
	config.SetDefault("database.max_open_conns", 10)
	config.SetDefault("database.max_idle_conns", 5)
	config.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	config.SetDefault("auth.jwt_secret", "supersecretkey")
	config.SetDefault("auth.token_ttl", 24*time.Hour)

	config.SetDefault("llm.provider", "")
	config.SetDefault("llm.timeout", 20*time.Second)
	config.SetDefault("llm.max_tokens", 600)
	config.SetDefault("llm.temperature", 0.7)

	config.SetDefault("data.colleges_file", "colleges.json")
	config.SetDefault("data.watch", false)
	config.SetDefault("data.demo_user", false)
}
