package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Backend API settings.
	APIBaseURL      string `mapstructure:"API_BASE_URL"`
	HTTPTimeoutSecs int    `mapstructure:"HTTP_TIMEOUT_SECS"`

	// Sandbox server (in-process stand-in for the production API).
	SandboxMode       bool   `mapstructure:"SANDBOX_MODE"`
	SandboxAddr       string `mapstructure:"SANDBOX_ADDR"`
	SandboxJWTSecret  string `mapstructure:"SANDBOX_JWT_SECRET"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis-backed session store.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("API_BASE_URL", "http://localhost:8080")
	viper.SetDefault("HTTP_TIMEOUT_SECS", 15)
	viper.SetDefault("SANDBOX_MODE", true)
	viper.SetDefault("SANDBOX_ADDR", "127.0.0.1:8080")
	viper.SetDefault("SANDBOX_JWT_SECRET", "glowbook-sandbox")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
