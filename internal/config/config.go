package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	LogLevel    string `mapstructure:"LOG_LEVEL"` // logrus level name
}

var AppConfig *Config

// Initialize default parameters values
func initDefaults() {
	viper.SetDefault("DATABASE_URL", "gamelog.db")
	viper.SetDefault("LOG_LEVEL", "info")
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() error {
	initDefaults()

	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Warn(".env file not found, loading from environment variables")
	}

	return viper.Unmarshal(&AppConfig)
}
