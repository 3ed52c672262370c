// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	Environment     string        `mapstructure:"GO_ENV"`
	CORSOrigin      string        `mapstructure:"CORS_ORIGIN"`
	CORSMaxAge      time.Duration `mapstructure:"CORS_MAX_AGE"`
	MetricsPath     string        `mapstructure:"METRICS_PATH"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// Load reads configuration from the app.env file in path, overridden by environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "127.0.0.1:8080")
	v.SetDefault("GO_ENV", "production")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("CORS_MAX_AGE", 10*time.Minute)
	v.SetDefault("METRICS_PATH", "/metrics")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
