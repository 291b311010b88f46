package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port               int `mapstructure:"port"`
	MetricsPort        int `mapstructure:"metrics_port"`
	LoginRatePerMinute int `mapstructure:"login_rate_per_minute"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Port <= 0 {
		errs = append(errs, fmt.Errorf("port must be positive"))
	}
	if config.MetricsPort <= 0 {
		errs = append(errs, fmt.Errorf("metrics_port must be positive"))
	}
	if config.LoginRatePerMinute <= 0 {
		errs = append(errs, fmt.Errorf("login_rate_per_minute must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config ServerConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("server.port", "PORT"); err != nil {
		return err
	}

	return viper.BindEnv("server.metrics_port", "METRICS_PORT")
}
