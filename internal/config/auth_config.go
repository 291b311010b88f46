package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AuthConfig struct {
	JwtSecret       string `mapstructure:"jwt_secret"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes"`
	BcryptCost      int    `mapstructure:"bcrypt_cost"`
}

func (config AuthConfig) validate() error {

	if config.JwtSecret == "" {
		return fmt.Errorf("missing variable: jwt secret")
	}
	if config.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token_ttl_minutes must be positive")
	}
	return nil
}

func (config AuthConfig) bindEnvironmentVariables() error {

	if err := viper.BindEnv("auth.jwt_secret", "JWT_SECRET"); err != nil {
		return err
	}

	return viper.BindEnv("auth.token_ttl_minutes", "TOKEN_TTL_MINUTES")
}
