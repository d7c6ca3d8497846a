package config

import "github.com/caarlos0/env/v11"

type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET,required,notEmpty"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"24"`
}

func LoadAuth() (AuthConfig, error) {
	var cfg AuthConfig
	err := env.Parse(&cfg)
	return cfg, err
}
