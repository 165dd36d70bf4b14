package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	JWTAccessSecret  string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	Issuer           string
	PasswordPepper   string
	DatabaseURL      string
	RedisAddress     string
	RedisPassword    string
	RedisDB          int
	LogLevel         string
}

// Load reads configuration from the environment (and an optional
// config.json next to the binary). The two signing secrets are
// required and must differ: a leaked access token must never be
// forgeable into a refresh token.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range []string{
		"JWT_ACCESS_SECRET_KEY",
		"JWT_REFRESH_SECRET_KEY",
		"ACCESS_TOKEN_TTL",
		"REFRESH_TOKEN_TTL",
		"JWT_ISSUER",
		"PASSWORD_PEPPER",
		"DATABASE_URL",
		"REDIS_ADDRESS",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"LOG_LEVEL",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("ACCESS_TOKEN_TTL", "15m")
	viper.SetDefault("REFRESH_TOKEN_TTL", "1440h") // 60 дней

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	for _, key := range []string{
		"JWT_ACCESS_SECRET_KEY",
		"JWT_REFRESH_SECRET_KEY",
		"DATABASE_URL",
		"REDIS_ADDRESS",
	} {
		if viper.GetString(key) == "" {
			return nil, fmt.Errorf("required config key %s is not set", key)
		}
	}

	cfg := &Config{
		JWTAccessSecret:  viper.GetString("JWT_ACCESS_SECRET_KEY"),
		JWTRefreshSecret: viper.GetString("JWT_REFRESH_SECRET_KEY"),
		AccessTokenTTL:   viper.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:  viper.GetDuration("REFRESH_TOKEN_TTL"),
		Issuer:           viper.GetString("JWT_ISSUER"),
		PasswordPepper:   viper.GetString("PASSWORD_PEPPER"),
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		RedisAddress:     viper.GetString("REDIS_ADDRESS"),
		RedisPassword:    viper.GetString("REDIS_PASSWORD"),
		RedisDB:          viper.GetInt("REDIS_DB"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
	}

	if cfg.JWTAccessSecret == cfg.JWTRefreshSecret {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET_KEY and JWT_REFRESH_SECRET_KEY must differ")
	}
	if cfg.AccessTokenTTL <= 0 || cfg.RefreshTokenTTL <= 0 {
		return nil, fmt.Errorf("token TTLs must be positive")
	}
	if cfg.AccessTokenTTL >= cfg.RefreshTokenTTL {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be shorter than REFRESH_TOKEN_TTL")
	}

	return cfg, nil
}
