// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"ledgerbase/pkg/db" // Import db package for its Config struct
)

// DecimalConfig sets the fixed-point NUMERIC(precision, scale) used for money and rates.
type DecimalConfig struct {
	Precision int32
	Scale     int32
}

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort     string
	LogLevel       string
	AutoMigrate    bool
	RequestTimeout time.Duration
	Decimal        DecimalConfig
	DB             db.Config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("REQUEST_TIMEOUT", "60s")
	v.SetDefault("DECIMAL_PRECISION", 20)
	v.SetDefault("DECIMAL_SCALE", 8)

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "ledgerdb")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "5m")
}

// LoadConfig loads configuration from a .env file (if present) and environment variables.
// Environment variables override .env values, which override the defaults.
func LoadConfig() (*AppConfig, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	dbPort, err := intValue(v, "DB_PORT")
	if err != nil {
		return nil, err
	}
	precision, err := intValue(v, "DECIMAL_PRECISION")
	if err != nil {
		return nil, err
	}
	scale, err := intValue(v, "DECIMAL_SCALE")
	if err != nil {
		return nil, err
	}
	if precision <= 0 || scale < 0 || scale >= precision {
		return nil, fmt.Errorf("invalid DECIMAL_PRECISION/DECIMAL_SCALE: %d/%d", precision, scale)
	}
	maxOpen, err := intValue(v, "DB_MAX_OPEN_CONNS")
	if err != nil {
		return nil, err
	}
	maxIdle, err := intValue(v, "DB_MAX_IDLE_CONNS")
	if err != nil {
		return nil, err
	}
	lifetime, err := durationValue(v, "DB_CONN_MAX_LIFETIME")
	if err != nil {
		return nil, err
	}
	timeout, err := durationValue(v, "REQUEST_TIMEOUT")
	if err != nil {
		return nil, err
	}
	autoMigrate, err := boolValue(v, "AUTO_MIGRATE")
	if err != nil {
		return nil, err
	}

	return &AppConfig{
		ServerPort:     v.GetString("SERVER_PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		AutoMigrate:    autoMigrate,
		RequestTimeout: timeout,
		Decimal: DecimalConfig{
			Precision: int32(precision),
			Scale:     int32(scale),
		},
		DB: db.Config{
			Host:            v.GetString("DB_HOST"),
			Port:            dbPort,
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    maxOpen,
			MaxIdleConns:    maxIdle,
			ConnMaxLifetime: lifetime,
		},
	}, nil
}

// viper's Get* helpers swallow parse errors and return zero, so values are converted with cast's E variants.

func intValue(v *viper.Viper, key string) (int, error) {
	n, err := cast.ToIntE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func durationValue(v *viper.Viper, key string) (time.Duration, error) {
	d, err := cast.ToDurationE(v.Get(key))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func boolValue(v *viper.Viper, key string) (bool, error) {
	b, err := cast.ToBoolE(v.Get(key))
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
