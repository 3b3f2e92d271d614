package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Store struct {
		Path string `env:"PATH" envDefault:"data/data.json"`
	} `envPrefix:"STORE_"`
	Leave struct {
		AutoApproveCategories []string `env:"AUTO_APPROVE_CATEGORIES" envDefault:"SL"`
	} `envPrefix:"LEAVE_"`
	Auth struct {
		// Plain PIN values, hashed at startup. Placeholder access control,
		// not a real authentication system.
		AdminPIN       string `env:"ADMIN_PIN" envDefault:"2580"`
		MemberPIN      string `env:"MEMBER_PIN" envDefault:"1379"`
		MaxPINAttempts int    `env:"MAX_PIN_ATTEMPTS" envDefault:"5"`
		LockoutSeconds int    `env:"LOCKOUT_SECONDS" envDefault:"300"`
	} `envPrefix:"AUTH_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"43200"` // 12 hours
		Secret     string `env:"SECRET" envDefault:"dev-only-secret"`
	} `envPrefix:"JWT_"`
	Redis struct {
		// Empty Addr disables PIN attempt throttling.
		Addr     string `env:"ADDR"`
		Password string `env:"PASSWORD"`
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		// Empty DSN disables leave notifications.
		DSN            string `env:"DSN"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		UserDomain    string `env:"USER_DOMAIN" envDefault:"example.com"`
		NotifyAddress string `env:"NOTIFY_ADDRESS"`
		SMTP          struct {
			Username    string `env:"USERNAME"`
			Password    string `env:"PASSWORD"`
			Host        string `env:"HOST"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Only return the first error to keep logs readable.
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	return cfg, nil
}
