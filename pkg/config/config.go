package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type CommonConfig struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":5000"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB" envDefault:"foodHeavenDB"`
}

type AuthConfig struct {
	AccessTokenSecret string `env:"ACCESS_TOKEN_SECRET"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
}

type MailgunConfig struct {
	Domain string `env:"MAILGUN_DOMAIN"`
	APIKey string `env:"MAILGUN_API_KEY"`
	Sender string `env:"MAILGUN_SENDER" envDefault:"orders@foodheaven.example"`
}

type RabbitConfig struct {
	URL string `env:"RABBIT_URL"`
}

type Config struct {
	Common  CommonConfig
	HTTP    HTTPConfig
	Mongo   MongoConfig
	Auth    AuthConfig
	Stripe  StripeConfig
	Mailgun MailgunConfig
	Rabbit  RabbitConfig
}

// Load reads configuration from the environment, with a best-effort .env load
// first. Mailgun and Rabbit settings are optional; the rest are required.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Mongo.URI == "" {
		return Config{}, fmt.Errorf("mongo uri is empty: set MONGO_URI")
	}
	if cfg.Auth.AccessTokenSecret == "" {
		return Config{}, fmt.Errorf("token secret is empty: set ACCESS_TOKEN_SECRET")
	}
	return cfg, nil
}

// MailEnabled reports whether the Mailgun transport is configured.
func (c Config) MailEnabled() bool {
	return c.Mailgun.Domain != "" && c.Mailgun.APIKey != ""
}

// EventsEnabled reports whether the RabbitMQ event stream is configured.
func (c Config) EventsEnabled() bool {
	return c.Rabbit.URL != ""
}
