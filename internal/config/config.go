package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Environment        string        `default:"dev"`
	ListenAddress      string        `default:":8080" split_words:"true"`
	PostgresDSN        string        `envconfig:"POSTGRES_DSN"`
	OpenWeatherAPIKey  string        `envconfig:"OPENWEATHER_API_KEY" required:"true"`
	OpenWeatherBaseURL string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	ProviderTimeout    time.Duration `default:"10s" split_words:"true"`
	FrontendDir        string        `split_words:"true"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file.
// The OpenWeatherMap API credential is required; if it is absent, the load fails so that the process
// terminates at startup instead of on the first outbound call.
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("wq", config); err != nil {
		return nil, err
	}
	return config, nil
}

// IsEnvProduction returns whether the application runs in a production environment
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "prod" || config.Environment == "production"
}
