package infra

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port          string
	PostgresURL   string
	WeatherAPIKey string
	ShareBaseURL  string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("no .env file found, using process environment")
	}

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		WeatherAPIKey: os.Getenv("OPENWEATHERMAP_API_KEY"),
		ShareBaseURL:  os.Getenv("SHARE_BASE_URL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ShareBaseURL == "" {
		cfg.ShareBaseURL = "https://trailmix.example.com"
	}
	return cfg
}
