package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"github.com/SAP-F-2025/homework-grader/internal/models"
)

type Config struct {
	OutputPath  string
	Environment string
	LogLevel    string
}

// LoadConfig reads an optional .env file and the process environment.
// A missing .env file is not an error.
func LoadConfig(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		OutputPath:  getEnv("GRADER_OUTPUT_PATH", models.DefaultReportPath),
		Environment: getEnv("ENVIRONMENT", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
