package utils

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const DEV_ENV_FILENAME = ".env.development"
const PROD_ENV_FILENAME = ".env.production"

func InitEnvironmentVariables() error {
	envFile := DEV_ENV_FILENAME
	if os.Getenv("GO_ENV") == "production" {
		log.Info("Running in production environment")
		envFile = PROD_ENV_FILENAME
	}

	// Missing env files are fine: the venue endpoints all have defaults
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(envFile); err != nil {
		return fmt.Errorf("failed to load %s file: %v", envFile, err)
	}

	return nil
}

func GetEnv(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("missing %s environment variable", name)
	}

	return value, nil
}
