package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type Config struct {
	HTTPHost           string
	HTTPPort           string
	Env                string
	MySQLDSN           string
	MongoURI           string
	MongoDB            string
	ModelURL           string
	InferenceTimeout   time.Duration
	PersistenceTimeout time.Duration
	LogLevel           string
	LogFormat          string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignores error if not found)
	_ = godotenv.Load()

	mysqlDSN := os.Getenv("MYSQL_DSN")
	if mysqlDSN == "" {
		return nil, errors.New("MYSQL_DSN environment variable is required")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		return nil, errors.New("MONGO_URI environment variable is required")
	}

	mongoDB := os.Getenv("MONGO_DB")
	if mongoDB == "" {
		return nil, errors.New("MONGO_DB environment variable is required")
	}

	modelURL := os.Getenv("MODEL_URL")
	if modelURL == "" {
		return nil, errors.New("MODEL_URL environment variable is required")
	}

	env := strings.ToLower(getEnv("ENV", EnvProd))
	if env != EnvDev && env != EnvProd {
		return nil, errors.New("ENV must be either dev or prod")
	}

	return &Config{
		HTTPHost:           getEnv("HTTP_HOST", "0.0.0.0"),
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		Env:                env,
		MySQLDSN:           mysqlDSN,
		MongoURI:           mongoURI,
		MongoDB:            mongoDB,
		ModelURL:           strings.TrimRight(modelURL, "/"),
		InferenceTimeout:   getDurationEnv("INFERENCE_TIMEOUT", 10*time.Second),
		PersistenceTimeout: getDurationEnv("PERSISTENCE_TIMEOUT", 5*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}, nil
}

// AuthEnabled reports whether bearer-token authentication is required.
// Dev mode runs open, matching the service's local development workflow.
func (c *Config) AuthEnabled() bool {
	return c.Env != EnvDev
}

// PredictionLogCollection is the per-environment document-store collection
// holding prediction records.
func (c *Config) PredictionLogCollection() string {
	return strings.ToUpper(c.Env) + "_intent_logs"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}
