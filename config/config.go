package config

import (
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MongoURI  string        `envconfig:"MONGO_URI"  required:"true"`
	MongoDB   string        `envconfig:"MONGO_DB"   default:"salescrm"`
	Port      string        `envconfig:"PORT"       default:":4000"`
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL"  default:"24h"`
	LogLevel  string        `envconfig:"LOG_LEVEL"  default:"info"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		if err := envconfig.Process("", &config); err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, MongoDB=%s, LogLevel=%s, TokenTTL=%s",
			config.Port, config.MongoDB, config.LogLevel, config.TokenTTL)
	})
	return &config
}
