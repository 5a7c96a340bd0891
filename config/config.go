package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const (
	defaultPort     = "8080"
	defaultDatabase = "organise"
	defaultAppName  = "OrganiseApp"

	defaultKafkaTopic = "organise.changes"
)

var ErrMissingMongoURI = errors.New("mongo connection uri is not set (DB_MONGO_URI or MONGO_URI)")

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
	} `envconfig:"APP"`

	Cache struct {
		Enable bool `envconfig:"ENABLE"`
		Redis  struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	DB struct {
		Mongo struct {
			URI                     string `envconfig:"URI"`
			Database                string `envconfig:"DATABASE"`
			AppName                 string `envconfig:"APP_NAME"`
			MaxRetry                int    `envconfig:"MAX_RETRY"`
			RetryWaitTime           int    `envconfig:"RETRY_WAIT_TIME"`
			OperationTimeoutSeconds int    `envconfig:"OPERATION_TIMEOUT_SECONDS"`
			MigrationCollection     string `envconfig:"MIGRATION_COLLECTION"`
		} `envconfig:"MONGO"`
	} `envconfig:"DB"`

	// LegacyMongoURI and LegacyPort keep the single MONGO_URI and PORT variables working.
	LegacyMongoURI string `envconfig:"MONGO_URI"`
	LegacyPort     string `envconfig:"PORT"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC"`
		SASL    struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Enable   bool   `envconfig:"ENABLE"`
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
		GoogleCalendar struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"GOOGLE_CALENDAR"`
	} `envconfig:"EXTERNAL"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		conf.applyDefaults()

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}

// Validate reports settings whose absence makes the service unable to start.
func (c *Config) Validate() error {
	if c.DB.Mongo.URI == "" {
		return ErrMissingMongoURI
	}

	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == "" {
		c.Server.Port = c.LegacyPort
	}

	if c.Server.Port == "" {
		c.Server.Port = defaultPort
	}

	if c.DB.Mongo.URI == "" {
		c.DB.Mongo.URI = c.LegacyMongoURI
	}

	if c.DB.Mongo.Database == "" {
		c.DB.Mongo.Database = defaultDatabase
	}

	if c.DB.Mongo.AppName == "" {
		c.DB.Mongo.AppName = defaultAppName
	}

	if c.DB.Mongo.MaxRetry <= 0 {
		c.DB.Mongo.MaxRetry = 1
	}

	if c.Kafka.Topic == "" {
		c.Kafka.Topic = defaultKafkaTopic
	}

	if c.App.Name == "" {
		c.App.Name = defaultAppName
	}
}
