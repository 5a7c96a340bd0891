package mongo

import (
	"context"
	"fmt"
	"organise/config"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connection owns the single client shared by every request and the application database.
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// Collection returns a handle to name in the application database.
func (c *Connection) Collection(name string) *mongo.Collection {
	return c.Database.Collection(name)
}

// Close disconnects the client.
func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}

	return nil
}

// New connects and pings the primary, retrying DB_MONGO_MAX_RETRY times. It exits the process if
// every attempt fails.
func New(config *config.Config) *Connection {
	conn, err := Connect(context.Background(), config)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to mongo")
	}

	return conn
}

func Connect(ctx context.Context, config *config.Config) (*Connection, error) {
	mongoConfig := config.DB.Mongo

	opts := options.Client().
		ApplyURI(mongoConfig.URI).
		SetAppName(mongoConfig.AppName)

	if mongoConfig.OperationTimeoutSeconds > 0 {
		opts.SetTimeout(time.Duration(mongoConfig.OperationTimeoutSeconds) * time.Second)
	}

	var lastErr error

	for retry := range mongoConfig.MaxRetry {
		client, err := mongo.Connect(opts)
		if err == nil {
			err = client.Ping(ctx, readpref.Primary())
			if err == nil {
				log.
					Info().
					Str("database", mongoConfig.Database).
					Str("appName", mongoConfig.AppName).
					Msg("Connected to mongo")

				return &Connection{
					Client:   client,
					Database: client.Database(mongoConfig.Database),
				}, nil
			}

			_ = client.Disconnect(ctx)
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("database", mongoConfig.Database).
			Int("attempt", retry+1).
			Msg("Failed connecting to mongo, retrying")

		if retry+1 < mongoConfig.MaxRetry {
			time.Sleep(time.Duration(mongoConfig.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed to connect to mongo after %d attempts: %w", mongoConfig.MaxRetry, lastErr)
}
