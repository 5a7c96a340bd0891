package di

import (
	"context"
	"errors"
	"fmt"
	"organise/infras/kafka"
	"organise/infras/mongo"
	"organise/infras/otel"
	"organise/transport/http"

	goRedis "github.com/redis/go-redis/v9"
)

// App is the wired service plus the connections it owns.
type App struct {
	HTTP  *http.HTTP
	Mongo *mongo.Connection
	Redis *goRedis.Client
	Kafka kafka.Client
	Otel  otel.Otel
}

// Close releases every connection, continuing past failures, and joins their errors.
func (a *App) Close(ctx context.Context) error {
	var errs []error

	if err := a.Mongo.Close(ctx); err != nil {
		errs = append(errs, err)
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}

	if err := a.Kafka.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close kafka writer: %w", err))
	}

	if err := a.Otel.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to shut down tracer provider: %w", err))
	}

	return errors.Join(errs...)
}
