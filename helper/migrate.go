package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"organise/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mongodb"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource            = "file://migrations/mongodb"
	defaultMigrationCollection = "schema_migrations"

	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

var ErrUnknownAction = errors.New("unknown migration action")

// migrationURL points the mongodb driver at the application database and its migration
// collection, whatever database the configured URI names.
func migrationURL(config *config.Config) (string, error) {
	mongoConfig := config.DB.Mongo

	uri, err := url.Parse(mongoConfig.URI)
	if err != nil {
		return "", fmt.Errorf("invalid mongo uri: %w", err)
	}

	collection := mongoConfig.MigrationCollection
	if collection == "" {
		collection = defaultMigrationCollection
	}

	uri.Path = "/" + mongoConfig.Database

	query := uri.Query()
	query.Set("x-migrations-collection", collection)
	uri.RawQuery = query.Encode()

	return uri.String(), nil
}

func getConnection(config *config.Config) (*migrate.Migrate, error) {
	connectionString, err := migrationURL(config)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(migrationSource, connectionString)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(config *config.Config, action string) error {
	mig, err := getConnection(config)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migrations: %w", action, err)
	}

	log.Info().Str("action", action).Str("database", config.DB.Mongo.Database).Msg("Database migrations completed successfully")

	return nil
}
