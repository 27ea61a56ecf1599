package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"todoapi/config"
	"todoapi/infras/postgres"
	"todoapi/shared/constant"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"

	pgxMigrateScheme = "pgx5"
)

var ErrUnknownAction = errors.New("unknown migration action")

// DatabaseURL builds the migrate database URL for the write endpoint. The pgx driver is addressed
// through its own scheme so migrations run on the same driver as the application.
func DatabaseURL(cfg *config.Config) string {
	write := cfg.DB.Postgres.Write

	name := write.Name
	if cfg.DB.Postgres.Prefix != "" {
		name = cfg.DB.Postgres.Prefix + name
	}

	dsn := postgres.DSN(write.Username, write.Password, write.Host, write.Port, name, write.SSLMode)
	if postgres.DriverName(*cfg) == constant.DBDriverPgx {
		dsn = pgxMigrateScheme + strings.TrimPrefix(dsn, constant.DBDriverPostgres)
	}

	return fmt.Sprintf("%s&x-migrations-table=%s", dsn, url.QueryEscape(cfg.DB.Postgres.MigrationTable))
}

// SourceURL points migrate at the directory holding the *.up.sql and *.down.sql files.
func SourceURL(cfg *config.Config) string {
	return "file://" + cfg.DB.Postgres.MigrationPath
}

func getConnection(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(SourceURL(cfg), DatabaseURL(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func Runner(cfg *config.Config, action string) error {
	var step func(*migrate.Migrate) error

	switch action {
	case ActionUp:
		step = (*migrate.Migrate).Up
	case ActionDown:
		step = func(mig *migrate.Migrate) error { return mig.Steps(-1) }
	case ActionStepUp:
		step = func(mig *migrate.Migrate) error { return mig.Steps(1) }
	case ActionDrop:
		step = (*migrate.Migrate).Down
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := getConnection(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Error().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	if err := step(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
