package db

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"crowdfund/db/migrations"
)

// ErrDirtySchema is returned when a previous migration stopped half way.
var ErrDirtySchema = errors.New("database is in dirty state")

// Migrate applies the embedded migrations up to migrations.Version. It
// refuses to run against a database left in a dirty state.
func Migrate(addr string, logger *slog.Logger) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, addr)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	current, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("%w at version %d", ErrDirtySchema, current)
	}

	err = mg.Migrate(migrations.Version)
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Debug("schema up to date", slog.Uint64("version", uint64(current)))
		return nil
	case err != nil:
		return fmt.Errorf("migrate to version %d: %w", migrations.Version, err)
	}
	logger.Info("schema migrated",
		slog.Uint64("from", uint64(current)),
		slog.Int("to", migrations.Version),
	)
	return nil
}
