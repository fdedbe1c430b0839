package postgres

import (
	"database/sql"
	"embed"
	"log/slog"

	"hobbyexplorer/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Direction selects which way Migrate moves the schema.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// ParseDirection validates a direction given on the command line.
func ParseDirection(raw string) (Direction, error) {
	switch Direction(raw) {
	case DirectionUp, DirectionDown:
		return Direction(raw), nil
	default:
		return "", errors.Errorf("unknown migration direction %q, expected up or down", raw)
	}
}

// Migrate applies the embedded migrations to sqlDB. The migrator is not closed:
// closing it would close sqlDB, which stays owned by the GORM pool.
func Migrate(sqlDB *sql.DB, direction Direction, logger *slog.Logger) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	driver, err := migratepg.WithInstance(sqlDB, &migratepg.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "failed to create migrator")
	}

	switch direction {
	case DirectionUp:
		err = m.Up()
	case DirectionDown:
		err = m.Down()
	default:
		return errors.Errorf("unknown migration direction %q", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("Database schema is up to date", slog.String("direction", string(direction)))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to migrate %s", direction)
	}

	version, dirty, verErr := m.Version()
	if verErr != nil && !errors.Is(verErr, migrate.ErrNilVersion) {
		return errors.Wrap(verErr, "failed to read schema version")
	}

	logger.Info("Database migrated",
		slog.String("direction", string(direction)),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
