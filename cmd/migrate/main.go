// Command migrate applies or rolls back the embedded schema migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"hobbyexplorer/config"
	"hobbyexplorer/internal/domain/lifecycle"
	"hobbyexplorer/internal/errors"
	logs "hobbyexplorer/internal/infra/log"
	"hobbyexplorer/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	rawDirection := flag.String("direction", string(postgres.DirectionUp), "Migration direction: up or down")
	flag.Parse()

	direction, err := postgres.ParseDirection(*rawDirection)
	if err == nil {
		err = run(direction)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

// withoutMigrateOnStart keeps the connection lifecycle from migrating up
// before the requested direction runs.
func withoutMigrateOnStart(cfg *config.Config) *config.Config {
	cfg.Migration = &config.MigrationConfig{RunOnStart: false}

	return cfg
}

func run(direction postgres.Direction) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Decorate(withoutMigrateOnStart),
		fx.Populate(&db, &logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to connect")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Warn("Failed to close database", slog.Any("error", err))
		}
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}

	return postgres.Migrate(sqlDB, direction, logger)
}
