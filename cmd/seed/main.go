// Command seed imports the hobby catalogue from a CSV file.
//
//	go run ./cmd/seed -file data/hobbies.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"hobbyexplorer/config"
	"hobbyexplorer/internal/domain/lifecycle"
	"hobbyexplorer/internal/errors"
	logs "hobbyexplorer/internal/infra/log"
	"hobbyexplorer/internal/infra/persistence/postgres"
	"hobbyexplorer/internal/infra/seed"
	"hobbyexplorer/internal/usecase"
	"hobbyexplorer/internal/usecase/impl"
	"hobbyexplorer/internal/util"

	"go.uber.org/fx"
)

func main() {
	file := flag.String("file", "", "CSV file with name and description columns (defaults to seed.file from config)")
	flag.Parse()

	if err := run(*file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}

func run(fileFlag string) error {
	var (
		cfg     *config.Config
		logger  *slog.Logger
		hobbyUC usecase.HobbyUsecase
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewHobbyRepository,
			postgres.NewTransactionManager,
			impl.NewHobbyService,
		),
		fx.Populate(&cfg, &logger, &hobbyUC),
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start seed")
	}
	defer func() {
		stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancelStop()
		if err := app.Stop(stopCtx); err != nil {
			logger.Warn("Failed to stop seed cleanly", slog.Any("error", err))
		}
	}()

	path := fileFlag
	if path == "" {
		path = cfg.Seed.File
	}
	if path == "" {
		return errors.New("no seed file: pass -file or set seed.file")
	}

	return importHobbies(context.Background(), logger, hobbyUC, path)
}

func importHobbies(ctx context.Context, logger *slog.Logger, hobbyUC usecase.HobbyUsecase, path string) error {
	start := time.Now()

	digest, err := util.DigestFile(path)
	if err != nil {
		return err
	}
	logger.Info("Seeding hobbies",
		slog.String("file", digest.Path),
		slog.String("sha256", digest.Checksum),
		slog.String("size", util.FormatBytes(digest.Size)),
	)

	hobbies, err := seed.NewCSVLoader(path).Load()
	if err != nil {
		return err
	}

	result, err := hobbyUC.ImportHobbies(ctx, hobbies)
	if err != nil {
		return err
	}

	logger.Info("Seeding complete",
		slog.Int("rows", len(hobbies)),
		slog.Int("created", result.Created),
		slog.Int("skipped", result.Skipped),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)

	return nil
}
