package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GustavoCaso/billtrace/internal/config"
	"github.com/GustavoCaso/billtrace/internal/logger"
	"github.com/GustavoCaso/billtrace/internal/session"
	"github.com/GustavoCaso/billtrace/internal/storage"
	"github.com/GustavoCaso/billtrace/internal/storage/memory"
	"github.com/GustavoCaso/billtrace/internal/storage/sqlite"
	"github.com/GustavoCaso/billtrace/internal/util"
)

func main() {
	configPath := os.Getenv("BILLTRACE_CONFIG")
	if configPath == "" {
		configPath = config.DefaultFile
	}

	os.Exit(run(configPath, os.Stdin, os.Stdout, os.Stderr))
}

func run(configPath string, in io.Reader, out, errOut io.Writer) int {
	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(errOut, "Unable to parse the configuration. %s\n", err.Error())
		return 1
	}

	if conf.NoColor {
		util.DisableColor()
	}

	appLogger := logger.New(conf.Logger)

	ctx := context.Background()

	store, err := openStorage(ctx, conf.Storage, appLogger)
	if err != nil {
		appLogger.Error("Unable to open the bill book", "storage", conf.Storage, "error", err.Error())
		fmt.Fprintf(errOut, "Unable to open the bill book. %s\n", err.Error())
		return 1
	}

	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			appLogger.Error("Error closing storage", "error", closeErr)
		}
	}()

	appLogger.Info("Session started", "storage", conf.Storage)

	err = session.New(store, in, out, appLogger).Run(ctx)
	if err != nil {
		appLogger.Error("Session ended abnormally", "error", err)
		fmt.Fprintf(errOut, "%s\n", err.Error())
		return 1
	}

	return 0
}

func openStorage(ctx context.Context, backend config.Backend, appLogger *logger.Logger) (storage.Storage, error) {
	switch backend {
	case config.BackendMemory:
		return memory.New(), nil
	case config.BackendSQLite:
		s, err := sqlite.New()
		if err != nil {
			return nil, err
		}

		if err = s.ApplyMigrations(ctx, appLogger); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("unable to create schema: %w", err)
		}

		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage %q", backend)
	}
}
