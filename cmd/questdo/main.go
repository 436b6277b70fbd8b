package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/questdo/questdo/internal/storage"
	"github.com/questdo/questdo/internal/store"
	"github.com/questdo/questdo/internal/update"
	"github.com/questdo/questdo/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "questdo failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Path: cfg.LogPath})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	blob, err := openBlobStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	defer blob.Close()

	taskStore := store.New(blob, log)
	defer taskStore.Close()

	log.Info("questdo starting",
		zap.String("backend", cfg.StoreBackend),
		zap.String("data_dir", cfg.DataDir),
	)

	program := tea.NewProgram(update.NewModelWithConfig(taskStore, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

func openBlobStore(cfg update.RuntimeConfig) (storage.BlobStore, error) {
	switch cfg.StoreBackend {
	case "sqlite":
		return storage.OpenSQLite(filepath.Join(cfg.DataDir, "questdo.sqlite"))
	default:
		return storage.OpenBolt(filepath.Join(cfg.DataDir, "questdo.db"))
	}
}
