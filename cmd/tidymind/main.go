package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/tidymind/tidymind/internal/repo"
	"github.com/tidymind/tidymind/internal/storage"
	"github.com/tidymind/tidymind/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "tidymind failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	store, cleanup, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := context.Background()
	clock := repo.SystemClock{}
	tasks, err := repo.NewTaskRepository(ctx, store, clock, repo.UUIDAllocator{})
	if err != nil {
		return err
	}
	notes, err := repo.NewNoteRepository(ctx, store, repo.UUIDAllocator{}, repo.NewRandColorPicker(time.Now().UnixNano()))
	if err != nil {
		return err
	}

	program := tea.NewProgram(update.NewModel(tasks, notes, clock, cfg))
	_, err = program.Run()
	return err
}

func openStore(cfg update.RuntimeConfig) (storage.Store, func(), error) {
	switch cfg.StoreBackend {
	case update.StoreFile:
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return fs, func() {}, nil
	case update.StoreMemory:
		return storage.NewMemoryStore(), func() {}, nil
	default:
		if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		s, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, func() { _ = s.Close() }, nil
	}
}
