package cmd

import (
	"context"
	"fmt"

	"github.com/tavlaboard/tavla/internal/config"
	"github.com/tavlaboard/tavla/internal/services/board"
	"github.com/tavlaboard/tavla/internal/services/project"
	"github.com/tavlaboard/tavla/internal/services/task"
	"github.com/tavlaboard/tavla/internal/storage"
)

// App holds the wired services shared by every command
type App struct {
	Config *config.Config
	Board  *board.Controller

	closeStore func() error
}

// newApp loads configuration, opens the configured storage backend and
// assembles the board controller on top of it.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dataPath, err := cfg.DataPath()
	if err != nil {
		return nil, fmt.Errorf("resolving data path: %w", err)
	}

	var store storage.Store
	closeStore := func() error { return nil }
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		db, err := storage.OpenSQLite(ctx, dataPath)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		store = db
		closeStore = db.Close
	default:
		store = storage.NewJSONStore(dataPath)
	}

	tasks := task.NewService(store)
	projects := project.NewService(cfg.SeedProjects())
	mode := board.ParseDateFilterMode(cfg.Board.DateFilter)

	return &App{
		Config:     cfg,
		Board:      board.NewController(tasks, projects, mode),
		closeStore: closeStore,
	}, nil
}

// Close releases storage resources
func (a *App) Close() error {
	return a.closeStore()
}
