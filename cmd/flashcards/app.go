package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/scry-flashcards/internal/config"
	"github.com/phrazzld/scry-flashcards/internal/menu"
	"github.com/phrazzld/scry-flashcards/internal/platform/jsonfile"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/service"
	"github.com/spf13/afero"
)

// application holds the wired dependencies of the flashcards command.
type application struct {
	config *config.Config
	logger *slog.Logger

	cardStore   *jsonfile.Store
	cardService service.FlashcardService
	menu        *menu.Menu
}

// initializeApp loads configuration, sets up logging and wires the store,
// service and menu. An empty configPath uses the default lookup.
func initializeApp(configPath string, in io.Reader, out io.Writer) (*application, error) {
	cfg, err := loadAppConfig(configPath)
	if err != nil {
		return nil, err
	}

	l, err := logger.Setup(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	return newApplication(cfg, l, afero.NewOsFs(), in, out)
}

func loadAppConfig(configPath string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromFile(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// newApplication wires the components on top of the given filesystem.
func newApplication(
	cfg *config.Config,
	l *slog.Logger,
	fsys afero.Fs,
	in io.Reader,
	out io.Writer,
) (*application, error) {
	cardStore := jsonfile.NewStore(cfg.Storage.Path, fsys, l)

	cardService, err := service.NewFlashcardService(cardStore, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create flashcard service: %w", err)
	}

	l.Debug("application configured",
		slog.String("storage_path", cardStore.Path()),
		slog.String("log_level", cfg.Log.Level))

	return &application{
		config:      cfg,
		logger:      l,
		cardStore:   cardStore,
		cardService: cardService,
		menu:        menu.New(cardService, in, out, l),
	}, nil
}

// run drives the menu until the user exits or input ends.
func (a *application) run(ctx context.Context) error {
	ctx = logger.WithLogger(ctx, a.logger)
	return a.menu.Run(ctx)
}
