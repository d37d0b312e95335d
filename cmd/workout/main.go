package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/hazadus/go-workout/internal/config"
	"github.com/hazadus/go-workout/internal/storage"
	"github.com/hazadus/go-workout/internal/workout"
)

const (
	defaultConfigPath = "~/.workout/config.yaml"
)

// Application содержит зависимости, общие для всех команд
type Application struct {
	Config  *config.Config
	Log     *slog.Logger
	Store   storage.KeyValueStore
	Repo    storage.Repository
	Workout *workout.Workout
}

// NewApplication создает приложение и загружает тренировку из хранилища
func NewApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, store storage.KeyValueStore) (*Application, error) {
	app := &Application{
		Config: cfg,
		Log:    logger,
		Store:  store,
		Repo:   storage.NewRepository(store),
	}

	w, err := app.loadWorkout(ctx, app.Repo)
	if err != nil {
		return nil, err
	}
	app.Workout = w

	return app, nil
}

// loadWorkout загружает тренировку через repo с настройками из конфигурации
func (app *Application) loadWorkout(ctx context.Context, repo storage.Repository) (*workout.Workout, error) {
	rule, err := workout.ParseRule(app.Config.Workout.Progression)
	if err != nil {
		return nil, err
	}
	return workout.Load(ctx, repo, workout.WithRule(rule), workout.WithLogger(app.Log)), nil
}

// newLogger создает журнал в файле. Терминал занят интерфейсом, поэтому в stdout журнал не пишется.
func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("ошибка создания директории журнала: %w", err)
	}
	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка открытия файла журнала: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler).With("run_id", uuid.NewString())
	return logger, file, nil
}

func main() {
	os.Exit(run(defaultConfigPath, os.Args[1:]))
}

// run выполняет команду и возвращает код завершения.
// Отложенные закрытия журнала и хранилища выполняются до выхода из процесса.
func run(configPath string, args []string) int {
	ctx := context.Background()

	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Ошибка загрузки конфигурации: %v", err)
		return 1
	}

	logger, logCloser, err := newLogger(cfg.Log)
	if err != nil {
		log.Printf("Ошибка настройки журнала: %v", err)
		return 1
	}
	defer logCloser.Close()

	store, err := storage.Open(ctx, cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		log.Printf("Ошибка открытия хранилища: %v", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("ошибка закрытия хранилища", "error", err)
		}
	}()

	logger.Info("приложение запущено", "backend", cfg.Storage.Backend, "path", cfg.Storage.Path)

	app, err := NewApplication(ctx, cfg, logger, store)
	if err != nil {
		log.Printf("Ошибка инициализации: %v", err)
		return 1
	}

	rootCmd := app.createRootCommand(ctx)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
