package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-workout/internal/storage"
	"github.com/hazadus/go-workout/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for the workout screen.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
	}
}

func (app *Application) launchTUI(ctx context.Context) error {
	// Интерфейс не должен ждать записи, поэтому сохраняем в фоне
	async := storage.NewAsyncRepository(app.Repo, app.Log)

	w, err := app.loadWorkout(ctx, async)
	if err != nil {
		_ = async.Close()
		return err
	}

	tuiApp := tui.NewApp(w, app.Config.Workout.Title, async.Close)
	return tuiApp.Run(ctx)
}
