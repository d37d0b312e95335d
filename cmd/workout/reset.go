package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-workout/internal/data"
)

// createResetCommand создает команду reset с привязкой к экземпляру приложения
func (app *Application) createResetCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the workout to defaults",
		Long:  `Overwrite the stored exercise list and progress with the built-in defaults.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.resetWorkout(ctx)
		},
	}
}

func (app *Application) resetWorkout(ctx context.Context) error {
	if err := app.Repo.Save(ctx, data.DefaultState()); err != nil {
		return fmt.Errorf("ошибка сохранения данных: %w", err)
	}

	w, err := app.loadWorkout(ctx, app.Repo)
	if err != nil {
		return err
	}
	app.Workout = w
	app.Log.Info("тренировка сброшена")

	fmt.Println("🔄 Тренировка сброшена к значениям по умолчанию")
	return nil
}
