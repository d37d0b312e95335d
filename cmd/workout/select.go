package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-workout/internal/workout"
)

// createSelectCommand создает команду select с привязкой к экземпляру приложения
func (app *Application) createSelectCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "select [name]",
		Short: "Select an exercise by name",
		Long:  `Select an exercise. Selecting an exercise at or before the current one makes it current and marks all previous exercises completed.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.selectExercise(ctx, args[0])
		},
	}
}

func (app *Application) selectExercise(ctx context.Context, name string) {
	switch app.Workout.SelectExercise(ctx, name) {
	case workout.SelectAdvanced:
		done, total := app.Workout.Progress()
		fmt.Printf("▶️ Текущее упражнение: %s\n", name)
		fmt.Printf("✅ Выполнено: %d из %d\n", done, total)
	case workout.SelectPreview:
		fmt.Printf("👀 Упражнение %s еще впереди, текущее: %s\n", name, app.Workout.Playing())
	default:
		fmt.Printf("❌ Ошибка: упражнение '%s' не найдено\n", name)
	}
}
