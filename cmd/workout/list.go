package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-workout/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exercises of the workout",
		Long:  `Display the exercise list with the current exercise and completed exercises marked.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listExercises()
		},
	}
}

func (app *Application) listExercises() {
	w := app.Workout
	exercises := w.Exercises()
	done, total := w.Progress()

	fmt.Printf("🏋️ %s\n", app.Config.Workout.Title)
	fmt.Printf("📋 Упражнений: %d, выполнено: %d\n\n", total, done)

	// Выводим заголовок таблицы
	fmt.Printf("%-4s %-2s %-30s %-12s\n", "#", "", "Упражнение", "Снаряд")
	fmt.Println(strings.Repeat("-", 52))

	for i, ex := range exercises {
		marker := " "
		switch {
		case ex.Name == w.Playing():
			marker = "▶"
		case w.IsCompleted(ex.Name):
			marker = "✓"
		}

		fmt.Printf("%-4d %-2s %-30s %s %s\n",
			i+1, marker, utils.TruncateString(ex.Name, 30), ex.Equipment.Icon(), ex.Equipment.Label())
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'workout select [name]' для выбора текущего упражнения")
}
