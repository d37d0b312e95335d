package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Add a placeholder exercise",
		Long:  `Append a placeholder exercise "New Exercise N" to the end of the list.`,
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.addExercise(ctx)
		},
	}
}

// createDeleteCommand создает команду delete с привязкой к экземпляру приложения
func (app *Application) createDeleteCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete an exercise by name",
		Long:  `Delete an exercise from the list and from completed exercises. The last exercise cannot be deleted.`,
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			app.deleteExercise(ctx, args[0])
		},
	}
}

// createMoveCommand создает команду move с привязкой к экземпляру приложения
func (app *Application) createMoveCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "move [name] [delta]",
		Short: "Move an exercise by delta positions",
		Long:  `Move an exercise up (negative delta) or down (positive delta) the list.`,
		Args:  cobra.ExactArgs(2),
		Run: func(_ *cobra.Command, args []string) {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Printf("❌ Ошибка: неверное смещение '%s'. Смещение должно быть числом.\n", args[1])
				return
			}
			app.moveExercise(ctx, args[0], delta)
		},
	}
}

// edit выполняет изменение в черновике и сохраняет его, а при ошибке отменяет черновик
func (app *Application) edit(ctx context.Context, longPressed string, change func() error) error {
	if err := app.Workout.EnterEdit(longPressed); err != nil {
		return err
	}
	if err := change(); err != nil {
		app.Workout.Discard()
		return err
	}
	if !app.Workout.Session().Dirty() {
		app.Workout.Discard()
		return nil
	}
	return app.Workout.Commit(ctx)
}

func (app *Application) addExercise(ctx context.Context) {
	var name string
	err := app.edit(ctx, "", func() error {
		ex, err := app.Workout.Add()
		name = ex.Name
		return err
	})
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		return
	}

	fmt.Printf("➕ Добавлено упражнение: %s\n", name)
}

func (app *Application) deleteExercise(ctx context.Context, name string) {
	fmt.Printf("🗑️  Удаляем упражнение: %s\n", name)

	err := app.edit(ctx, name, func() error {
		return app.Workout.Delete(name)
	})
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		return
	}

	fmt.Println("✅ Упражнение успешно удалено")
	fmt.Printf("▶️ Текущее упражнение: %s\n", app.Workout.Playing())
}

func (app *Application) moveExercise(ctx context.Context, name string, delta int) {
	err := app.edit(ctx, "", func() error {
		return app.Workout.Move(name, delta)
	})
	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		return
	}

	for i, ex := range app.Workout.Exercises() {
		if ex.Name == name {
			fmt.Printf("↕️ Упражнение %s на позиции %d\n", name, i+1)
			return
		}
	}
}
