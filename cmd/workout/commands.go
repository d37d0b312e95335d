package main

import (
	"context"

	"github.com/spf13/cobra"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "workout",
		Short: "Workout tracker for the terminal",
		Long:  `Track progress through a workout: pick the current exercise, mark completed ones and edit the exercise list.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
	}

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createTUICommand(ctx))
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createSelectCommand(ctx))
	rootCmd.AddCommand(app.createAddCommand(ctx))
	rootCmd.AddCommand(app.createDeleteCommand(ctx))
	rootCmd.AddCommand(app.createMoveCommand(ctx))
	rootCmd.AddCommand(app.createResetCommand(ctx))

	return rootCmd
}
