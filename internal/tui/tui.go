// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-workout/internal/tui/app"
	"github.com/hazadus/go-workout/internal/workout"
)

// App представляет основное TUI приложение
type App struct {
	workout   *workout.Workout
	title     string
	closeFunc func() error // Функция для завершения фоновых записей
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(w *workout.Workout, title string, closeFunc func() error) *App {
	return &App{
		workout:   w,
		title:     title,
		closeFunc: closeFunc,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run(ctx context.Context) error {
	model := app.NewMainModel(ctx, tuiApp.workout, tuiApp.title)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()

	// Дожидаемся записи последнего состояния
	if tuiApp.closeFunc != nil {
		err = errors.Join(err, tuiApp.closeFunc())
	}

	return err
}
