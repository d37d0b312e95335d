// Package app содержит основную логику TUI приложения
package app

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-workout/internal/tui/alert"
	"github.com/hazadus/go-workout/internal/tui/detail"
	"github.com/hazadus/go-workout/internal/tui/editor"
	"github.com/hazadus/go-workout/internal/tui/exerciselist"
	"github.com/hazadus/go-workout/internal/utils"
	"github.com/hazadus/go-workout/internal/workout"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			Margin(1, 2, 0, 2)

	timerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)

	helpStyle     = lipgloss.NewStyle().Margin(1, 0, 0, 2)
	quitTextStyle = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

const listWidthRatio = 2

// MainModel представляет главную модель TUI
type MainModel struct {
	ctx      context.Context
	workout  *workout.Workout
	title    string
	timer    stopwatch.Model
	list     *exerciselist.Model
	detail   *detail.Model
	editor   *editor.Model
	alert    alert.Model
	help     help.Model
	keys     KeyMap
	quitting bool
}

// NewMainModel создает новую главную модель
func NewMainModel(ctx context.Context, w *workout.Workout, title string) *MainModel {
	m := &MainModel{
		ctx:     ctx,
		workout: w,
		title:   title,
		timer:   stopwatch.NewWithInterval(time.Second),
		list:    exerciselist.NewModel(w),
		detail:  detail.NewModel(),
		editor:  editor.NewModel(),
		alert:   alert.New(),
		help:    help.New(),
		keys:    DefaultKeyMap(),
	}
	m.refresh()
	return m
}

// Init запускает таймер тренировки и заполняет прогресс
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(m.timer.Init(), m.refresh())
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.alert, _ = m.alert.Update(msg)
		m.detail, _ = m.detail.Update(msg)
		m.help.Width = msg.Width
		// Оставляем место для заголовка, панели редактирования и справки
		m.list.SetSize(msg.Width/listWidthRatio, max(msg.Height-8, 0))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case exerciselist.SelectMsg:
		m.workout.SelectExercise(m.ctx, msg.Name)
		return m, m.refresh()

	case exerciselist.LongPressMsg:
		m.showError(m.workout.EnterEdit(msg.Name))
		return m, m.refresh()

	case exerciselist.DeleteMsg:
		m.showError(m.workout.Delete(msg.Name))
		return m, m.refresh()

	case exerciselist.AddMsg:
		ex, err := m.workout.Add()
		m.showError(err)
		cmd := m.refresh()
		if err == nil {
			m.list.Focus(ex.Name)
		}
		return m, cmd

	case exerciselist.MoveMsg:
		m.showError(m.workout.Move(msg.Name, msg.Delta))
		return m, m.refresh()

	case editor.SaveMsg:
		m.showError(m.workout.Commit(m.ctx))
		return m, m.refresh()

	case editor.DiscardMsg:
		m.workout.Discard()
		m.editor.Reset()
		return m, m.refresh()

	case alert.DismissedMsg:
		return m, nil

	case progress.FrameMsg:
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd

	case stopwatch.TickMsg, stopwatch.StartStopMsg, stopwatch.ResetMsg:
		var cmd tea.Cmd
		m.timer, cmd = m.timer.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *MainModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	// Пока показано сообщение, клавиши только закрывают его
	if m.alert.Visible() {
		var cmd tea.Cmd
		m.alert, cmd = m.alert.Update(msg)
		return m, cmd
	}

	editing := m.workout.Session().Editing()
	if editing {
		var (
			cmd     tea.Cmd
			handled bool
		)
		m.editor, cmd, handled = m.editor.Update(msg)
		if handled {
			return m, cmd
		}
	}

	switch {
	case !editing && key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case !editing && key.Matches(msg, m.keys.Edit):
		m.showError(m.workout.EnterEdit(""))
		return m, m.refresh()

	case key.Matches(msg, m.keys.ToggleGif):
		m.detail.ToggleGif()
		return m, nil

	case key.Matches(msg, m.keys.Pause):
		return m, m.timer.Toggle()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// showError показывает ошибку операции в модальном сообщении
func (m *MainModel) showError(err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, workout.ErrLastExercise):
		m.alert.Show("Удаление невозможно", "В тренировке должно остаться хотя бы одно упражнение")
	default:
		m.alert.Show("Ошибка", err.Error())
	}
}

// refresh синхронизирует компоненты с состоянием тренировки
func (m *MainModel) refresh() tea.Cmd {
	m.list.Refresh()

	if ex, ok := m.workout.SelectedExercise(); ok {
		m.detail.SetExercise(ex, ex.Name == m.workout.Playing(), m.workout.IsCompleted(ex.Name))
	} else {
		m.detail.Clear()
	}

	session := m.workout.Session()
	m.editor.SetDirty(session.Dirty())
	if !session.Editing() {
		m.editor.Reset()
	}

	return m.detail.SetProgress(m.workout.Progress())
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if m.quitting {
		return quitTextStyle.Render("Хорошей тренировки!")
	}
	if m.alert.Visible() {
		return m.alert.View()
	}

	elapsed := utils.FormatDuration(m.timer.Elapsed())
	if !m.timer.Running() {
		elapsed = "⏸ " + elapsed
	}
	header := headerStyle.Render(m.title + "  " + timerStyle.Render("⏱ "+elapsed))

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.list.View(),
		detailStyle.Render(m.detail.View()),
	)

	sections := []string{header, body}
	session := m.workout.Session()
	if session.Editing() {
		sections = append(sections, m.editor.View())
	}
	sections = append(sections, helpStyle.Render(m.help.View(helpKeys{
		global:  m.keys,
		list:    m.list.Keys(),
		editor:  m.editor.Keys(),
		editing: session.Editing(),
	})))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
