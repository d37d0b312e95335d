// Package detail содержит карточку выбранного упражнения для TUI
package detail

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-workout/internal/data"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#0000ff")).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// Model представляет карточку упражнения
type Model struct {
	exercise    data.Exercise
	hasExercise bool
	playing     bool
	completed   bool
	showGif     bool
	done        int
	total       int
	progressBar progress.Model
}

// NewModel создает пустую карточку
func NewModel() *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{progressBar: prog}
}

// SetExercise показывает упражнение в карточке
func (m *Model) SetExercise(ex data.Exercise, playing, completed bool) {
	m.exercise = ex
	m.hasExercise = true
	m.playing = playing
	m.completed = completed
}

// Clear убирает упражнение из карточки
func (m *Model) Clear() {
	m.exercise = data.Exercise{}
	m.hasExercise = false
}

// ToggleGif переключает статичное изображение и анимацию
func (m *Model) ToggleGif() {
	m.showGif = !m.showGif
}

// ShowGif сообщает, показывается ли анимация
func (m *Model) ShowGif() bool { return m.showGif }

// SetProgress обновляет прогресс тренировки и возвращает команду анимации прогресс-бара
func (m *Model) SetProgress(done, total int) tea.Cmd {
	m.done = done
	m.total = total

	var percent float64
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	return m.progressBar.SetPercent(percent)
}

// ImageURL возвращает адрес изображения, выбранного переключателем
func (m *Model) ImageURL() string {
	if m.showGif {
		return m.exercise.GifAssetURL
	}
	return m.exercise.AssetURL
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	if !m.hasExercise {
		return emptyStyle.Render("Выберите упражнение")
	}

	title := titleStyle.Render("💪 " + m.exercise.Name)

	imageKind := "🖼"
	if m.showGif {
		imageKind = "🎞"
	}
	info := infoStyle.Render(fmt.Sprintf(
		"%s %s\n%s %s",
		m.exercise.Equipment.Icon(),
		m.exercise.Equipment.Label(),
		imageKind,
		m.ImageURL(),
	))

	status := statusStyle.Render(formatStatus(m.playing, m.completed))

	return fmt.Sprintf(
		"%s\n%s\n%s\n\n%s\n%d / %d",
		title,
		info,
		status,
		m.progressBar.View(),
		m.done,
		m.total,
	)
}

func formatStatus(playing, completed bool) string {
	switch {
	case playing:
		return "▶️ Выполняется"
	case completed:
		return "✅ Выполнено"
	default:
		return "⏸️ Впереди"
	}
}
