// Package alert содержит модальное сообщение поверх экрана тренировки
package alert

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			MarginBottom(1)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// DismissedMsg отправляется после закрытия сообщения
type DismissedMsg struct{}

// Model модальное сообщение. Пока оно показано, остальные клавиши не обрабатываются.
type Model struct {
	title   string
	message string
	visible bool
	width   int
	height  int
}

// New создает скрытое сообщение
func New() Model {
	return Model{}
}

// Show показывает сообщение
func (m *Model) Show(title, message string) {
	m.title = title
	m.message = message
	m.visible = true
}

// Visible сообщает, показано ли сообщение
func (m Model) Visible() bool { return m.visible }

// Message возвращает текст сообщения
func (m Model) Message() string { return m.message }

// Update закрывает сообщение по любой клавише
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		m.visible = false
		return m, func() tea.Msg { return DismissedMsg{} }
	}
	return m, nil
}

// View отображает сообщение по центру экрана
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	box := boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("⚠️ "+m.title),
		m.message,
		hintStyle.Render("Нажмите любую клавишу"),
	))

	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
