// Package editor содержит панель редактирования списка упражнений для TUI
package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	focusedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("237")).Strikethrough(true)
	dirtyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	barStyle      = lipgloss.NewStyle().Margin(1, 0, 0, 2)
)

// SaveMsg отправляется при сохранении изменений списка
type SaveMsg struct{}

// DiscardMsg отправляется при отмене изменений списка
type DiscardMsg struct{}

// button определяет кнопку панели
type button int

const (
	noButton button = iota
	discardButton
	saveButton
)

// KeyMap клавиши панели редактирования
type KeyMap struct {
	Save    key.Binding
	Discard key.Binding
	Focus   key.Binding
	Press   key.Binding
}

// DefaultKeyMap возвращает клавиши по умолчанию
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "сохранить"),
		),
		Discard: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "отменить"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "кнопки"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
		),
	}
}

// Model панель с кнопками Discard и Save Changes
type Model struct {
	keys  KeyMap
	focus button
	dirty bool
}

// NewModel создает панель редактирования
func NewModel() *Model {
	return &Model{keys: DefaultKeyMap()}
}

// Keys возвращает клавиши панели
func (m *Model) Keys() KeyMap { return m.keys }

// SetDirty включает кнопку сохранения при наличии изменений
func (m *Model) SetDirty(dirty bool) {
	m.dirty = dirty
	if !dirty && m.focus == saveButton {
		m.focus = discardButton
	}
}

// Focused сообщает, находится ли фокус на кнопках панели
func (m *Model) Focused() bool { return m.focus != noButton }

// Reset снимает фокус с панели
func (m *Model) Reset() {
	m.focus = noButton
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает клавиши панели. Второе значение сообщает, была ли клавиша обработана.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}

	switch {
	case key.Matches(keyMsg, m.keys.Save):
		return m, m.save(), true

	case key.Matches(keyMsg, m.keys.Discard):
		return m, m.discard(), true

	case key.Matches(keyMsg, m.keys.Focus):
		m.moveFocus(keyMsg.String() == "shift+tab")
		return m, nil, true

	case m.Focused() && key.Matches(keyMsg, m.keys.Press):
		if m.focus == saveButton {
			return m, m.save(), true
		}
		return m, m.discard(), true
	}

	return m, nil, false
}

// moveFocus переключает фокус по кругу: список, Discard, Save Changes
func (m *Model) moveFocus(back bool) {
	order := []button{noButton, discardButton}
	if m.dirty {
		order = append(order, saveButton)
	}

	current := 0
	for i, b := range order {
		if b == m.focus {
			current = i
		}
	}
	if back {
		current = (current - 1 + len(order)) % len(order)
	} else {
		current = (current + 1) % len(order)
	}
	m.focus = order[current]
}

func (m *Model) save() tea.Cmd {
	if !m.dirty {
		return nil
	}
	m.focus = noButton
	return func() tea.Msg { return SaveMsg{} }
}

func (m *Model) discard() tea.Cmd {
	m.focus = noButton
	return func() tea.Msg { return DiscardMsg{} }
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("✏️ Редактирование"))
	if m.dirty {
		b.WriteString(dirtyStyle.Render(" • есть изменения"))
	}
	b.WriteString("   ")

	discard := "[ Discard ]"
	if m.focus == discardButton {
		discard = focusedStyle.Render(discard)
	} else {
		discard = blurredStyle.Render(discard)
	}
	b.WriteString(discard)
	b.WriteString(" ")

	save := "[ Save Changes ]"
	switch {
	case !m.dirty:
		save = disabledStyle.Render(save)
	case m.focus == saveButton:
		save = focusedStyle.Render(save)
	default:
		save = blurredStyle.Render(save)
	}
	b.WriteString(save)

	return barStyle.Render(b.String())
}
