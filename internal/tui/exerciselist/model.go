// Package exerciselist содержит модель списка упражнений тренировки для TUI
package exerciselist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-workout/internal/data"
	"github.com/hazadus/go-workout/internal/utils"
	"github.com/hazadus/go-workout/internal/workout"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	completedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	playingStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	deleteStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
)

const nameWidth = 30

// SelectMsg отправляется при выборе упражнения
type SelectMsg struct {
	Name string
}

// LongPressMsg отправляется при долгом нажатии на упражнение
type LongPressMsg struct {
	Name string
}

// DeleteMsg отправляется при нажатии на кнопку удаления упражнения
type DeleteMsg struct {
	Name string
}

// MoveMsg отправляется при перемещении упражнения на Delta позиций
type MoveMsg struct {
	Name  string
	Delta int
}

// AddMsg отправляется при добавлении нового упражнения
type AddMsg struct{}

// Source источник данных для списка. *workout.Workout реализует этот интерфейс.
type Source interface {
	Exercises() []data.Exercise
	Playing() string
	Selected() string
	IsCompleted(name string) bool
	Session() workout.EditSession
}

// KeyMap клавиши действий над упражнениями
type KeyMap struct {
	Select    key.Binding
	LongPress key.Binding
	Delete    key.Binding
	Add       key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
}

// DefaultKeyMap возвращает клавиши по умолчанию
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "выбрать"),
		),
		LongPress: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "долгое нажатие"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "удалить"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "добавить"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "выше"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "ниже"),
		),
	}
}

// exerciseItem реализует интерфейс list.Item для упражнения
type exerciseItem struct {
	exercise  data.Exercise
	playing   bool
	completed bool
	selected  bool
	deletable bool
}

func (i exerciseItem) FilterValue() string { return i.exercise.Name }

// exerciseItemDelegate реализует отображение элементов списка
type exerciseItemDelegate struct{}

func (d exerciseItemDelegate) Height() int                             { return 1 }
func (d exerciseItemDelegate) Spacing() int                            { return 0 }
func (d exerciseItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d exerciseItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(exerciseItem)
	if !ok {
		return
	}

	fmt.Fprint(w, renderItem(i, index == m.Index()))
}

func renderItem(i exerciseItem, cursor bool) string {
	marker := " "
	switch {
	case i.playing:
		marker = "▶"
	case i.completed:
		marker = "✓"
	}

	name := fmt.Sprintf("%-*s", nameWidth, utils.TruncateString(i.exercise.Name, nameWidth))
	switch {
	case i.playing:
		name = playingStyle.Render(name)
	case i.completed:
		name = completedStyle.Render(name)
	}

	str := fmt.Sprintf("%s %s %s", marker, i.exercise.Equipment.Icon(), name)
	if i.selected {
		str += " •"
	}
	if i.deletable {
		str += " " + deleteStyle.Render("✕")
	}

	if cursor {
		return selectedItemStyle.Render("> " + str)
	}
	return itemStyle.Render(str)
}

// Model представляет модель списка упражнений
type Model struct {
	list   list.Model
	source Source
	keys   KeyMap
}

// NewModel создает модель списка над источником данных
func NewModel(source Source) *Model {
	l := list.New(nil, exerciseItemDelegate{}, 0, 0)
	l.Title = "Упражнения"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle

	// Освобождаем клавиши, занятые действиями экрана тренировки
	l.KeyMap.NextPage.SetKeys("right", "pgdown")
	l.KeyMap.PrevPage.SetKeys("left", "pgup")
	l.KeyMap.GoToStart.SetKeys("home")
	l.KeyMap.GoToEnd.SetKeys("end")
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	m := &Model{
		list:   l,
		source: source,
		keys:   DefaultKeyMap(),
	}
	m.Refresh()
	m.Focus(source.Selected())
	return m
}

// Keys возвращает клавиши списка
func (m *Model) Keys() KeyMap { return m.keys }

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Refresh перестраивает элементы по текущему состоянию источника.
// Курсор остается на том же упражнении, если оно есть в списке.
func (m *Model) Refresh() {
	current := m.Current()
	cursor := m.list.Index()

	exercises := m.source.Exercises()
	session := m.source.Session()
	playing := m.source.Playing()
	selected := m.source.Selected()

	items := make([]list.Item, len(exercises))
	for i, ex := range exercises {
		items[i] = exerciseItem{
			exercise:  ex,
			playing:   ex.Name == playing,
			completed: m.source.IsCompleted(ex.Name),
			selected:  ex.Name == selected,
			deletable: session.Editing() && (session.LongPressed() == "" || session.LongPressed() == ex.Name),
		}
	}
	m.list.SetItems(items)

	if i := data.IndexOf(exercises, current); current != "" && i >= 0 {
		cursor = i
	}
	m.list.Select(min(cursor, max(len(items)-1, 0)))
}

// Focus перемещает курсор на упражнение с указанным именем
func (m *Model) Focus(name string) {
	for i, item := range m.list.Items() {
		if ex, ok := item.(exerciseItem); ok && ex.exercise.Name == name {
			m.list.Select(i)
			return
		}
	}
}

// Current возвращает имя упражнения под курсором
func (m *Model) Current() string {
	item, ok := m.list.SelectedItem().(exerciseItem)
	if !ok {
		return ""
	}
	return item.exercise.Name
}

// SetSize задает размер списка
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	item, ok := m.list.SelectedItem().(exerciseItem)
	if !ok {
		return nil, false
	}
	name := item.exercise.Name
	editing := m.source.Session().Editing()

	switch {
	case key.Matches(msg, m.keys.Select):
		return send(SelectMsg{Name: name}), true

	case key.Matches(msg, m.keys.LongPress):
		return send(LongPressMsg{Name: name}), true

	case editing && key.Matches(msg, m.keys.Delete):
		if !item.deletable {
			return nil, true
		}
		return send(DeleteMsg{Name: name}), true

	case editing && key.Matches(msg, m.keys.Add):
		return send(AddMsg{}), true

	case editing && key.Matches(msg, m.keys.MoveUp):
		return send(MoveMsg{Name: name, Delta: -1}), true

	case editing && key.Matches(msg, m.keys.MoveDown):
		return send(MoveMsg{Name: name, Delta: 1}), true
	}
	return nil, false
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// View отображает модель
func (m *Model) View() string {
	if len(m.list.Items()) == 0 {
		return itemStyle.Render("Список пуст")
	}
	if m.list.Height() == 0 {
		// До получения размера окна показываем список без пагинации
		var b strings.Builder
		for i, item := range m.list.Items() {
			if ex, ok := item.(exerciseItem); ok {
				b.WriteString(renderItem(ex, i == m.list.Index()))
				b.WriteString("\n")
			}
		}
		return b.String()
	}
	return m.list.View()
}
