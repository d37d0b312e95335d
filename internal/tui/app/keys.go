package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/hazadus/go-workout/internal/tui/editor"
	"github.com/hazadus/go-workout/internal/tui/exerciselist"
)

// KeyMap глобальные клавиши экрана тренировки
type KeyMap struct {
	Edit      key.Binding
	ToggleGif key.Binding
	Pause     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap возвращает клавиши по умолчанию
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "редактировать"),
		),
		ToggleGif: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "gif"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "пауза"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "выход"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// helpKeys собирает подсказки для текущего режима
type helpKeys struct {
	global  KeyMap
	list    exerciselist.KeyMap
	editor  editor.KeyMap
	editing bool
}

func (h helpKeys) ShortHelp() []key.Binding {
	if h.editing {
		return []key.Binding{
			h.list.Select, h.list.Delete, h.list.Add, h.list.MoveUp, h.list.MoveDown,
			h.editor.Save, h.editor.Discard, h.editor.Focus,
		}
	}
	return []key.Binding{
		h.list.Select, h.list.LongPress, h.global.Edit,
		h.global.ToggleGif, h.global.Pause, h.global.Quit,
	}
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
