package workout

import (
	"github.com/hazadus/go-workout/internal/data"
)

// Mode режим экрана тренировки
type Mode int

const (
	// ModeBrowsing просмотр и отметка прогресса
	ModeBrowsing Mode = iota
	// ModeEditing редактирование черновика списка
	ModeEditing
)

// String возвращает название режима
func (m Mode) String() string {
	switch m {
	case ModeBrowsing:
		return "browsing"
	case ModeEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// EditSession черновик списка упражнений.
// Все флаги редактирования меняются только методами сессии, поэтому
// недопустимые сочетания (например, dirty вне редактирования) невозможны.
type EditSession struct {
	mode        Mode
	draft       []data.Exercise
	dirty       bool
	longPressed string
}

func newEditSession(committed []data.Exercise) EditSession {
	return EditSession{mode: ModeBrowsing, draft: data.Clone(committed)}
}

// Mode возвращает текущий режим
func (s EditSession) Mode() Mode { return s.mode }

// Editing сообщает, открыт ли черновик
func (s EditSession) Editing() bool { return s.mode == ModeEditing }

// Dirty сообщает, есть ли несохраненные изменения
func (s EditSession) Dirty() bool { return s.dirty }

// LongPressed возвращает упражнение, выбранное долгим нажатием, или пустую строку
func (s EditSession) LongPressed() string { return s.longPressed }

func (s *EditSession) enter(longPressed string) {
	s.mode = ModeEditing
	if longPressed != "" {
		s.longPressed = longPressed
	}
}

func (s *EditSession) replace(exercises []data.Exercise) {
	s.draft = exercises
	s.dirty = true
	s.longPressed = ""
}

func (s *EditSession) clearLongPress() {
	s.longPressed = ""
}

// reset возвращает сессию в режим просмотра с черновиком, равным committed
func (s *EditSession) reset(committed []data.Exercise) {
	*s = newEditSession(committed)
}
