// Package workout содержит логику прохождения тренировки: выбор текущего упражнения,
// отметку выполненных упражнений и редактирование списка через черновик.
//
// Все методы Workout вызываются последовательно из одного цикла обработки событий
// и не защищены мьютексом. Сохранение выполняется через storage.Repository;
// ошибки сохранения пишутся в журнал и не возвращаются вызывающему.
package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hazadus/go-workout/internal/data"
	"github.com/hazadus/go-workout/internal/storage"
)

// Ошибки операций редактирования
var (
	ErrLastExercise     = errors.New("в списке должно остаться хотя бы одно упражнение")
	ErrExerciseNotFound = errors.New("упражнение не найдено")
	ErrNotEditing       = errors.New("режим редактирования не включен")
	ErrInvalidOrder     = errors.New("новый порядок не совпадает с текущим списком")
)

// ProgressionRule определяет, какой выбор упражнения двигает прогресс
type ProgressionRule int

const (
	// RuleRewind: прогресс переносится на упражнения не дальше текущего
	RuleRewind ProgressionRule = iota
	// RuleAdvance: прогресс переносится на упражнения не раньше текущего
	RuleAdvance
)

// ParseRule разбирает название правила из конфигурации
func ParseRule(name string) (ProgressionRule, error) {
	switch name {
	case "", "rewind":
		return RuleRewind, nil
	case "advance":
		return RuleAdvance, nil
	default:
		return RuleRewind, fmt.Errorf("неизвестное правило прогресса: %s", name)
	}
}

func (r ProgressionRule) advances(target, playing int) bool {
	if r == RuleAdvance {
		return target >= playing
	}
	return target <= playing
}

// SelectResult результат выбора упражнения
type SelectResult int

const (
	// SelectIgnored выбор отклонен, состояние не изменилось
	SelectIgnored SelectResult = iota
	// SelectPreview изменилось только выбранное упражнение
	SelectPreview
	// SelectAdvanced упражнение стало текущим, прогресс сохранен
	SelectAdvanced
)

// Option настраивает Workout
type Option func(*Workout)

// WithLogger задает журнал
func WithLogger(log *slog.Logger) Option {
	return func(w *Workout) {
		if log != nil {
			w.log = log
		}
	}
}

// WithRule задает правило продвижения прогресса
func WithRule(rule ProgressionRule) Option {
	return func(w *Workout) {
		w.rule = rule
	}
}

// Workout состояние экрана тренировки
type Workout struct {
	committed []data.Exercise
	session   EditSession
	completed *data.CompletedSet
	selected  string
	playing   string
	rule      ProgressionRule
	repo      storage.Repository
	log       *slog.Logger
}

// New создает тренировку из загруженного состояния.
// Текущим становится упражнение по умолчанию, а если его нет в списке, то первое.
func New(state data.State, repo storage.Repository, opts ...Option) *Workout {
	exercises := state.Exercises
	if len(exercises) == 0 {
		exercises = data.DefaultExercises()
	}

	w := &Workout{
		committed: data.Clone(exercises),
		completed: data.NewCompletedSet(state.Completed),
		repo:      repo,
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.session = newEditSession(w.committed)

	w.playing = data.DefaultPlaying
	w.anchor()
	w.selected = w.playing

	return w
}

// anchor возвращает текущее и выбранное упражнения в рабочий список,
// если их там нет: текущим становится первое упражнение.
func (w *Workout) anchor() {
	list := w.session.draft
	if data.IndexOf(list, w.playing) < 0 {
		w.playing = list[0].Name
	}
	if data.IndexOf(list, w.selected) < 0 {
		w.selected = w.playing
	}
	w.completed.Remove(w.playing)
}

// Load читает состояние из репозитория. Ошибка чтения не фатальна:
// она пишется в журнал, а тренировка начинается с данных по умолчанию.
func Load(ctx context.Context, repo storage.Repository, opts ...Option) *Workout {
	state, err := repo.Load(ctx)
	w := New(state, repo, opts...)
	if err != nil {
		w.log.Warn("не удалось загрузить сохраненные данные, используются значения по умолчанию", "error", err)
	}
	return w
}

// Exercises возвращает рабочий список упражнений (черновик во время редактирования)
func (w *Workout) Exercises() []data.Exercise {
	return data.Clone(w.session.draft)
}

// Committed возвращает последний сохраненный список упражнений
func (w *Workout) Committed() []data.Exercise {
	return data.Clone(w.committed)
}

// Selected возвращает упражнение, показанное в карточке
func (w *Workout) Selected() string { return w.selected }

// Playing возвращает текущее упражнение
func (w *Workout) Playing() string { return w.playing }

// Session возвращает копию сессии редактирования
func (w *Workout) Session() EditSession { return w.session }

// Rule возвращает правило продвижения прогресса
func (w *Workout) Rule() ProgressionRule { return w.rule }

// IsCompleted сообщает, выполнено ли упражнение
func (w *Workout) IsCompleted(name string) bool { return w.completed.Has(name) }

// Completed возвращает выполненные упражнения в порядке отметки
func (w *Workout) Completed() []string { return w.completed.Names() }

// SelectedExercise возвращает выбранное упражнение из рабочего списка
func (w *Workout) SelectedExercise() (data.Exercise, bool) {
	i := data.IndexOf(w.session.draft, w.selected)
	if i < 0 {
		return data.Exercise{}, false
	}
	return w.session.draft[i], true
}

// Progress возвращает число выполненных упражнений рабочего списка и его длину
func (w *Workout) Progress() (done, total int) {
	for _, ex := range w.session.draft {
		if w.completed.Has(ex.Name) {
			done++
		}
	}
	return done, len(w.session.draft)
}

// State возвращает снимок для сохранения: сохраненный список и выполненные упражнения
func (w *Workout) State() data.State {
	return data.State{
		Exercises: data.Clone(w.committed),
		Completed: w.completed.Names(),
	}
}

// SelectExercise обрабатывает выбор упражнения.
// Выбор упражнения на месте текущего (по правилу прогресса) делает его текущим,
// отмечает все предыдущие упражнения выполненными и сохраняет прогресс.
// Иначе меняется только упражнение в карточке.
func (w *Workout) SelectExercise(ctx context.Context, name string) SelectResult {
	if w.session.longPressed != "" {
		return SelectIgnored
	}

	target := data.IndexOf(w.session.draft, name)
	if target < 0 {
		w.log.Debug("выбрано неизвестное упражнение", "exercise", name)
		return SelectIgnored
	}

	w.selected = name
	// Текущее упражнение вне списка не должно блокировать прогресс
	playing := data.IndexOf(w.session.draft, w.playing)
	if playing >= 0 && !w.rule.advances(target, playing) {
		return SelectPreview
	}

	w.playing = name
	for _, ex := range w.session.draft[:target] {
		w.completed.Add(ex.Name)
	}
	w.completed.Remove(name)

	w.log.Info("текущее упражнение изменено", "exercise", name, "completed", w.completed.Len())
	w.persist(ctx)
	return SelectAdvanced
}

func (w *Workout) persist(ctx context.Context) {
	if w.repo == nil {
		return
	}
	if err := w.repo.Save(ctx, w.State()); err != nil {
		w.log.Error("ошибка сохранения состояния", "error", err)
	}
}
