package workout

import (
	"context"

	"github.com/hazadus/go-workout/internal/data"
)

// EnterEdit включает режим редактирования.
// Непустое имя отмечает упражнение, выбранное долгим нажатием: у него
// показывается кнопка удаления, а выбор упражнений блокируется.
func (w *Workout) EnterEdit(longPressed string) error {
	if longPressed != "" && data.IndexOf(w.session.draft, longPressed) < 0 {
		return ErrExerciseNotFound
	}
	w.session.enter(longPressed)
	return nil
}

// Reorder заменяет порядок рабочего списка.
// newOrder должен быть перестановкой текущего рабочего списка.
func (w *Workout) Reorder(newOrder []data.Exercise) error {
	if !w.session.Editing() {
		return ErrNotEditing
	}
	if !samePermutation(w.session.draft, newOrder) {
		return ErrInvalidOrder
	}
	w.session.replace(data.Clone(newOrder))
	return nil
}

// Move сдвигает упражнение на delta позиций; выход за границы списка обрезается
func (w *Workout) Move(name string, delta int) error {
	if !w.session.Editing() {
		return ErrNotEditing
	}

	from := data.IndexOf(w.session.draft, name)
	if from < 0 {
		return ErrExerciseNotFound
	}
	to := min(max(from+delta, 0), len(w.session.draft)-1)
	if to == from {
		return nil
	}

	order := data.Clone(w.session.draft)
	moved := order[from]
	order = append(order[:from], order[from+1:]...)
	order = append(order[:to], append([]data.Exercise{moved}, order[to:]...)...)
	return w.Reorder(order)
}

// Delete удаляет упражнение из черновика и из выполненных.
// Последнее упражнение удалить нельзя. Если удаляется текущее упражнение,
// текущим становится упражнение на той же позиции, предыдущее для последнего
// элемента или первое, если позиция вышла за пределы списка.
func (w *Workout) Delete(name string) error {
	if !w.session.Editing() {
		return ErrNotEditing
	}

	draft := w.session.draft
	if len(draft) <= 1 {
		w.session.clearLongPress()
		return ErrLastExercise
	}

	index := data.IndexOf(draft, name)
	if index < 0 {
		w.session.clearLongPress()
		return ErrExerciseNotFound
	}

	// Имена могут повторяться, удаляются все совпадения
	updated := make([]data.Exercise, 0, len(draft)-1)
	for _, ex := range draft {
		if ex.Name != name {
			updated = append(updated, ex)
		}
	}
	if len(updated) == 0 {
		w.session.clearLongPress()
		return ErrLastExercise
	}

	w.completed.Remove(name)

	if name == w.playing {
		next := index
		if next == len(updated) {
			next--
		}
		nextPlaying := updated[0].Name
		if next >= 0 && next < len(updated) {
			nextPlaying = updated[next].Name
		}
		w.playing = nextPlaying
		w.selected = nextPlaying
	}

	w.session.replace(updated)
	w.log.Debug("упражнение удалено из черновика", "exercise", name, "playing", w.playing)
	return nil
}

// Add добавляет в конец черновика упражнение-заготовку "New Exercise N".
// Совпадение имени с существующим упражнением не проверяется.
func (w *Workout) Add() (data.Exercise, error) {
	if !w.session.Editing() {
		return data.Exercise{}, ErrNotEditing
	}

	ex := data.NewPlaceholder(len(w.session.draft) + 1)
	w.session.draft = append(data.Clone(w.session.draft), ex)
	w.session.dirty = true
	return ex, nil
}

// Commit сохраняет черновик как основной список и выходит из редактирования
func (w *Workout) Commit(ctx context.Context) error {
	if !w.session.Editing() {
		return ErrNotEditing
	}

	w.committed = data.Clone(w.session.draft)
	w.session.reset(w.committed)
	w.log.Info("изменения списка сохранены", "exercises", len(w.committed))
	w.persist(ctx)
	return nil
}

// Discard восстанавливает черновик из основного списка и выходит из редактирования.
// Если текущим стало упражнение, которого нет в основном списке, текущим становится первое.
func (w *Workout) Discard() {
	w.session.reset(w.committed)
	w.anchor()
}

// samePermutation проверяет, что b содержит те же упражнения, что и a
func samePermutation(a, b []data.Exercise) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[data.Exercise]int, len(a))
	for _, ex := range a {
		counts[ex]++
	}
	for _, ex := range b {
		if counts[ex] == 0 {
			return false
		}
		counts[ex]--
	}
	return true
}
