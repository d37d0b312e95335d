package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-workout/internal/data"
	"github.com/hazadus/go-workout/internal/storage"
	"github.com/hazadus/go-workout/internal/tui/alert"
	"github.com/hazadus/go-workout/internal/tui/editor"
	"github.com/hazadus/go-workout/internal/tui/exerciselist"
	"github.com/hazadus/go-workout/internal/workout"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, state data.State) (*MainModel, *workout.Workout, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	w := workout.New(state, storage.NewRepository(store))
	return NewMainModel(context.Background(), w, "Chris' Full Body 1"), w, store
}

// update передает сообщение модели и выполняет возвращенную команду, если она порождает сообщение
// одного из типов, которые обрабатывает главная модель
func update(t *testing.T, m *MainModel, msg tea.Msg) *MainModel {
	t.Helper()

	updated, cmd := m.Update(msg)
	model := updated.(*MainModel)
	if cmd == nil {
		return model
	}

	switch next := cmd().(type) {
	case exerciselist.SelectMsg, exerciselist.LongPressMsg, exerciselist.DeleteMsg,
		exerciselist.AddMsg, exerciselist.MoveMsg, editor.SaveMsg, editor.DiscardMsg:
		return update(t, model, next)
	}
	return model
}

func TestMainModelInitialState(t *testing.T) {
	model, w, _ := newTestModel(t, data.DefaultState())

	if model.list == nil || model.detail == nil || model.editor == nil {
		t.Fatal("Expected components to be initialized")
	}
	if model.list.Current() != w.Selected() {
		t.Errorf("Курсор должен стоять на выбранном упражнении, получено %s", model.list.Current())
	}

	view := model.View()
	for _, want := range []string{"Chris' Full Body 1", "Pull Ups"} {
		if !strings.Contains(view, want) {
			t.Errorf("Ожидалось %q в отображении", want)
		}
	}
}

func TestMainModelSelectRoutesToWorkout(t *testing.T) {
	model, w, store := newTestModel(t, data.DefaultState())

	// Курсор на Pull Ups, поднимаемся к Inclined Bench Press
	model = update(t, model, tea.KeyMsg{Type: tea.KeyUp})
	model = update(t, model, tea.KeyMsg{Type: tea.KeyEnter})

	if w.Playing() != "Inclined Bench Press" {
		t.Errorf("Ожидалось текущее Inclined Bench Press, получено %s", w.Playing())
	}
	if store.Writes() == 0 {
		t.Error("Прогресс должен быть сохранен")
	}
}

func TestMainModelDeleteLastShowsAlert(t *testing.T) {
	model, w, _ := newTestModel(t, data.State{Exercises: data.DefaultExercises()[:1]})

	model = update(t, model, runes("l"))
	if !w.Session().Editing() || w.Session().LongPressed() != "Squat" {
		t.Fatalf("Долгое нажатие должно включать редактирование: %+v", w.Session())
	}

	model = update(t, model, runes("x"))
	if !model.alert.Visible() {
		t.Fatal("Ожидалось сообщение о невозможности удаления")
	}
	if len(w.Exercises()) != 1 {
		t.Errorf("Список не должен меняться, получено %d", len(w.Exercises()))
	}
	if !strings.Contains(model.View(), "хотя бы одно упражнение") {
		t.Error("Сообщение должно отображаться поверх экрана")
	}

	// Любая клавиша закрывает сообщение и больше ничего не делает
	model = update(t, model, runes("a"))
	if model.alert.Visible() {
		t.Error("Сообщение должно закрываться любой клавишей")
	}
	if len(w.Exercises()) != 1 {
		t.Error("Клавиша закрытия сообщения не должна добавлять упражнение")
	}
}

func TestMainModelEditAndSave(t *testing.T) {
	model, w, store := newTestModel(t, data.DefaultState())

	model = update(t, model, runes("e"))
	if !w.Session().Editing() {
		t.Fatal("Ожидался режим редактирования")
	}

	// Сохранение недоступно без изменений
	model = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !w.Session().Editing() {
		t.Fatal("Сохранение без изменений не должно выходить из редактирования")
	}

	model = update(t, model, runes("a"))
	if len(w.Exercises()) != 7 || !w.Session().Dirty() {
		t.Fatalf("Ожидалось добавленное упражнение, получено %d", len(w.Exercises()))
	}
	if model.list.Current() != "New Exercise 7" {
		t.Errorf("Курсор должен перейти на новое упражнение, получено %s", model.list.Current())
	}

	model = update(t, model, runes("K"))
	if w.Exercises()[5].Name != "New Exercise 7" {
		t.Errorf("Ожидалось перемещение вверх, получено %v", w.Exercises()[5].Name)
	}

	writes := store.Writes()
	model = update(t, model, tea.KeyMsg{Type: tea.KeyCtrlS})
	if w.Session().Editing() {
		t.Error("Ожидался выход из редактирования после сохранения")
	}
	if len(w.Committed()) != 7 {
		t.Errorf("Ожидалось 7 сохраненных упражнений, получено %d", len(w.Committed()))
	}
	if store.Writes() == writes {
		t.Error("Изменения должны быть записаны в хранилище")
	}
	if strings.Contains(model.View(), "Save Changes") {
		t.Error("Панель редактирования не должна отображаться после сохранения")
	}
}

func TestMainModelDiscard(t *testing.T) {
	model, w, _ := newTestModel(t, data.DefaultState())
	before := w.Exercises()

	model = update(t, model, runes("e"))
	model = update(t, model, runes("x"))
	if len(w.Exercises()) != len(before)-1 {
		t.Fatalf("Ожидалось удаление упражнения")
	}

	update(t, model, tea.KeyMsg{Type: tea.KeyEsc})
	if w.Session().Editing() {
		t.Error("Ожидался выход из редактирования")
	}
	if len(w.Exercises()) != len(before) {
		t.Errorf("Ожидался исходный список, получено %d", len(w.Exercises()))
	}
}

func TestMainModelGlobalKeys(t *testing.T) {
	model, _, _ := newTestModel(t, data.DefaultState())

	model = update(t, model, runes("g"))
	if !model.detail.ShowGif() {
		t.Error("Ожидалось переключение на анимацию")
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected tea.Quit command after Ctrl+C")
	}
}

func TestMainModelAlertDismissedMsg(t *testing.T) {
	model, _, _ := newTestModel(t, data.DefaultState())

	_, cmd := model.Update(alert.DismissedMsg{})
	if cmd != nil {
		t.Error("DismissedMsg не должен порождать команд")
	}
}
