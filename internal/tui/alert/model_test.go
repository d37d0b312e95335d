package alert

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestShowAndDismiss(t *testing.T) {
	m := New()
	if m.Visible() {
		t.Fatal("Сообщение не должно быть показано изначально")
	}
	if m.View() != "" {
		t.Error("Скрытое сообщение не должно отображаться")
	}

	m.Show("Удаление невозможно", "Должно остаться хотя бы одно упражнение")
	if !m.Visible() {
		t.Fatal("Сообщение должно быть показано")
	}
	if !strings.Contains(m.View(), "хотя бы одно упражнение") {
		t.Errorf("Текст сообщения отсутствует в отображении: %q", m.View())
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if m.Visible() {
		t.Error("Сообщение должно закрываться любой клавишей")
	}
	if cmd == nil {
		t.Fatal("Ожидалась команда DismissedMsg")
	}
	if _, ok := cmd().(DismissedMsg); !ok {
		t.Error("Ожидалось сообщение DismissedMsg")
	}
}

func TestHiddenIgnoresKeys(t *testing.T) {
	m := New()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Скрытое сообщение не должно возвращать команд")
	}
}
