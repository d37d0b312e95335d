package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hazadus/go-workout/internal/data"
)

// Ключи хранилища
const (
	KeyExercises = "exercises"
	KeyCompleted = "completedExercises"
)

// ErrEmptyList возвращается, если в хранилище записан пустой список упражнений
var ErrEmptyList = errors.New("сохраненный список упражнений пуст")

// Repository загружает и сохраняет состояние тренировки
type Repository interface {
	Load(ctx context.Context) (data.State, error)
	Save(ctx context.Context, state data.State) error
}

// KVRepository хранит состояние в двух ключах хранилища в формате JSON
type KVRepository struct {
	store KeyValueStore
}

// NewRepository создает репозиторий поверх хранилища ключ-значение
func NewRepository(store KeyValueStore) *KVRepository {
	return &KVRepository{store: store}
}

// Load читает состояние. Отсутствующий ключ заменяется значением по умолчанию.
// При ошибке в ключе упражнений возвращается состояние по умолчанию вместе с ошибкой.
// Ошибка в ключе выполненных упражнений не отменяет уже прочитанный список:
// по умолчанию заменяются только выполненные упражнения.
func (r *KVRepository) Load(ctx context.Context) (data.State, error) {
	state := data.DefaultState()

	rawExercises, ok, err := r.store.Get(ctx, KeyExercises)
	if err != nil {
		return data.DefaultState(), fmt.Errorf("ошибка чтения упражнений: %w", err)
	}
	if ok {
		var exercises []data.Exercise
		if err := json.Unmarshal(rawExercises, &exercises); err != nil {
			return data.DefaultState(), fmt.Errorf("ошибка разбора упражнений: %w", err)
		}
		if len(exercises) == 0 {
			return data.DefaultState(), ErrEmptyList
		}
		state.Exercises = exercises
	}

	rawCompleted, ok, err := r.store.Get(ctx, KeyCompleted)
	if err != nil {
		return state, fmt.Errorf("ошибка чтения выполненных упражнений: %w", err)
	}
	if ok {
		var completed []string
		if err := json.Unmarshal(rawCompleted, &completed); err != nil {
			return state, fmt.Errorf("ошибка разбора выполненных упражнений: %w", err)
		}
		state.Completed = completed
	}

	return state, nil
}

// Save записывает список упражнений и выполненные упражнения
func (r *KVRepository) Save(ctx context.Context, state data.State) error {
	exercises := state.Exercises
	if exercises == nil {
		exercises = []data.Exercise{}
	}
	completed := state.Completed
	if completed == nil {
		completed = []string{}
	}

	rawExercises, err := json.Marshal(exercises)
	if err != nil {
		return fmt.Errorf("ошибка сериализации упражнений: %w", err)
	}
	rawCompleted, err := json.Marshal(completed)
	if err != nil {
		return fmt.Errorf("ошибка сериализации выполненных упражнений: %w", err)
	}

	if err := r.store.Set(ctx, KeyExercises, rawExercises); err != nil {
		return fmt.Errorf("ошибка сохранения упражнений: %w", err)
	}
	if err := r.store.Set(ctx, KeyCompleted, rawCompleted); err != nil {
		return fmt.Errorf("ошибка сохранения выполненных упражнений: %w", err)
	}
	return nil
}
