// Package data содержит модель упражнений тренировки и начальные данные
package data

import (
	"fmt"
)

// Equipment категория оборудования для упражнения
type Equipment string

// Известные категории оборудования
const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentCable      Equipment = "cable"
	EquipmentBodyweight Equipment = "bodyweight"
)

// Icon возвращает значок для категории оборудования.
// Гантели отображаются тем же значком, что и штанга.
func (e Equipment) Icon() string {
	switch e {
	case EquipmentBarbell, EquipmentDumbbell:
		return "🏋"
	case EquipmentCable:
		return "〰"
	default:
		return "🧍"
	}
}

// Label возвращает подпись оборудования для карточки упражнения
func (e Equipment) Label() string {
	if e == "" {
		return "N/A"
	}
	return string(e)
}

// Exercise описывает одно упражнение тренировки.
// Name служит идентификатором и предполагается уникальным.
// AssetURL указывает на статичное изображение, GifAssetURL на анимацию.
type Exercise struct {
	Name        string    `json:"name" yaml:"name"`
	AssetURL    string    `json:"asset_url" yaml:"asset_url"`
	GifAssetURL string    `json:"gif_asset_url" yaml:"gif_asset_url"`
	Equipment   Equipment `json:"equipment" yaml:"equipment"`
}

// State то, что хранится между запусками: список упражнений и выполненные упражнения
type State struct {
	Exercises []Exercise
	Completed []string
}

const assetBase = "https://jyfpzydnxyelsxofxcnz.supabase.co/storage/v1/object/public/exercise_gifs/1080/"

func seed(name, code string, equipment Equipment) Exercise {
	return Exercise{
		Name:        name,
		AssetURL:    assetBase + code + ".png",
		GifAssetURL: assetBase + code + ".gif",
		Equipment:   equipment,
	}
}

// DefaultPlaying упражнение, с которого начинается тренировка
const DefaultPlaying = "Pull Ups"

// DefaultExercises возвращает встроенный список упражнений
func DefaultExercises() []Exercise {
	return []Exercise{
		seed("Squat", "143513", EquipmentBarbell),
		seed("Inclined Bench Press", "031413", EquipmentBarbell),
		seed("Pull Ups", "142913", EquipmentBodyweight),
		seed("Shoulder Press", "040513", EquipmentDumbbell),
		seed("Curl Biceps", "016513", EquipmentCable),
		seed("Extension Triceps", "020013", EquipmentCable),
	}
}

// DefaultCompleted возвращает упражнения, выполненные по умолчанию
func DefaultCompleted() []string {
	return []string{"Squat", "Inclined Bench Press"}
}

// DefaultState возвращает состояние по умолчанию
func DefaultState() State {
	return State{
		Exercises: DefaultExercises(),
		Completed: DefaultCompleted(),
	}
}

// NewPlaceholder создает упражнение-заготовку с порядковым номером n.
// Уникальность имени не проверяется.
func NewPlaceholder(n int) Exercise {
	return seed(fmt.Sprintf("New Exercise %d", n), "143513", EquipmentBarbell)
}

// IndexOf возвращает индекс упражнения по имени или -1
func IndexOf(exercises []Exercise, name string) int {
	for i := range exercises {
		if exercises[i].Name == name {
			return i
		}
	}
	return -1
}

// ByName возвращает упражнение по имени
func ByName(exercises []Exercise, name string) (*Exercise, error) {
	i := IndexOf(exercises, name)
	if i < 0 {
		return nil, fmt.Errorf("упражнение %q не найдено", name)
	}
	return &exercises[i], nil
}

// Clone возвращает копию списка упражнений
func Clone(exercises []Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}
