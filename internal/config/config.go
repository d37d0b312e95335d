// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/hazadus/go-workout/internal/storage"
	"github.com/hazadus/go-workout/internal/utils"
)

// Правила продвижения по тренировке
const (
	ProgressionRewind  = "rewind"
	ProgressionAdvance = "advance"
)

// EnvPrefix префикс переменных окружения, например WORKOUT_STORAGE_BACKEND
const EnvPrefix = "WORKOUT"

// Config структура для хранения конфигурации приложения
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Workout WorkoutConfig `mapstructure:"workout"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig настройки локального хранилища
type StorageConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// WorkoutConfig настройки экрана тренировки
type WorkoutConfig struct {
	Title       string `mapstructure:"title"`
	Progression string `mapstructure:"progression"`
}

// LogConfig настройки журнала
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// defaultPaths пути хранилища по умолчанию для каждого типа
var defaultPaths = map[string]string{
	storage.BackendFile:   "~/.workout/data.yaml",
	storage.BackendSQLite: "~/.workout/data.db",
	storage.BackendMemory: "",
}

// LoadConfig загружает конфигурацию из YAML файла и переменных окружения.
// Отсутствующий файл не считается ошибкой: используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.backend", storage.BackendFile)
	v.SetDefault("storage.path", "")
	v.SetDefault("workout.title", "Chris' Full Body 1")
	v.SetDefault("workout.progression", ProgressionRewind)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "~/.workout/workout.log")

	v.SetConfigType("yaml")
	v.SetConfigFile(utils.ExpandHome(filePath))

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("ошибка чтения конфигурации yaml: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Путь хранилища по умолчанию зависит от его типа
	if config.Storage.Path == "" {
		config.Storage.Path = defaultPaths[config.Storage.Backend]
	}

	// Раскрываем тильду в путях
	config.Storage.Path = utils.ExpandHome(config.Storage.Path)
	config.Log.File = utils.ExpandHome(config.Log.File)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("ошибка проверки конфигурации: %w", err)
	}

	return config, nil
}

// Validate проверяет допустимость значений
func (c *Config) Validate() error {
	if _, ok := defaultPaths[c.Storage.Backend]; !ok {
		return fmt.Errorf("storage.backend: неизвестное хранилище %q", c.Storage.Backend)
	}
	switch c.Workout.Progression {
	case ProgressionRewind, ProgressionAdvance:
	default:
		return fmt.Errorf("workout.progression: неизвестное правило %q", c.Workout.Progression)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel переводит уровень журнала в slog.Level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: неизвестный уровень %q", l.Level)
	}
	return level, nil
}
