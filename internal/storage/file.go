package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-workout/internal/utils"
)

// FileStore хранит ключи в YAML файле.
// Значения записываются строками, как есть.
type FileStore struct {
	path   string
	mutex  sync.Mutex
	closed bool
}

// NewFileStore создает файловое хранилище; тильда в пути раскрывается
func NewFileStore(filePath string) *FileStore {
	return &FileStore{path: utils.ExpandHome(filePath)}
}

// Path возвращает путь к файлу данных
func (s *FileStore) Path() string {
	return s.path
}

// Get читает значение ключа из файла
func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return nil, false, ErrClosed
	}

	values, err := s.read()
	if err != nil {
		return nil, false, err
	}
	value, ok := values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(value), true, nil
}

// Set записывает значение ключа, сохраняя остальные ключи файла
func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.closed {
		return ErrClosed
	}

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = string(value)

	raw, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("ошибка сериализации данных: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ошибка создания каталога данных: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("ошибка записи файла данных: %w", err)
	}
	return nil
}

// Close помечает хранилище закрытым
func (s *FileStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.closed = true
	return nil
}

func (s *FileStore) read() (map[string]string, error) {
	values := make(map[string]string)

	raw, err := os.ReadFile(s.path)
	if err != nil {
		// Если файл не найден, хранилище считается пустым
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, fmt.Errorf("ошибка чтения файла данных: %w", err)
	}
	if len(raw) == 0 {
		return values, nil
	}
	if err := yaml.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("ошибка разбора данных: %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}
