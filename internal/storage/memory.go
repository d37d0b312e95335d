package storage

import (
	"context"
	"sync"
)

// MemoryStore хранилище в памяти, используется в тестах и для режима без сохранения.
// FailGet и FailSet позволяют сымитировать сбой хранилища.
type MemoryStore struct {
	mutex   sync.Mutex
	values  map[string][]byte
	writes  int
	FailGet error
	FailSet error
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// Get возвращает копию значения ключа
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.FailGet != nil {
		return nil, false, s.FailGet
	}
	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

// Set сохраняет копию значения ключа
func (s *MemoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.FailSet != nil {
		return s.FailSet
	}
	s.values[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Writes возвращает количество успешных записей
func (s *MemoryStore) Writes() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.writes
}

// Close ничего не делает
func (s *MemoryStore) Close() error {
	return nil
}
