// Package storage содержит локальное хранилище ключ-значение и репозиторий состояния тренировки
package storage

import (
	"context"
	"errors"
	"fmt"
)

// Поддерживаемые хранилища
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrClosed возвращается при обращении к закрытому хранилищу
var ErrClosed = errors.New("хранилище закрыто")

// KeyValueStore локальное хранилище ключ-значение
type KeyValueStore interface {
	// Get возвращает значение ключа; ok == false, если ключ не записан
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set записывает значение ключа
	Set(ctx context.Context, key string, value []byte) error
	// Close освобождает ресурсы хранилища
	Close() error
}

// Open открывает хранилище указанного типа по пути path
func Open(ctx context.Context, backend, path string) (KeyValueStore, error) {
	switch backend {
	case BackendFile, "":
		return NewFileStore(path), nil
	case BackendSQLite:
		return OpenSQLiteStore(ctx, path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("неизвестный тип хранилища: %s", backend)
	}
}
