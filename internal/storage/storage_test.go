package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hazadus/go-workout/internal/data"
)

func sampleState() data.State {
	exercises := data.DefaultExercises()[:4]
	exercises[0], exercises[3] = exercises[3], exercises[0]
	return data.State{
		Exercises: exercises,
		Completed: []string{"Shoulder Press", "Inclined Bench Press"},
	}
}

// storeFactories перечисляет все реализации хранилища для общих тестов
func storeFactories(t *testing.T) map[string]func() KeyValueStore {
	return map[string]func() KeyValueStore{
		BackendMemory: func() KeyValueStore { return NewMemoryStore() },
		BackendFile: func() KeyValueStore {
			return NewFileStore(filepath.Join(t.TempDir(), "nested", "data.yaml"))
		},
		BackendSQLite: func() KeyValueStore {
			store, err := OpenSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "data.db"))
			require.NoError(t, err)
			return store
		},
	}
}

func TestKeyValueStores(t *testing.T) {
	ctx := context.Background()

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory()
			defer store.Close()

			_, ok, err := store.Get(ctx, "missing")
			require.NoError(t, err)
			require.False(t, ok)

			require.NoError(t, store.Set(ctx, "a", []byte(`["x"]`)))
			require.NoError(t, store.Set(ctx, "b", []byte(`2`)))
			require.NoError(t, store.Set(ctx, "a", []byte(`["y"]`)))

			value, ok, err := store.Get(ctx, "a")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `["y"]`, string(value))

			value, ok, err = store.Get(ctx, "b")
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, `2`, string(value))
		})
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory()
			defer store.Close()
			repo := NewRepository(store)

			state := sampleState()
			require.NoError(t, repo.Save(ctx, state))

			loaded, err := repo.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, state.Exercises, loaded.Exercises)
			require.Equal(t, state.Completed, loaded.Completed)
		})
	}
}

func TestRepositoryLoadDefaults(t *testing.T) {
	repo := NewRepository(NewMemoryStore())

	state, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, data.DefaultExercises(), state.Exercises)
	require.Equal(t, data.DefaultCompleted(), state.Completed)
}

func TestRepositoryLoadPartialKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyCompleted, []byte(`["Squat"]`)))

	state, err := NewRepository(store).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, data.DefaultExercises(), state.Exercises)
	require.Equal(t, []string{"Squat"}, state.Completed)
}

func TestRepositoryLoadErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*MemoryStore)
		check func(*testing.T, error)
	}{
		{
			name: "битый JSON упражнений",
			setup: func(s *MemoryStore) {
				_ = s.Set(ctx, KeyExercises, []byte(`{not json`))
			},
		},
		{
			name: "пустой список",
			setup: func(s *MemoryStore) {
				_ = s.Set(ctx, KeyExercises, []byte(`[]`))
			},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, ErrEmptyList)
			},
		},
		{
			name: "сбой чтения",
			setup: func(s *MemoryStore) {
				s.FailGet = errors.New("disk error")
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := NewMemoryStore()
			test.setup(store)

			state, err := NewRepository(store).Load(ctx)
			require.Error(t, err)
			if test.check != nil {
				test.check(t, err)
			}
			// При ошибке в списке упражнений возвращается состояние по умолчанию целиком
			require.Equal(t, data.DefaultState(), state)
		})
	}
}

func TestRepositorySaveError(t *testing.T) {
	store := NewMemoryStore()
	store.FailSet = errors.New("read-only")

	err := NewRepository(store).Save(context.Background(), sampleState())
	require.Error(t, err)
	require.ErrorIs(t, err, store.FailSet)
}

func TestRepositorySaveNilSlices(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, NewRepository(store).Save(ctx, data.State{Exercises: data.DefaultExercises()}))

	raw, ok, err := store.Get(ctx, KeyCompleted)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `[]`, string(raw))
}

func TestFileStoreInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exercises: [unclosed\n"), 0o644))

	_, _, err := NewFileStore(path).Get(context.Background(), KeyExercises)
	require.Error(t, err)
}

func TestFileStoreEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, ok, err := NewFileStore(path).Get(context.Background(), KeyExercises)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFileStoreClosed(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "data.yaml"))
	require.NoError(t, store.Close())
	require.ErrorIs(t, store.Set(context.Background(), "a", []byte("1")), ErrClosed)
}

func TestSQLiteStoreReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.db")

	store, err := OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, NewRepository(store).Save(ctx, sampleState()))
	require.NoError(t, store.Close())

	// Повторное открытие не должно заново применять миграции
	store, err = OpenSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer store.Close()

	state, err := NewRepository(store).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, sampleState(), state)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "redis", "")
	require.Error(t, err)
}

// recordingRepository запоминает сохраненные снимки
type recordingRepository struct {
	mutex sync.Mutex
	saved []data.State
	block chan struct{}
	err   error
}

func (r *recordingRepository) Load(context.Context) (data.State, error) {
	return data.DefaultState(), nil
}

func (r *recordingRepository) Save(_ context.Context, state data.State) error {
	if r.block != nil {
		<-r.block
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.saved = append(r.saved, state)
	return r.err
}

func (r *recordingRepository) snapshots() []data.State {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return append([]data.State(nil), r.saved...)
}

func TestAsyncRepositoryFlushesOnClose(t *testing.T) {
	inner := &recordingRepository{}
	async := NewAsyncRepository(inner, nil)

	state := sampleState()
	require.NoError(t, async.Save(context.Background(), state))
	require.NoError(t, async.Close())

	saved := inner.snapshots()
	require.NotEmpty(t, saved)
	require.Equal(t, state, saved[len(saved)-1])

	require.ErrorIs(t, async.Save(context.Background(), state), ErrClosed)
	require.NoError(t, async.Close())
}

func TestAsyncRepositoryKeepsLatestSnapshot(t *testing.T) {
	inner := &recordingRepository{block: make(chan struct{})}
	async := NewAsyncRepository(inner, nil)
	ctx := context.Background()

	first := data.State{Exercises: data.DefaultExercises(), Completed: []string{"Squat"}}
	require.NoError(t, async.Save(ctx, first))

	// Ждем, пока горутина заберет первый снимок и заблокируется на записи
	require.Eventually(t, func() bool { return len(async.pending) == 0 }, time.Second, time.Millisecond)

	for i := 0; i < 5; i++ {
		latest := data.State{Exercises: data.DefaultExercises(), Completed: []string{"Squat", "Pull Ups"}[:i%2+1]}
		require.NoError(t, async.Save(ctx, latest))
	}
	final := data.State{Exercises: data.DefaultExercises(), Completed: []string{"Curl Biceps"}}
	require.NoError(t, async.Save(ctx, final))

	close(inner.block)
	require.NoError(t, async.Close())

	saved := inner.snapshots()
	require.Len(t, saved, 2)
	require.Equal(t, first, saved[0])
	require.Equal(t, final, saved[1])
}

func TestAsyncRepositorySwallowsErrors(t *testing.T) {
	inner := &recordingRepository{err: errors.New("disk full")}
	async := NewAsyncRepository(inner, nil)

	require.NoError(t, async.Save(context.Background(), sampleState()))
	require.NoError(t, async.Close())
	require.Len(t, inner.snapshots(), 1)
}

func TestRepositoryLoadKeepsExercisesOnBrokenCompleted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	mine := []data.Exercise{
		{Name: "Mine1", Equipment: data.EquipmentDumbbell},
		{Name: "Mine2", Equipment: data.EquipmentCable},
	}
	raw, err := json.Marshal(mine)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeyExercises, raw))
	require.NoError(t, store.Set(ctx, KeyCompleted, []byte(`{broken`)))

	state, err := NewRepository(store).Load(ctx)
	require.Error(t, err)
	require.Equal(t, mine, state.Exercises)
	require.Equal(t, data.DefaultCompleted(), state.Completed)

	// Без сохраненного списка битые выполненные упражнения дают значения по умолчанию
	store = NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyCompleted, []byte(`"Squat"`)))

	state, err = NewRepository(store).Load(ctx)
	require.Error(t, err)
	require.Equal(t, data.DefaultState(), state)
}
