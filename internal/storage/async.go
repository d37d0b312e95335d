package storage

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hazadus/go-workout/internal/data"
)

// AsyncRepository сохраняет состояние в фоне, не блокируя вызывающего.
// Запись выполняет одна горутина; если она занята, в очереди остается
// только последний снимок состояния. Ошибки записи попадают в лог.
type AsyncRepository struct {
	repo    Repository
	log     *slog.Logger
	pending chan data.State
	done    chan struct{}

	mutex  sync.Mutex
	closed bool
}

// NewAsyncRepository запускает фоновую запись поверх repo
func NewAsyncRepository(repo Repository, log *slog.Logger) *AsyncRepository {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	a := &AsyncRepository{
		repo:    repo,
		log:     log,
		pending: make(chan data.State, 1),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

// Load читает состояние синхронно
func (a *AsyncRepository) Load(ctx context.Context) (data.State, error) {
	return a.repo.Load(ctx)
}

// Save ставит снимок в очередь записи и сразу возвращается
func (a *AsyncRepository) Save(_ context.Context, state data.State) error {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if a.closed {
		return ErrClosed
	}

	// Вытесняем устаревший снимок, который еще не успели записать
	select {
	case <-a.pending:
	default:
	}
	a.pending <- state
	return nil
}

// Close дожидается записи последнего снимка и останавливает горутину
func (a *AsyncRepository) Close() error {
	a.mutex.Lock()
	if a.closed {
		a.mutex.Unlock()
		return nil
	}
	a.closed = true
	close(a.pending)
	a.mutex.Unlock()

	<-a.done
	return nil
}

func (a *AsyncRepository) run() {
	defer close(a.done)

	for state := range a.pending {
		if err := a.repo.Save(context.Background(), state); err != nil {
			a.log.Error("ошибка сохранения состояния", "error", err)
			continue
		}
		a.log.Debug("состояние сохранено",
			"exercises", len(state.Exercises),
			"completed", len(state.Completed))
	}
}
