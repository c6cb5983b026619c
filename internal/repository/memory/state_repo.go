package memory

import (
	"context"
	"sync"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

// StateRepo хранит состояние в памяти процесса. Подходит для тестов и локального запуска.
type StateRepo struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStateRepo() *StateRepo {
	return &StateRepo{data: make(map[string][]byte)}
}

func (r *StateRepo) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.data[key]
	if !ok {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrStateNotFound)
	}

	out := make([]byte, len(value))
	copy(out, value)

	return out, nil
}

func (r *StateRepo) Put(_ context.Context, key string, value []byte) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = stored

	return nil
}
