package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

// Ключи состояния. Каждое хранилище владеет своим ключом.
const (
	KeyProducts = "products"
	KeyCart     = "cart"
	KeyOrders   = "orders"
)

// StateStore - типизированное key-value хранилище состояния с JSON-сериализацией.
type StateStore struct {
	repo   StateRepository
	prefix string
	logger logger.Logger
}

func NewStateStore(repo StateRepository, prefix string, logger logger.Logger) *StateStore {
	return &StateStore{
		repo:   repo,
		prefix: prefix,
		logger: logger,
	}
}

// Write сериализует value и сохраняет под ключом key, заменяя прежнее значение.
func (s *StateStore) Write(ctx context.Context, key string, value any) error {
	const op = "StateStore.Write"

	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(op, err)
	}

	if err := s.repo.Put(ctx, s.fullKey(key), data); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// ReadState возвращает значение, записанное под key. Если значения нет,
// бэкенд недоступен или данные не десериализуются, возвращается def.
func ReadState[T any](ctx context.Context, s *StateStore, key string, def T) T {
	value, ok := LookupState[T](ctx, s, key)
	if !ok {
		return def
	}
	return value
}

// LookupState читает значение под key. ok = false, если ключ ни разу не
// записывался или прочитанное значение непригодно.
// Записанный пустой список считается найденным.
func LookupState[T any](ctx context.Context, s *StateStore, key string) (value T, ok bool) {
	const op = "StateStore.Read"

	data, err := s.repo.Get(ctx, s.fullKey(key))
	if err != nil {
		if !errors.Is(err, e.ErrStateNotFound) {
			s.logger.Warnf("state read failed, key: %s, falling back to default: %v", key, e.Wrap(op, err))
		}
		return value, false
	}

	if err := json.Unmarshal(data, &value); err != nil {
		s.logger.Warnf("state is corrupt, key: %s, falling back to default: %v", key, e.Wrap(op, err))
		var zero T
		return zero, false
	}

	return value, true
}

func (s *StateStore) fullKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "-" + key
}
