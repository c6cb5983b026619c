package redis

import (
	"context"
	"errors"

	"github.com/DRSN-tech/bakery-backend/pkg/clients"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// StateRepo хранит состояние в Redis, по строковому ключу на каждый список. Ключи без TTL.
type StateRepo struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewStateRepo(client *clients.RedisClient, logger logger.Logger) *StateRepo {
	return &StateRepo{
		client: client,
		logger: logger,
	}
}

func (s *StateRepo) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		err = getError(err)
		if !errors.Is(err, e.ErrStateNotFound) {
			s.logger.Warnf("Redis GET failed, key: %s: %v", key, err)
		}
		return nil, err
	}

	return value, nil
}

// getError переводит redis.Nil (ключа нет) в e.ErrStateNotFound.
func getError(err error) error {
	if errors.Is(err, r.Nil) {
		return e.Wrap(whereami.WhereAmI(), e.ErrStateNotFound)
	}
	return e.Wrap(whereami.WhereAmI(), err)
}

func (s *StateRepo) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Client.Set(ctx, key, value, 0).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
