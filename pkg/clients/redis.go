package clients

import (
	"context"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *r.Client
}

// NewRedisClient создаёт клиента и проверяет соединение.
// При недоступном сервере клиент закрывается и возвращается ошибка.
func NewRedisClient(ctx context.Context, cfg *cfg.RedisCfg) (*RedisClient, error) {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		Username:     cfg.User,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	rc := &RedisClient{Client: client}
	if err := rc.Ping(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return rc, nil
}

func (rc *RedisClient) Ping(ctx context.Context) error {
	if err := rc.Client.Ping(ctx).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	return nil
}

func (rc *RedisClient) Close() error {
	return rc.Client.Close()
}
