package usecase

import (
	"context"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
)

// StateRepository - бэкенд key-value хранилища состояния.
// Get возвращает e.ErrStateNotFound, если ключ ещё не записывался.
type StateRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// ImageRepository сохраняет фото товаров и возвращает ключ объекта.
type ImageRepository interface {
	Upload(ctx context.Context, image *domain.Image) (string, error)
}
