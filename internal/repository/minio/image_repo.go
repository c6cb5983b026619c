package minio

import (
	"bytes"
	"context"

	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// Ключи фото уникальны (uuid), поэтому объект можно кешировать навсегда.
const productImageCacheControl = "public, max-age=31536000, immutable"

// ProductImageRepo кладёт фото товаров в публичный бакет витрины.
type ProductImageRepo struct {
	client *minio.Client
	bucket string
}

func NewProductImageRepo(client *minio.Client, bucket string) *ProductImageRepo {
	return &ProductImageRepo{
		client: client,
		bucket: bucket,
	}
}

func (p *ProductImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	if image.ObjectKey == "" || image.Size == 0 {
		return "", e.Wrap(whereami.WhereAmI(), e.ErrNoImages)
	}

	info, err := p.client.PutObject(ctx, p.bucket, image.ObjectKey, bytes.NewReader(image.Data), image.Size, uploadOptions(image))
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return info.Key, nil
}

func uploadOptions(image *domain.Image) minio.PutObjectOptions {
	return minio.PutObjectOptions{
		ContentType:  image.ContentType,
		CacheControl: productImageCacheControl,
		UserMetadata: map[string]string{"kind": "product-image"},
	}
}
