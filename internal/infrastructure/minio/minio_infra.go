package minio

import (
	"context"
	"fmt"
	"strings"

	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/internal/domain"
	"github.com/DRSN-tech/bakery-backend/internal/infrastructure"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/google/uuid"
)

// MinioInfrastructure сохраняет изображения товаров в MinIO и строит их публичные URL.
type MinioInfrastructure struct {
	minioRepo usecase.ImageRepository
	cfg       *cfg.MinIOCfg
	logger    logger.Logger
	newID     func() string
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger) *MinioInfrastructure {
	return &MinioInfrastructure{
		minioRepo: minioRepo,
		cfg:       cfg,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// UploadImage сохраняет изображение под ключом products/<uuid>.<ext>.
func (m *MinioInfrastructure) UploadImage(ctx context.Context, req *usecase.UploadImageReq) (*usecase.UploadImageRes, error) {
	const op = "MinioInfrastructure.UploadImage"

	ext, err := infrastructure.ImageExtension(req.MimeType)
	if err != nil {
		return nil, e.Wrap(op, fmt.Errorf("invalid mime type %s for %s: %w", req.MimeType, req.Name, err))
	}

	objKey := fmt.Sprintf("products/%s.%s", m.newID(), ext)
	key, err := m.minioRepo.Upload(ctx, domain.NewImage(objKey, req.Data, req.MimeType))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return usecase.NewUploadImageRes(key, m.publicURL(key)), nil
}

func (m *MinioInfrastructure) publicURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(m.cfg.PublicBaseURL, "/"), m.cfg.BucketName, key)
}
