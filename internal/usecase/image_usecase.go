package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

// ImageUseCase принимает изображения товаров и передаёт их в объектное хранилище.
type ImageUseCase struct {
	images  ImagesInfra
	maxSize int64
	logger  logger.Logger
}

func NewImageUC(images ImagesInfra, maxSize int64, logger logger.Logger) *ImageUseCase {
	return &ImageUseCase{
		images:  images,
		maxSize: maxSize,
		logger:  logger,
	}
}

func (i *ImageUseCase) UploadProductImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	const op = "ImageUseCase.UploadProductImage"

	if len(req.Data) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}
	if i.maxSize > 0 && req.Size > i.maxSize {
		return nil, e.Wrap(op, e.ErrFileTooLarge)
	}
	if !strings.HasPrefix(req.MimeType, "image/") {
		return nil, e.Wrap(op, e.ErrUnsupportedMediaType)
	}

	res, err := i.images.UploadImage(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	i.logger.Infof("product image uploaded, file: %s, key: %s", req.Name, res.ObjectKey)

	return res, nil
}
