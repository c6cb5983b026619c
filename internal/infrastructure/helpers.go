package infrastructure

import (
	"mime"
	"strings"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
)

// imageExtensions - допустимые форматы изображений товаров
var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// ImageExtension возвращает расширение объекта по Content-Type изображения.
// Параметры типа (например "; charset=...") и регистр игнорируются.
func ImageExtension(contentType string) (string, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(contentType))
	}

	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", e.ErrUnsupportedMediaType
	}
	return ext, nil
}
