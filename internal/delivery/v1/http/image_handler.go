package http

import (
	"net/http"

	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
)

type ImageHandler struct {
	images  usecase.ImageUC
	maxSize int64
	logger  logger.Logger
}

func NewImageHandler(images usecase.ImageUC, maxSize int64, logger logger.Logger) *ImageHandler {
	return &ImageHandler{images: images, maxSize: maxSize, logger: logger}
}

// uploadImage
//
//	@Summary		Загрузить изображение товара
//	@Description	Сохраняет файл в объектное хранилище и возвращает URL для поля image
//	@Tags			admin
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			image	formData	file	true	"Изображение (jpeg, png, webp)"
//	@Success		201		{object}	ImageUploadResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		401		{object}	ErrorResponse
//	@Router			/admin/images [post]
func (h *ImageHandler) uploadImage(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 8 << 20

	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize+maxMemory)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	files := r.MultipartForm.File["image"]
	if len(files) == 0 {
		WriteError(w, e.ErrNoImages)
		return
	}

	data, mimeType, err := readFile(files[0], h.maxSize)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.images.UploadProductImage(r.Context(), usecase.NewUploadImageReq(data, mimeType, int64(len(data)), files[0].Filename))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, ImageUploadResponse{ObjectKey: res.ObjectKey, URL: res.URL})
}
