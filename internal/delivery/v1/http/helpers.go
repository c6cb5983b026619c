package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

var badRequestErrors = []error{
	e.ErrStatusBadRequest,
	e.ErrExpectedMultipart,
	e.ErrMissingFields,
	e.ErrProductNameRequired,
	e.ErrInvalidPrice,
	e.ErrPricePrecision,
	e.ErrPriceMustBePositive,
	e.ErrInvalidQuantity,
	e.ErrUnknownCategory,
	e.ErrUnknownPaymentMethod,
	e.ErrUnknownOrderStatus,
	e.ErrUnknownView,
	e.ErrEmptyCart,
	e.ErrNoImages,
	e.ErrFileTooLarge,
	e.ErrUnsupportedMediaType,
}

func ToHTTPResponse(err error) (int, string) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error()
		}
	}

	switch {
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst interface{}) error {
	const maxBodySize = 1 << 20

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parsePrice разбирает цену вида "45.90" или 45.9.
// Цена должна быть положительной, не больше двух знаков после запятой.
func parsePrice(s string) (decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.Zero, e.ErrMissingFields
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if !d.IsPositive() {
		return decimal.Zero, e.ErrPriceMustBePositive
	}

	// Верхняя граница, чтобы отсечь явные ошибки ввода
	maxPrice := decimal.NewFromInt(1_000_000)
	if d.GreaterThan(maxPrice) {
		return decimal.Zero, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return decimal.Zero, e.ErrPricePrecision
	}

	return d, nil
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.ErrInternalServerError
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	mimeType := http.DetectContentType(data[:min(len(data), 512)])
	return data, mimeType, nil
}
