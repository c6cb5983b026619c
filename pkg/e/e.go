package e

import "fmt"

var (
	// Внутренние ошибки хранилища состояния
	ErrStateNotFound       = fmt.Errorf("state not found")
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidQuantity      = fmt.Errorf("invalid quantity")
	ErrUnknownCategory      = fmt.Errorf("unknown category")
	ErrUnknownPaymentMethod = fmt.Errorf("unknown payment method")
	ErrUnknownOrderStatus   = fmt.Errorf("unknown order status")
	ErrUnknownView          = fmt.Errorf("unknown view")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 401 Unauthorized
	ErrUnauthorized       = fmt.Errorf("admin session required")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
