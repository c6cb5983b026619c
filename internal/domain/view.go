package domain

// View - идентификатор экрана витрины.
type View string

const (
	ViewHome     View = "home"
	ViewCatalog  View = "catalog"
	ViewCart     View = "cart"
	ViewCheckout View = "checkout"
	ViewAdmin    View = "admin"
	ViewLogin    View = "login"
)

// ParseView проверяет, что строка - известный экран.
func ParseView(s string) (View, bool) {
	switch v := View(s); v {
	case ViewHome, ViewCatalog, ViewCart, ViewCheckout, ViewAdmin, ViewLogin:
		return v, true
	default:
		return "", false
	}
}
