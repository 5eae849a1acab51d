package order

import "errors"

// Ошибки валидации. Текст - причина отказа, которую отдаем клиенту как есть.
var (
	ErrMissingTenantID        = errors.New("TenantId is required.")
	ErrMissingCustomerID      = errors.New("CustomerId is required.")
	ErrMissingDeliveryAddress = errors.New("DeliveryAddress is required.")
	ErrEmptyCart              = errors.New("Cart is empty.")
	ErrMissingItemSKU         = errors.New("Item SKU is required.")
	ErrInvalidItemQuantity    = errors.New("Item quantity must be >= 1.")
	ErrInvalidItemPrice       = errors.New("Item price must be >= 0.")
)

var (
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrMissingRiderID  = errors.New("rider id is required for AssignedToRider")

	ErrOrderNotFound      = errors.New("order not found")
	ErrDuplicateOrder     = errors.New("order already exists in tenant")
	ErrStoreUnavailable   = errors.New("order store unavailable")
	ErrPublishUnavailable = errors.New("workflow publish unavailable")
)
