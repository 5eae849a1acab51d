package order

import "time"

type OrderDB struct {
	TenantID        string
	OrderID         string
	CustomerID      string
	DeliveryAddress string
	Items           []byte
	TotalAmount     string
	Status          string
	AssignedRiderID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PublishedAt     *time.Time
}

// OrderItemJSON - представление позиции в JSONB-колонке items.
// unitPrice храним строкой, чтобы не терять точность на float.
type OrderItemJSON struct {
	SKU       string `json:"sku"`
	Name      string `json:"name"`
	Quantity  int32  `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}
