package entities

import "time"

// OrderStatusHistory - append-only запись о смене статуса заказа.
// FromStatus nil для записи о создании заказа.
type OrderStatusHistory struct {
	ID              int64
	TenantID        string
	OrderID         string
	FromStatus      *OrderStatusType
	ToStatus        OrderStatusType
	ChangedByRole   string
	ChangedByUserID string
	ChangedAt       time.Time
}
