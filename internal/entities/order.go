package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	TenantID        string
	OrderID         string
	CustomerID      string
	DeliveryAddress string
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          OrderStatusType
	AssignedRiderID *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	PublishedAt     *time.Time
}

type OrderItem struct {
	SKU       string
	Name      string
	Quantity  int32
	UnitPrice decimal.Decimal
}

// MoneyString рендерит денежную сумму с исходным десятичным масштабом:
// "5.00" остается "5.00", а не схлопывается в "5". decimal.String()
// масштаб обрезает, поэтому на всех границах (API, хранилище) только этот хелпер.
func MoneyString(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}

// OrderSubmission - входные данные на создание заказа.
// DeliveryAddress указатель: поле обязано присутствовать, но может быть пустой строкой.
type OrderSubmission struct {
	TenantID        string
	CustomerID      string
	DeliveryAddress *string
	Items           []OrderItem
}

type OrderStatusType string

const (
	OrderPlaced          OrderStatusType = "Placed"
	OrderPendingApproval OrderStatusType = "PendingApproval"
	OrderRejected        OrderStatusType = "Rejected"
	OrderAccepted        OrderStatusType = "Accepted"
	OrderInPreparation   OrderStatusType = "InPreparation"
	OrderReadyForPickup  OrderStatusType = "ReadyForPickup"
	OrderAssignedToRider OrderStatusType = "AssignedToRider"
	OrderPickedUp        OrderStatusType = "PickedUp"
	OrderOutForDelivery  OrderStatusType = "OutForDelivery"
	OrderDelivered       OrderStatusType = "Delivered"
	OrderCancelled       OrderStatusType = "Cancelled"
)

const DefaultOrderStatus = OrderPlaced

var ErrInvalidStatus = errors.New("invalid order status")

var orderStatuses = []OrderStatusType{
	OrderPlaced,
	OrderPendingApproval,
	OrderRejected,
	OrderAccepted,
	OrderInPreparation,
	OrderReadyForPickup,
	OrderAssignedToRider,
	OrderPickedUp,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

func (s OrderStatusType) String() string {
	return string(s)
}

// ParseOrderStatus нормализует строку к каноничному имени статуса.
// Регистр входа не важен, в хранилище всегда попадает каноничная форма.
func ParseOrderStatus(raw string) (OrderStatusType, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrInvalidStatus
	}

	for _, status := range orderStatuses {
		if strings.EqualFold(trimmed, status.String()) {
			return status, nil
		}
	}
	return "", ErrInvalidStatus
}

// StatusChange - запрос на смену статуса заказа из внешнего workflow.
// Допустим любой переход в легальный статус, ограничения на предшественников
// пока не вводим.
type StatusChange struct {
	TenantID        string
	OrderID         string
	NewStatus       OrderStatusType
	RiderID         *int64
	ChangedByRole   string
	ChangedByUserID string
}
