package order

import (
	"strings"

	"github.com/shopspring/decimal"
	"service/internal/entities"
)

// validateSubmission проверяет правила в фиксированном порядке,
// побеждает первое нарушенное.
func validateSubmission(submission entities.OrderSubmission) error {
	if strings.TrimSpace(submission.TenantID) == "" {
		return ErrMissingTenantID
	}
	if strings.TrimSpace(submission.CustomerID) == "" {
		return ErrMissingCustomerID
	}
	// пустой адрес допустим, отсутствующий - нет
	if submission.DeliveryAddress == nil {
		return ErrMissingDeliveryAddress
	}
	if len(submission.Items) == 0 {
		return ErrEmptyCart
	}

	for _, item := range submission.Items {
		if strings.TrimSpace(item.SKU) == "" {
			return ErrMissingItemSKU
		}
	}
	for _, item := range submission.Items {
		if item.Quantity < 1 {
			return ErrInvalidItemQuantity
		}
	}
	for _, item := range submission.Items {
		if item.UnitPrice.IsNegative() {
			return ErrInvalidItemPrice
		}
	}

	return nil
}

// CalculateTotal считает сумму заказа в точной десятичной арифметике.
// Чистая функция, порядок позиций на результат не влияет.
func CalculateTotal(items []entities.OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt32(item.Quantity)))
	}
	return total
}
