//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_by_customer_get_test
package orders_by_customer_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCustomerOrders(ctx context.Context, tenantID, customerID string, take int) ([]entities.Order, error)
}
