//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByTenantAndOrder(ctx context.Context, tenantID, orderID string) (*entities.Order, error)
	GetByTenantAndCustomer(ctx context.Context, tenantID, customerID string, limit int) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Order, error)
	MarkPublished(ctx context.Context, tenantID, orderID string, publishedAt time.Time) error
	GetUnpublishedBefore(ctx context.Context, createdBefore time.Time, limit int) ([]entities.Order, error)
	EnsureReady(ctx context.Context) error
}

type HistoryRepository interface {
	Append(ctx context.Context, record entities.OrderStatusHistory) error
}

type WorkflowPublisher interface {
	PublishOrderSubmitted(ctx context.Context, orderID, tenantID string, createdAt time.Time) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type (
	// ApplyFn нормализует StatusChange под конкретный целевой статус
	// до записи в хранилище.
	ApplyFn        func(change entities.StatusChange) (entities.StatusChange, error)
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ApplyFn, error)
	}
)
