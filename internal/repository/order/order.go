package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `tenant_id, order_id, customer_id, delivery_address, items,
		total_amount::text, status, assigned_rider_id, created_at, updated_at, published_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет новый заказ в партицию tenant_id. Уникальность пары
// (tenant_id, order_id) обеспечивает первичный ключ, никакого
// read-then-write здесь нет.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel, err := FromDomain(&orderEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (tenant_id, order_id, customer_id, delivery_address, items,
			total_amount, status, assigned_rider_id, created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + orderColumns

	var createdModel OrderDB
	err = r.querier.QueryRow(
		ctx,
		query,
		orderModel.TenantID,
		orderModel.OrderID,
		orderModel.CustomerID,
		orderModel.DeliveryAddress,
		orderModel.Items,
		orderModel.TotalAmount,
		orderModel.Status,
		orderModel.AssignedRiderID,
		orderModel.CreatedAt,
		orderModel.UpdatedAt,
		orderModel.PublishedAt,
	).Scan(
		&createdModel.TenantID,
		&createdModel.OrderID,
		&createdModel.CustomerID,
		&createdModel.DeliveryAddress,
		&createdModel.Items,
		&createdModel.TotalAmount,
		&createdModel.Status,
		&createdModel.AssignedRiderID,
		&createdModel.CreatedAt,
		&createdModel.UpdatedAt,
		&createdModel.PublishedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrDuplicateOrder
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w: %w", order.ErrStoreUnavailable, err)
	}

	return ToDomain(&createdModel)
}

func (r *Repository) GetByTenantAndOrder(ctx context.Context, tenantID, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND order_id = $2`

	var orderModel OrderDB
	err := r.querier.QueryRow(ctx, query, tenantID, orderID).
		Scan(
			&orderModel.TenantID,
			&orderModel.OrderID,
			&orderModel.CustomerID,
			&orderModel.DeliveryAddress,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.AssignedRiderID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
			&orderModel.PublishedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w: %w", order.ErrStoreUnavailable, err)
	}

	return ToDomain(&orderModel)
}

func (r *Repository) GetByTenantAndCustomer(ctx context.Context, tenantID, customerID string, limit int) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1 AND customer_id = $2
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.querier.Query(ctx, query, tenantID, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get by customer error: %w: %w", order.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, limit)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.TenantID,
			&orderModel.OrderID,
			&orderModel.CustomerID,
			&orderModel.DeliveryAddress,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.AssignedRiderID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
			&orderModel.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get by customer error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get by customer error: %w: %w", order.ErrStoreUnavailable, err)
	}

	orders := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		orderEntity, err := ToDomain(&orderModels[i])
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get by customer error: %w", err)
		}
		orders = append(orders, *orderEntity)
	}

	return orders, nil
}

// UpdateStatus меняет статус заказа; assigned_rider_id трогаем только когда
// он пришел в change.
func (r *Repository) UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", change.NewStatus.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if change.RiderID != nil {
		builder = builder.Set("assigned_rider_id", change.RiderID)
	}

	builder = builder.
		Where(sq.Eq{"tenant_id": change.TenantID, "order_id": change.OrderID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	var orderModel OrderDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&orderModel.TenantID,
			&orderModel.OrderID,
			&orderModel.CustomerID,
			&orderModel.DeliveryAddress,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.AssignedRiderID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
			&orderModel.PublishedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w: %w", order.ErrStoreUnavailable, err)
	}

	return ToDomain(&orderModel)
}

// MarkPublished идемпотентна: повторная отметка уже подтвержденного заказа
// не ошибка.
func (r *Repository) MarkPublished(ctx context.Context, tenantID, orderID string, publishedAt time.Time) error {
	query := `UPDATE orders
		SET published_at = $3
		WHERE tenant_id = $1 AND order_id = $2 AND published_at IS NULL`

	_, err := r.querier.Exec(ctx, query, tenantID, orderID, publishedAt)
	if err != nil {
		return fmt.Errorf("unexpected order repository mark published error: %w: %w", order.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *Repository) GetUnpublishedBefore(ctx context.Context, createdBefore time.Time, limit int) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE published_at IS NULL AND created_at < $1
		ORDER BY created_at
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, createdBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get unpublished error: %w: %w", order.ErrStoreUnavailable, err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, limit)
	for rows.Next() {
		var orderModel OrderDB
		err := rows.Scan(
			&orderModel.TenantID,
			&orderModel.OrderID,
			&orderModel.CustomerID,
			&orderModel.DeliveryAddress,
			&orderModel.Items,
			&orderModel.TotalAmount,
			&orderModel.Status,
			&orderModel.AssignedRiderID,
			&orderModel.CreatedAt,
			&orderModel.UpdatedAt,
			&orderModel.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get unpublished error: %w", err)
		}

		orderEntity, err := ToDomain(&orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get unpublished error: %w", err)
		}
		orders = append(orders, *orderEntity)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get unpublished error: %w: %w", order.ErrStoreUnavailable, err)
	}

	return orders, nil
}

// EnsureReady создает схему, если ее еще нет. Зеркалит goose-миграцию,
// безопасна на каждом старте и ничего не уничтожает.
func (r *Repository) EnsureReady(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS orders (
		tenant_id         TEXT        NOT NULL,
		order_id          TEXT        NOT NULL,
		customer_id       TEXT        NOT NULL,
		delivery_address  TEXT        NOT NULL DEFAULT '',
		items             JSONB       NOT NULL,
		total_amount      NUMERIC     NOT NULL,
		status            TEXT        NOT NULL,
		assigned_rider_id BIGINT,
		created_at        TIMESTAMPTZ NOT NULL,
		updated_at        TIMESTAMPTZ NOT NULL,
		published_at      TIMESTAMPTZ,
		PRIMARY KEY (tenant_id, order_id)
	);

	CREATE INDEX IF NOT EXISTS idx_orders_tenant_customer_created
		ON orders (tenant_id, customer_id, created_at DESC);

	CREATE INDEX IF NOT EXISTS idx_orders_unpublished
		ON orders (created_at) WHERE published_at IS NULL;

	CREATE TABLE IF NOT EXISTS order_status_history (
		id                 BIGSERIAL   PRIMARY KEY,
		tenant_id          TEXT        NOT NULL,
		order_id           TEXT        NOT NULL,
		from_status        TEXT,
		to_status          TEXT        NOT NULL,
		changed_by_role    TEXT        NOT NULL DEFAULT '',
		changed_by_user_id TEXT        NOT NULL DEFAULT '',
		changed_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_order_status_history_order
		ON order_status_history (tenant_id, order_id, changed_at);
	`

	_, err := r.querier.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("unexpected order repository ensure ready error: %w: %w", order.ErrStoreUnavailable, err)
	}
	return nil
}
