package status_history

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append пишет одну запись аудита. Таблица append-only, обновлений и
// удалений у нее нет.
func (r *Repository) Append(ctx context.Context, record entities.OrderStatusHistory) error {
	query := `INSERT INTO order_status_history
			(tenant_id, order_id, from_status, to_status, changed_by_role, changed_by_user_id, changed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	var fromStatus *string
	if record.FromStatus != nil {
		value := record.FromStatus.String()
		fromStatus = &value
	}

	_, err := r.querier.Exec(
		ctx,
		query,
		record.TenantID,
		record.OrderID,
		fromStatus,
		record.ToStatus.String(),
		record.ChangedByRole,
		record.ChangedByUserID,
		record.ChangedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected status history repository append error: %w: %w", order.ErrStoreUnavailable, err)
	}

	return nil
}
