package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"service/internal/entities"
)

const (
	// границы для limit в истории заказов клиента,
	// чтобы один вызов не мог устроить full scan партиции
	minHistoryLimit = 1
	maxHistoryLimit = 200
)

type Service struct {
	repository    Repository
	history       HistoryRepository
	publisher     WorkflowPublisher
	statusFactory HandlerFactory
	txManager     TxManager
	nowFunc       func() time.Time
	newOrderID    func() string
}

func New(
	repository Repository,
	history HistoryRepository,
	publisher WorkflowPublisher,
	statusFactory HandlerFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:    repository,
		history:       history,
		publisher:     publisher,
		statusFactory: statusFactory,
		txManager:     txManager,
		nowFunc:       func() time.Time { return time.Now().UTC() },
		newOrderID:    uuid.NewString,
	}
}

// SubmitOrder проводит заказ через весь пайплайн приема:
// валидация -> расчет суммы -> выдача идентификатора -> запись -> публикация.
// Порядок "сначала запись, потом публикация" обязателен: консьюмер события
// всегда найдет заказ в хранилище.
func (s *Service) SubmitOrder(ctx context.Context, submission entities.OrderSubmission) (*entities.Order, error) {
	if err := validateSubmission(submission); err != nil {
		return nil, err
	}

	total := CalculateTotal(submission.Items)
	now := s.nowFunc()

	newOrder := entities.Order{
		TenantID:        submission.TenantID,
		OrderID:         s.newOrderID(),
		CustomerID:      submission.CustomerID,
		DeliveryAddress: *submission.DeliveryAddress,
		Items:           submission.Items,
		TotalAmount:     total,
		Status:          entities.DefaultOrderStatus,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repository.Create(ctx, newOrder)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// публикуем идентичность уже записанного заказа, не черновика
	err = s.publisher.PublishOrderSubmitted(ctx, created.OrderID, created.TenantID, created.CreatedAt)
	if err != nil {
		// заказ уже надежно записан, откатывать его нельзя - иначе повтор
		// запроса создаст дубль; фоновый republish дошлет событие
		return created, fmt.Errorf("publish order submitted: %w: %w", ErrPublishUnavailable, err)
	}

	// Ошибка отметки не фатальна и не отдается клиенту: неотмеченный заказ
	// подберет RepublishUnconfirmed, а повтор события консьюмеры дедуплицируют.
	publishedAt := s.nowFunc()
	if markErr := s.repository.MarkPublished(ctx, created.TenantID, created.OrderID, publishedAt); markErr == nil {
		created.PublishedAt = &publishedAt
	}

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, tenantID, orderID string) (*entities.Order, error) {
	orderEntity, err := s.repository.GetByTenantAndOrder(ctx, tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return orderEntity, nil
}

func (s *Service) GetCustomerOrders(ctx context.Context, tenantID, customerID string, take int) ([]entities.Order, error) {
	orders, err := s.repository.GetByTenantAndCustomer(ctx, tenantID, customerID, clampHistoryLimit(take))
	if err != nil {
		return nil, fmt.Errorf("get customer orders: %w", err)
	}
	return orders, nil
}

// ChangeStatus применяет смену статуса от внешнего workflow.
// Статус и запись в историю пишутся в одной транзакции: ровно одна
// history-запись на каждую мутацию статуса.
func (s *Service) ChangeStatus(ctx context.Context, change entities.StatusChange) (*entities.Order, error) {
	normalized, err := entities.ParseOrderStatus(change.NewStatus.String())
	if err != nil {
		return nil, fmt.Errorf("status %q: %w", change.NewStatus, err)
	}
	change.NewStatus = normalized

	applyFn, err := s.statusFactory.GetHandler(change.NewStatus)
	if err != nil {
		return nil, fmt.Errorf("status handler: %w", err)
	}

	change, err = applyFn(change)
	if err != nil {
		return nil, fmt.Errorf("apply status %s: %w", change.NewStatus, err)
	}

	var updated *entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByTenantAndOrder(ctx, change.TenantID, change.OrderID)
		if err != nil {
			return fmt.Errorf("get order for status change: %w", err)
		}
		fromStatus := current.Status

		updated, err = s.repository.UpdateStatus(ctx, change)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		record := entities.OrderStatusHistory{
			TenantID:        change.TenantID,
			OrderID:         change.OrderID,
			FromStatus:      &fromStatus,
			ToStatus:        change.NewStatus,
			ChangedByRole:   change.ChangedByRole,
			ChangedByUserID: change.ChangedByUserID,
			ChangedAt:       s.nowFunc(),
		}
		if err := s.history.Append(ctx, record); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RepublishUnconfirmed досылает OrderSubmitted для заказов, чья публикация
// не подтверждена. Доставка at-least-once: консьюмеры дедуплицируют по
// ключу tenantId:orderId, поэтому повтор безопасен.
func (s *Service) RepublishUnconfirmed(ctx context.Context, olderThan time.Duration, limit int) (int64, error) {
	createdBefore := s.nowFunc().Add(-olderThan)

	orders, err := s.repository.GetUnpublishedBefore(ctx, createdBefore, limit)
	if err != nil {
		return 0, fmt.Errorf("get unpublished orders: %w", err)
	}

	var republished int64
	for _, orderEntity := range orders {
		err := s.publisher.PublishOrderSubmitted(ctx, orderEntity.OrderID, orderEntity.TenantID, orderEntity.CreatedAt)
		if err != nil {
			return republished, fmt.Errorf("republish order %s: %w", orderEntity.OrderID, err)
		}

		err = s.repository.MarkPublished(ctx, orderEntity.TenantID, orderEntity.OrderID, s.nowFunc())
		if err != nil {
			return republished, fmt.Errorf("mark published %s: %w", orderEntity.OrderID, err)
		}
		republished++
	}

	return republished, nil
}

// EnsureReady инициализирует схему хранилища. Вызов идемпотентен,
// выполняется на каждом старте сервиса и воркера.
func (s *Service) EnsureReady(ctx context.Context) error {
	if err := s.repository.EnsureReady(ctx); err != nil {
		return fmt.Errorf("ensure ready: %w", err)
	}
	return nil
}

func clampHistoryLimit(take int) int {
	if take < minHistoryLimit {
		return minHistoryLimit
	}
	if take > maxHistoryLimit {
		return maxHistoryLimit
	}
	return take
}
