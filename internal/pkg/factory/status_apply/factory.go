package status_apply

import (
	"fmt"

	"service/internal/entities"
	"service/internal/service/order"
)

// StatusApplyFactory выдает функцию подготовки StatusChange под целевой статус.
// Почти все статусы проходят как есть, но AssignedToRider обязан нести
// идентификатор райдера, а остальные - нет.
type StatusApplyFactory struct{}

func NewStatusApplyFactory() *StatusApplyFactory {
	return &StatusApplyFactory{}
}

func (f *StatusApplyFactory) GetHandler(status entities.OrderStatusType) (order.ApplyFn, error) {
	switch status {
	case entities.OrderAssignedToRider:
		return f.assignedToRiderHandler, nil
	case entities.OrderPlaced,
		entities.OrderPendingApproval,
		entities.OrderRejected,
		entities.OrderAccepted,
		entities.OrderInPreparation,
		entities.OrderReadyForPickup,
		entities.OrderPickedUp,
		entities.OrderOutForDelivery,
		entities.OrderDelivered,
		entities.OrderCancelled:
		return f.plainHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusApplyFactory) assignedToRiderHandler(change entities.StatusChange) (entities.StatusChange, error) {
	if change.RiderID == nil {
		return change, order.ErrMissingRiderID
	}
	return change, nil
}

func (f *StatusApplyFactory) plainHandler(change entities.StatusChange) (entities.StatusChange, error) {
	// rider id имеет смысл только для назначения
	change.RiderID = nil
	return change, nil
}
