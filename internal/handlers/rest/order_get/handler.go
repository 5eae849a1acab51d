package order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/service/order"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tenantID := vars["tenantId"]
	orderID := vars["orderId"]

	orderEntity, err := h.service.GetOrder(r.Context(), tenantID, orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, order.ErrStoreUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTO := orderToDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// orderToDTO собирает транспортное представление заказа.
func orderToDTO(orderEntity *entities.Order) dto.Order {
	itemDTOs := make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		name := item.Name
		itemDTOs[i] = dto.OrderItem{
			Sku:       item.SKU,
			Name:      &name,
			Quantity:  item.Quantity,
			UnitPrice: entities.MoneyString(item.UnitPrice),
		}
	}

	return dto.Order{
		OrderID:         orderEntity.OrderID,
		TenantID:        orderEntity.TenantID,
		CustomerID:      orderEntity.CustomerID,
		DeliveryAddress: orderEntity.DeliveryAddress,
		Items:           itemDTOs,
		Status:          orderEntity.Status.String(),
		TotalAmount:     entities.MoneyString(orderEntity.TotalAmount),
		AssignedRiderID: orderEntity.AssignedRiderID,
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
	}
}
