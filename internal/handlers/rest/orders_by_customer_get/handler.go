package orders_by_customer_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/service/order"
	"service/pkg/logger"
)

// defaultTake применяется, когда клиент не передал query-параметр take.
const defaultTake = 25

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
	customerID := vars["customerId"]

	take := defaultTake
	if takeStr := r.URL.Query().Get("take"); takeStr != "" {
		parsed, err := strconv.Atoi(takeStr)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		take = parsed
	}

	orderEntities, err := h.service.GetCustomerOrders(r.Context(), tenantID, customerID, take)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrStoreUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.Order, len(orderEntities))
	for i, orderEntity := range orderEntities {
		itemDTOs := make([]dto.OrderItem, len(orderEntity.Items))
		for j, item := range orderEntity.Items {
			name := item.Name
			itemDTOs[j] = dto.OrderItem{
				Sku:       item.SKU,
				Name:      &name,
				Quantity:  item.Quantity,
				UnitPrice: entities.MoneyString(item.UnitPrice),
			}
		}

		orderDTOs[i] = dto.Order{
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

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
