package order_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, len(orderCreateDTO.Items))
	for i, itemDTO := range orderCreateDTO.Items {
		unitPrice, priceErr := decimal.NewFromString(itemDTO.UnitPrice)
		if priceErr != nil {
			h.writeError(w, http.StatusBadRequest, order.ErrInvalidItemPrice.Error())
			return
		}

		var name string
		if itemDTO.Name != nil {
			name = *itemDTO.Name
		}

		items[i] = entities.OrderItem{
			SKU:       itemDTO.Sku,
			Name:      name,
			Quantity:  itemDTO.Quantity,
			UnitPrice: unitPrice,
		}
	}

	submission := entities.OrderSubmission{
		TenantID:        orderCreateDTO.TenantID,
		CustomerID:      orderCreateDTO.CustomerID,
		DeliveryAddress: orderCreateDTO.DeliveryAddress,
		Items:           items,
	}

	orderEntity, err := h.service.SubmitOrder(r.Context(), submission)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingTenantID),
			errors.Is(err, order.ErrMissingCustomerID),
			errors.Is(err, order.ErrMissingDeliveryAddress),
			errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrMissingItemSKU),
			errors.Is(err, order.ErrInvalidItemQuantity),
			errors.Is(err, order.ErrInvalidItemPrice):
			h.writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrDuplicateOrder):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, order.ErrStoreUnavailable):
			w.WriteHeader(http.StatusServiceUnavailable)
		case errors.Is(err, order.ErrPublishUnavailable):
			// Заказ сохранен, событие не опубликовано: отдаем заказ с 502,
			// досылку делает фоновая задача.
			h.writeOrder(w, http.StatusBadGateway, orderEntity)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%s/%s", orderEntity.TenantID, orderEntity.OrderID))
	h.writeOrder(w, http.StatusCreated, orderEntity)
}

func (h *Handler) writeOrder(w http.ResponseWriter, code int, orderEntity *entities.Order) {
	response := dto.OrderCreateResponse{
		OrderID:     orderEntity.OrderID,
		TenantID:    orderEntity.TenantID,
		CustomerID:  orderEntity.CustomerID,
		Status:      orderEntity.Status.String(),
		TotalAmount: entities.MoneyString(orderEntity.TotalAmount),
		CreatedAt:   orderEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, code int, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: reason})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
