package order

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"service/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	total, err := decimal.NewFromString(o.TotalAmount)
	if err != nil {
		return nil, fmt.Errorf("parse total amount %q: %w", o.TotalAmount, err)
	}

	var itemModels []OrderItemJSON
	if err := json.Unmarshal(o.Items, &itemModels); err != nil {
		return nil, fmt.Errorf("unmarshal order items: %w", err)
	}

	items := make([]entities.OrderItem, 0, len(itemModels))
	for _, itemModel := range itemModels {
		unitPrice, err := decimal.NewFromString(itemModel.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("parse item unit price %q: %w", itemModel.UnitPrice, err)
		}
		items = append(items, entities.OrderItem{
			SKU:       itemModel.SKU,
			Name:      itemModel.Name,
			Quantity:  itemModel.Quantity,
			UnitPrice: unitPrice,
		})
	}

	return &entities.Order{
		TenantID:        o.TenantID,
		OrderID:         o.OrderID,
		CustomerID:      o.CustomerID,
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		TotalAmount:     total,
		Status:          entities.OrderStatusType(o.Status),
		AssignedRiderID: o.AssignedRiderID,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		PublishedAt:     o.PublishedAt,
	}, nil
}

func FromDomain(orderEntity *entities.Order) (*OrderDB, error) {
	if orderEntity == nil {
		return nil, nil
	}

	itemModels := make([]OrderItemJSON, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		itemModels = append(itemModels, OrderItemJSON{
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: entities.MoneyString(item.UnitPrice),
		})
	}

	itemsJSON, err := json.Marshal(itemModels)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	return &OrderDB{
		TenantID:        orderEntity.TenantID,
		OrderID:         orderEntity.OrderID,
		CustomerID:      orderEntity.CustomerID,
		DeliveryAddress: orderEntity.DeliveryAddress,
		Items:           itemsJSON,
		TotalAmount:     entities.MoneyString(orderEntity.TotalAmount),
		Status:          orderEntity.Status.String(),
		AssignedRiderID: orderEntity.AssignedRiderID,
		CreatedAt:       orderEntity.CreatedAt,
		UpdatedAt:       orderEntity.UpdatedAt,
		PublishedAt:     orderEntity.PublishedAt,
	}, nil
}
