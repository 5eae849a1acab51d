package entities

import "time"

// Rider - справочная сущность внешнего rider-сервиса.
// Мы храним только ссылку AssignedRiderID в заказе, жизненный цикл
// курьера нам не принадлежит.
type Rider struct {
	RiderID           int64
	IsAvailable       bool
	LastKnownLocation string
	UpdatedAt         time.Time
}
