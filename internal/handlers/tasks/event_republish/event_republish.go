package event_republish

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	RepublishUnconfirmed(ctx context.Context, olderThan time.Duration, limit int) (int64, error)
}

// EventRepublish досылает события OrderSubmitted для заказов, у которых
// публикация не была подтверждена после записи в хранилище.
type EventRepublish struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	age      time.Duration
	batch    int
}

func NewEventRepublish(log logger.Logger, service Service, interval, age time.Duration, batch int) *EventRepublish {
	return &EventRepublish{
		log:      log,
		service:  service,
		interval: interval,
		age:      age,
		batch:    batch,
	}
}

func (e *EventRepublish) TTL() time.Duration {
	return e.interval
}

func (e *EventRepublish) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	republished, err := e.service.RepublishUnconfirmed(ctxWithTimeout, e.age, e.batch)

	if republished > 0 {
		e.log.With(
			logger.NewField("republished_orders", republished),
		).Info("event republish")
	}

	return err
}

func (e *EventRepublish) Info() string {
	return "event republish"
}
