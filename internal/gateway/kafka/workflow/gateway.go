package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	retrierconfig "service/pkg/retrier"
	"service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "manager-workflow"

	eventKindOrderSubmitted = "OrderSubmitted"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// orderSubmittedEvent - контракт события для downstream workflow.
type orderSubmittedEvent struct {
	EventKind string    `json:"eventKind"`
	OrderID   string    `json:"orderId"`
	TenantID  string    `json:"tenantId"`
	CreatedAt time.Time `json:"createdAt"`
}

type WorkflowGateway struct {
	producer sarama.SyncProducer
	topic    string
	retrier  retrier
}

func New(producer sarama.SyncProducer, topic string) *WorkflowGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // повтор безопасен: консьюмеры дедуплицируют по dedup_key
	}

	return &WorkflowGateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// PublishOrderSubmitted отправляет одно событие at-least-once.
// Ключ сообщения = orderId: все события одного заказа попадают в одну
// партицию и сохраняют порядок.
func (g *WorkflowGateway) PublishOrderSubmitted(ctx context.Context, orderID, tenantID string, createdAt time.Time) error {
	event := orderSubmittedEvent{
		EventKind: eventKindOrderSubmitted,
		OrderID:   orderID,
		TenantID:  tenantID,
		CreatedAt: createdAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway workflow, marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(orderID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_kind"), Value: []byte(eventKindOrderSubmitted)},
			{Key: []byte("dedup_key"), Value: []byte(tenantID + ":" + orderID)},
			{Key: []byte("correlation_id"), Value: []byte(orderID)},
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	}

	err = g.executeWithMetrics(ctx, "PublishOrderSubmitted", func(_ context.Context) error {
		_, _, err := g.producer.SendMessage(message)
		return err
	})
	if err != nil {
		return fmt.Errorf("gateway workflow, publish order submitted: %s: %w", orderID, err)
	}

	return nil
}

func (g *WorkflowGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}

	// Метрики Prometheus
	GatewayPublishDuration.WithLabelValues(serviceName, method, outcome).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		GatewayPublishRetriesTotal.WithLabelValues(serviceName, method, outcome).Inc()
	}

	return err
}
