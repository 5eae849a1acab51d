//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	workflowGateway "service/internal/gateway/kafka/workflow"
	order_get "service/internal/handlers/rest/order_get"
	order_post "service/internal/handlers/rest/order_post"
	orders_by_customer_get "service/internal/handlers/rest/orders_by_customer_get"
	"service/internal/handlers/tasks/event_republish"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/status_apply"

	orderRepo "service/internal/repository/order"
	historyRepo "service/internal/repository/status_history"
	orderService "service/internal/service/order"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	RepublishInterval time.Duration
	RepublishAge      time.Duration
	RepublishBatch    int
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_by_customer_get.Service

	EnsureReady(ctx context.Context) error
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRepublishInterval,
		provideRepublishAge,
		provideRepublishBatch,

		provideOrderRepository,
		provideHistoryRepository,
		provideWorkflowGateway,
		status_apply.NewStatusApplyFactory,

		provideOrderService,

		provideEventRepublishTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.WorkflowPublisher), new(*workflowGateway.WorkflowGateway)),
		wire.Bind(new(orderService.HandlerFactory), new(*status_apply.StatusApplyFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(event_republish.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideHistoryRepository,
		provideWorkflowGateway,
		status_apply.NewStatusApplyFactory,

		provideOrderService,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(orderService.WorkflowPublisher), new(*workflowGateway.WorkflowGateway)),
		wire.Bind(new(orderService.HandlerFactory), new(*status_apply.StatusApplyFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideWorkflowGateway(producer sarama.SyncProducer, cfg *config.Config) *workflowGateway.WorkflowGateway {
	return workflowGateway.New(producer, cfg.Kafka.OrdersTopic)
}

func provideOrderService(
	repository orderService.Repository,
	history orderService.HistoryRepository,
	publisher orderService.WorkflowPublisher,
	statusFactory orderService.HandlerFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(repository, history, publisher, statusFactory, txManager)
}

func provideRepublishInterval(cfg *config.Config) RepublishInterval {
	return RepublishInterval(cfg.Tasks.EventRepublishInterval)
}

func provideRepublishAge(cfg *config.Config) RepublishAge {
	return RepublishAge(cfg.Tasks.EventRepublishAge)
}

func provideRepublishBatch(cfg *config.Config) RepublishBatch {
	return RepublishBatch(cfg.Tasks.EventRepublishBatch)
}

func provideEventRepublishTask(
	log logger.Logger,
	orderService event_republish.Service,
	interval RepublishInterval,
	age RepublishAge,
	batch RepublishBatch,
) *event_republish.EventRepublish {
	return event_republish.NewEventRepublish(
		log,
		orderService,
		time.Duration(interval),
		time.Duration(age),
		int(batch),
	)
}

func provideTaskList(
	eventRepublishTask *event_republish.EventRepublish,
) []background.Task {
	return []background.Task{
		eventRepublishTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, service ServiceOrder, tasks []background.Task) (*background.Worker, error) {
	// Прогрев задач сразу ходит в таблицы, схема должна существовать к этому моменту.
	if err := service.EnsureReady(ctx); err != nil {
		return nil, err
	}

	return background.New(ctx, log, tasks)
}
