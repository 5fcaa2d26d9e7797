package services

import (
	"context"

	"order-management-service/models"
	"order-management-service/repository"

	"go.uber.org/zap"
)

type OrderService interface {
	// ListOrders returns every order paired with its client, or a null client
	// when the reference does not resolve.
	ListOrders(ctx context.Context) ([]models.OrderListEntry, *ServiceError)
	GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError)
	CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id uint, req *models.OrderRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uint) *ServiceError
}

type orderServiceImpl struct {
	repo     repository.OrderRepository
	notifier *EventNotifier
	logger   *zap.Logger
}

func NewOrderService(repo repository.OrderRepository, notifier *EventNotifier, logger *zap.Logger) OrderService {
	return &orderServiceImpl{repo: repo, notifier: notifier, logger: logger}
}

func (s *orderServiceImpl) ListOrders(ctx context.Context) ([]models.OrderListEntry, *ServiceError) {
	orders, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "listar", "pedidos", err)
	}
	entries := make([]models.OrderListEntry, 0, len(orders))
	for _, o := range orders {
		entries = append(entries, o.ListEntry())
	}
	return entries, nil
}

func (s *orderServiceImpl) GetOrder(ctx context.Context, id uint) (*models.Order, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgOrderNotFound, EntityOrder)
	}
	return order, nil
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req *models.OrderRequest) (*models.Order, *ServiceError) {
	order := &models.Order{}
	req.Apply(order)
	if err := s.repo.Create(ctx, order); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, conflict(MsgOrderUnknownClient)
		}
		return nil, storageFailure(ctx, s.logger, "incluir", EntityOrder, err)
	}

	s.logger.Info("Order created", zap.Uint("id", order.ID), zap.Uint("client_id", order.ClientID))
	s.notifier.Notify(ctx, models.EventCreated, EntityOrder, order.ID)
	return order, nil
}

func (s *orderServiceImpl) UpdateOrder(ctx context.Context, id uint, req *models.OrderRequest) (*models.Order, *ServiceError) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgOrderNotFound, EntityOrder)
	}

	req.Apply(order)
	if err := s.repo.Update(ctx, order); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, conflict(MsgOrderUnknownClient)
		}
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityOrder, err)
	}

	s.notifier.Notify(ctx, models.EventUpdated, EntityOrder, order.ID)
	return order, nil
}

func (s *orderServiceImpl) DeleteOrder(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case repository.IsNotFound(err):
			return notFound(MsgOrderNotFound)
		case repository.IsForeignKeyViolation(err):
			return conflict(MsgOrderHasItems)
		}
		return storageFailure(ctx, s.logger, "excluir", EntityOrder, err)
	}

	s.notifier.Notify(ctx, models.EventDeleted, EntityOrder, id)
	return nil
}
