package services

import (
	"context"

	"order-management-service/models"
	"order-management-service/repository"

	"go.uber.org/zap"
)

// OrderItemService does not check that the order and product exist before
// writing; the foreign keys reject dangling references.
type OrderItemService interface {
	ListOrderItems(ctx context.Context) ([]models.OrderItem, *ServiceError)
	GetOrderItem(ctx context.Context, id uint) (*models.OrderItem, *ServiceError)
	CreateOrderItem(ctx context.Context, req *models.OrderItemRequest) (*models.OrderItem, *ServiceError)
	UpdateOrderItem(ctx context.Context, id uint, req *models.OrderItemRequest) (*models.OrderItem, *ServiceError)
	DeleteOrderItem(ctx context.Context, id uint) *ServiceError
}

type orderItemServiceImpl struct {
	repo     repository.OrderItemRepository
	notifier *EventNotifier
	logger   *zap.Logger
}

func NewOrderItemService(repo repository.OrderItemRepository, notifier *EventNotifier, logger *zap.Logger) OrderItemService {
	return &orderItemServiceImpl{repo: repo, notifier: notifier, logger: logger}
}

func (s *orderItemServiceImpl) ListOrderItems(ctx context.Context) ([]models.OrderItem, *ServiceError) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "listar", "itens do pedido", err)
	}
	return items, nil
}

func (s *orderItemServiceImpl) GetOrderItem(ctx context.Context, id uint) (*models.OrderItem, *ServiceError) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgItemNotFound, EntityOrderItem)
	}
	return item, nil
}

func (s *orderItemServiceImpl) CreateOrderItem(ctx context.Context, req *models.OrderItemRequest) (*models.OrderItem, *ServiceError) {
	item := &models.OrderItem{}
	req.Apply(item)
	if err := s.repo.Create(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, conflict(MsgItemUnknownRef)
		}
		return nil, storageFailure(ctx, s.logger, "incluir", EntityOrderItem, err)
	}

	s.notifier.Notify(ctx, models.EventCreated, EntityOrderItem, item.ID)
	return item, nil
}

func (s *orderItemServiceImpl) UpdateOrderItem(ctx context.Context, id uint, req *models.OrderItemRequest) (*models.OrderItem, *ServiceError) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgItemNotFound, EntityOrderItem)
	}

	req.Apply(item)
	if err := s.repo.Update(ctx, item); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, conflict(MsgItemUnknownRef)
		}
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityOrderItem, err)
	}

	s.notifier.Notify(ctx, models.EventUpdated, EntityOrderItem, item.ID)
	return item, nil
}

func (s *orderItemServiceImpl) DeleteOrderItem(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return notFound(MsgItemNotFound)
		}
		return storageFailure(ctx, s.logger, "excluir", EntityOrderItem, err)
	}

	s.notifier.Notify(ctx, models.EventDeleted, EntityOrderItem, id)
	return nil
}
