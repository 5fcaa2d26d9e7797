package services

import (
	"context"

	"order-management-service/models"
	"order-management-service/repository"

	"go.uber.org/zap"
)

type ObjectService interface {
	ListObjects(ctx context.Context) ([]models.Object, *ServiceError)
	GetObject(ctx context.Context, id uint) (*models.Object, *ServiceError)
	CreateObject(ctx context.Context, req *models.ObjectRequest) (*models.Object, *ServiceError)
	UpdateObject(ctx context.Context, id uint, req *models.ObjectRequest) (*models.Object, *ServiceError)
	DeleteObject(ctx context.Context, id uint) *ServiceError
}

type objectServiceImpl struct {
	repo     repository.ObjectRepository
	notifier *EventNotifier
	logger   *zap.Logger
}

func NewObjectService(repo repository.ObjectRepository, notifier *EventNotifier, logger *zap.Logger) ObjectService {
	return &objectServiceImpl{repo: repo, notifier: notifier, logger: logger}
}

func (s *objectServiceImpl) ListObjects(ctx context.Context) ([]models.Object, *ServiceError) {
	objects, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "listar", "objetos", err)
	}
	return objects, nil
}

func (s *objectServiceImpl) GetObject(ctx context.Context, id uint) (*models.Object, *ServiceError) {
	object, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgObjectNotFound, EntityObject)
	}
	return object, nil
}

func (s *objectServiceImpl) CreateObject(ctx context.Context, req *models.ObjectRequest) (*models.Object, *ServiceError) {
	object := &models.Object{}
	req.Apply(object)
	if err := s.repo.Create(ctx, object); err != nil {
		return nil, storageFailure(ctx, s.logger, "incluir", EntityObject, err)
	}

	s.notifier.Notify(ctx, models.EventCreated, EntityObject, object.ID)
	return object, nil
}

func (s *objectServiceImpl) UpdateObject(ctx context.Context, id uint, req *models.ObjectRequest) (*models.Object, *ServiceError) {
	object, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgObjectNotFound, EntityObject)
	}

	req.Apply(object)
	if err := s.repo.Update(ctx, object); err != nil {
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityObject, err)
	}

	s.notifier.Notify(ctx, models.EventUpdated, EntityObject, object.ID)
	return object, nil
}

func (s *objectServiceImpl) DeleteObject(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return notFound(MsgObjectNotFound)
		}
		return storageFailure(ctx, s.logger, "excluir", EntityObject, err)
	}

	s.notifier.Notify(ctx, models.EventDeleted, EntityObject, id)
	return nil
}
