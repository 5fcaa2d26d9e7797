package services

import (
	"context"

	"order-management-service/models"
	"order-management-service/repository"

	"go.uber.org/zap"
)

type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, *ServiceError)
	GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError)
	CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, *ServiceError)
	UpdateProduct(ctx context.Context, id uint, req *models.ProductRequest) (*models.Product, *ServiceError)
	DeleteProduct(ctx context.Context, id uint) *ServiceError
}

type productServiceImpl struct {
	repo     repository.ProductRepository
	notifier *EventNotifier
	logger   *zap.Logger
}

func NewProductService(repo repository.ProductRepository, notifier *EventNotifier, logger *zap.Logger) ProductService {
	return &productServiceImpl{repo: repo, notifier: notifier, logger: logger}
}

func (s *productServiceImpl) ListProducts(ctx context.Context) ([]models.Product, *ServiceError) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageFailure(ctx, s.logger, "listar", "produtos", err)
	}
	return products, nil
}

func (s *productServiceImpl) GetProduct(ctx context.Context, id uint) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgProductNotFound, EntityProduct)
	}
	return product, nil
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req *models.ProductRequest) (*models.Product, *ServiceError) {
	if _, err := s.repo.FindByDescription(ctx, req.Description); err == nil {
		return nil, conflict(MsgProductTaken)
	} else if !repository.IsNotFound(err) {
		return nil, storageFailure(ctx, s.logger, "incluir", EntityProduct, err)
	}

	product := &models.Product{}
	req.Apply(product)
	if err := s.repo.Create(ctx, product); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, conflict(MsgProductTaken)
		}
		return nil, storageFailure(ctx, s.logger, "incluir", EntityProduct, err)
	}

	s.logger.Info("Product created", zap.Uint("id", product.ID))
	s.notifier.Notify(ctx, models.EventCreated, EntityProduct, product.ID)
	return product, nil
}

func (s *productServiceImpl) UpdateProduct(ctx context.Context, id uint, req *models.ProductRequest) (*models.Product, *ServiceError) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupFailure(ctx, s.logger, err, MsgProductNotFound, EntityProduct)
	}

	if other, err := s.repo.FindByDescription(ctx, req.Description); err == nil && other.ID != id {
		return nil, conflict(MsgProductInUse)
	} else if err != nil && !repository.IsNotFound(err) {
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityProduct, err)
	}

	req.Apply(product)
	if err := s.repo.Update(ctx, product); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, conflict(MsgProductInUse)
		}
		return nil, storageFailure(ctx, s.logger, "atualizar", EntityProduct, err)
	}

	s.notifier.Notify(ctx, models.EventUpdated, EntityProduct, product.ID)
	return product, nil
}

func (s *productServiceImpl) DeleteProduct(ctx context.Context, id uint) *ServiceError {
	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case repository.IsNotFound(err):
			return notFound(MsgProductNotFound)
		case repository.IsForeignKeyViolation(err):
			return conflict(MsgProductHasItems)
		}
		return storageFailure(ctx, s.logger, "excluir", EntityProduct, err)
	}

	s.notifier.Notify(ctx, models.EventDeleted, EntityProduct, id)
	return nil
}
