package repository

import (
	"context"

	"order-management-service/models"

	"gorm.io/gorm"
)

type OrderItemRepository interface {
	Create(ctx context.Context, item *models.OrderItem) error
	FindByID(ctx context.Context, id uint) (*models.OrderItem, error)
	FindAll(ctx context.Context) ([]models.OrderItem, error)
	Update(ctx context.Context, item *models.OrderItem) error
	Delete(ctx context.Context, id uint) error
}

type GormOrderItemRepository struct {
	db *gorm.DB
}

func NewGormOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &GormOrderItemRepository{db: db}
}

func (r *GormOrderItemRepository) Create(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Omit("Order", "Product").Create(item).Error
}

func (r *GormOrderItemRepository) FindByID(ctx context.Context, id uint) (*models.OrderItem, error) {
	var i models.OrderItem
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *GormOrderItemRepository) FindAll(ctx context.Context) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	if err := r.db.WithContext(ctx).Order("id").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormOrderItemRepository) Update(ctx context.Context, item *models.OrderItem) error {
	return r.db.WithContext(ctx).Omit("Order", "Product").Save(item).Error
}

func (r *GormOrderItemRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.OrderItem{}, id)
}
