package repository

import (
	"context"

	"order-management-service/models"

	"gorm.io/gorm"
)

type ObjectRepository interface {
	Create(ctx context.Context, object *models.Object) error
	FindByID(ctx context.Context, id uint) (*models.Object, error)
	FindAll(ctx context.Context) ([]models.Object, error)
	Update(ctx context.Context, object *models.Object) error
	Delete(ctx context.Context, id uint) error
}

type GormObjectRepository struct {
	db *gorm.DB
}

func NewGormObjectRepository(db *gorm.DB) ObjectRepository {
	return &GormObjectRepository{db: db}
}

func (r *GormObjectRepository) Create(ctx context.Context, object *models.Object) error {
	return r.db.WithContext(ctx).Create(object).Error
}

func (r *GormObjectRepository) FindByID(ctx context.Context, id uint) (*models.Object, error) {
	var o models.Object
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *GormObjectRepository) FindAll(ctx context.Context) ([]models.Object, error) {
	objects := []models.Object{}
	if err := r.db.WithContext(ctx).Order("id").Find(&objects).Error; err != nil {
		return nil, err
	}
	return objects, nil
}

func (r *GormObjectRepository) Update(ctx context.Context, object *models.Object) error {
	return r.db.WithContext(ctx).Save(object).Error
}

func (r *GormObjectRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Object{}, id)
}
