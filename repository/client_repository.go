package repository

import (
	"context"

	"order-management-service/models"

	"gorm.io/gorm"
)

// ClientRepository defines data-access operations for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	FindByCPF(ctx context.Context, cpf string) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) error
}

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) ClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *GormClientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormClientRepository) FindByCPF(ctx context.Context, cpf string) (*models.Client, error) {
	var c models.Client
	if err := r.db.WithContext(ctx).
		Where("cpf = ?", cpf).
		First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormClientRepository) FindAll(ctx context.Context) ([]models.Client, error) {
	clients := []models.Client{}
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *GormClientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

// Delete returns gorm.ErrRecordNotFound when no row has the id.
func (r *GormClientRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Client{}, id)
}
