package repositories

import (
	"context"
	"errors"
	"gorm.io/gorm"
	"minishop/internal/models/db_models"
)

type ProductRepositoryInterface interface {
	GetAllProducts(ctx context.Context) ([]db_models.Product, error)
	GetProductByID(ctx context.Context, id uint) (*db_models.Product, error)
}

func NewProductRepository(db *gorm.DB) ProductRepositoryInterface {
	return &ProductRepository{db: db}
}

type ProductRepository struct {
	db *gorm.DB
}

func (p *ProductRepository) GetAllProducts(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	if err := p.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *ProductRepository) GetProductByID(ctx context.Context, id uint) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}
