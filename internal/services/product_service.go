package services

import (
	"context"
	"fmt"
	"time"

	"minishop/internal/models/db_models"
	"minishop/internal/repositories"
	"minishop/pkg/memcache"
	"minishop/pkg/utils"
)

// Products are memoized for a short window; the catalog changes rarely but
// is read on every checkout.
const productCacheTTL = 300 * time.Second

const productListCacheKey = "products_all"

type ProductServiceInterface interface {
	GetAllProducts(ctx context.Context) ([]db_models.Product, error)
	GetProductByID(ctx context.Context, id uint) (*db_models.Product, error)
}

func NewProductService(productRepo repositories.ProductRepositoryInterface, cache memcache.Store) ProductServiceInterface {
	return &ProductService{
		productRepo: productRepo,
		cache:       cache,
	}
}

type ProductService struct {
	productRepo repositories.ProductRepositoryInterface
	cache       memcache.Store
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]db_models.Product, error) {
	if cached, ok := s.cache.Get(productListCacheKey); ok {
		return cached.([]db_models.Product), nil
	}

	products, err := s.productRepo.GetAllProducts(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.cache.Set(productListCacheKey, products, productCacheTTL)
	return products, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*db_models.Product, error) {
	key := fmt.Sprintf("product_%d", id)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*db_models.Product), nil
	}

	product, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if product == nil {
		return nil, utils.ErrProductNotFound
	}

	s.cache.Set(key, product, productCacheTTL)
	return product, nil
}
