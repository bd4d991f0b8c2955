package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"minishop/internal/models/db_models"
	"minishop/pkg/memcache"
	"minishop/pkg/utils"
)

type fakeProductRepo struct {
	products []db_models.Product
	getAll   int
	getByID  int
}

func (f *fakeProductRepo) GetAllProducts(ctx context.Context) ([]db_models.Product, error) {
	f.getAll++
	return f.products, nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id uint) (*db_models.Product, error) {
	f.getByID++
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func testProducts() []db_models.Product {
	return []db_models.Product{
		{BaseModel: db_models.BaseModel{ID: 1}, Name: "Widget", Price: decimal.RequireFromString("29.99"), Stock: 10, IsActive: true},
		{BaseModel: db_models.BaseModel{ID: 2}, Name: "Sprocket", Price: decimal.RequireFromString("5.00"), Stock: 3, IsActive: true},
	}
}

func TestGetAllProductsCaches(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	svc := NewProductService(repo, memcache.NewTTLStore())

	first, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.GetAllProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)

	assert.Equal(t, 1, repo.getAll, "second read must come from cache")
}

func TestGetProductByIDCaches(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	svc := NewProductService(repo, memcache.NewTTLStore())

	product, err := svc.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Widget", product.Name)

	_, err = svc.GetProductByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.getByID)
}

func TestGetProductByIDNotFound(t *testing.T) {
	repo := &fakeProductRepo{products: testProducts()}
	svc := NewProductService(repo, memcache.NewTTLStore())

	_, err := svc.GetProductByID(context.Background(), 99)
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}
