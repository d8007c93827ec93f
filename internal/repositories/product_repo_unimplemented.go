package repositories

import (
	"context"
	"sync/atomic"

	"catalog/internal/models"
)

// UnimplementedProductRepository stands in for a storage backend that has
// not been written yet. Create echoes the product back with a fresh ID;
// every other operation fails with ErrNotImplemented.
type UnimplementedProductRepository struct {
	lastID atomic.Int64
}

// NewUnimplementedProductRepository creates a new UnimplementedProductRepository.
func NewUnimplementedProductRepository() *UnimplementedProductRepository {
	return &UnimplementedProductRepository{}
}

// Create returns a copy of product with a new ID. Nothing is stored.
func (r *UnimplementedProductRepository) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	created := *product
	created.ID = int(r.lastID.Add(1))
	return &created, nil
}

func (r *UnimplementedProductRepository) Update(context.Context, models.ProductPatch) (*models.Product, error) {
	return nil, ErrNotImplemented
}

func (r *UnimplementedProductRepository) Delete(context.Context, int) (*models.DeletedProduct, error) {
	return nil, ErrNotImplemented
}

func (r *UnimplementedProductRepository) Find(context.Context, int, int) ([]models.Product, error) {
	return nil, ErrNotImplemented
}

func (r *UnimplementedProductRepository) FindOne(context.Context, int) (*models.Product, error) {
	return nil, ErrNotImplemented
}
