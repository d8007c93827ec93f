package repositories

import (
	"context"
	"sort"
	"sync"

	"catalog/internal/models"
)

// MemoryProductRepository is an in-memory implementation of ProductRepository.
type MemoryProductRepository struct {
	products map[int]models.Product
	lastID   int
	mu       sync.RWMutex
}

// NewMemoryProductRepository creates a new instance of MemoryProductRepository.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		products: make(map[int]models.Product),
	}
}

// Create adds a new product under the next free ID.
func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	stored := *product
	stored.ID = r.lastID
	r.products[stored.ID] = stored
	return &stored, nil
}

// Update modifies an existing product.
func (r *MemoryProductRepository) Update(_ context.Context, patch models.ProductPatch) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[patch.ID]
	if !ok {
		return nil, notFound(patch.ID)
	}
	patch.Apply(&product)
	r.products[product.ID] = product
	return &product, nil
}

// Delete removes a product by its ID.
func (r *MemoryProductRepository) Delete(_ context.Context, id int) (*models.DeletedProduct, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return nil, notFound(id)
	}
	delete(r.products, id)
	return &models.DeletedProduct{ID: id}, nil
}

// Find returns a page of products ordered by ID.
func (r *MemoryProductRepository) Find(_ context.Context, limit, offset int) ([]models.Product, error) {
	if err := checkPagination(limit, offset); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.products))
	for id := range r.products {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	if offset > len(ids) {
		offset = len(ids)
	}
	end := len(ids)
	if limit < end-offset {
		end = offset + limit
	}

	page := make([]models.Product, 0, end-offset)
	for _, id := range ids[offset:end] {
		page = append(page, r.products[id])
	}
	return page, nil
}

// FindOne returns a product by its ID.
func (r *MemoryProductRepository) FindOne(_ context.Context, id int) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, notFound(id)
	}
	return &product, nil
}
