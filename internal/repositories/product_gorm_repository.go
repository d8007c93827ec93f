package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// Migrate creates or updates the products table.
func (r *GORMProductRepository) Migrate(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("failed to migrate products: %w", err)
	}
	return nil
}

// Create inserts a new product; the database assigns the ID.
func (r *GORMProductRepository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	stored := *product
	stored.ID = 0
	if err := r.db.WithContext(ctx).Create(&stored).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &stored, nil
}

// Update writes only the fields set in patch.
func (r *GORMProductRepository) Update(ctx context.Context, patch models.ProductPatch) (*models.Product, error) {
	product, err := r.FindOne(ctx, patch.ID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Price != nil {
		updates["price"] = *patch.Price
	}
	if patch.Stock != nil {
		updates["stock"] = *patch.Stock
	}
	if len(updates) == 0 {
		return product, nil
	}

	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", patch.ID).Updates(updates)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", patch.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(patch.ID)
	}

	patch.Apply(product)
	return product, nil
}

// Delete deletes a product by its ID.
func (r *GORMProductRepository) Delete(ctx context.Context, id int) (*models.DeletedProduct, error) {
	res := r.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to delete product %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound(id)
	}
	return &models.DeletedProduct{ID: id}, nil
}

// Find returns a page of products ordered by ID.
func (r *GORMProductRepository) Find(ctx context.Context, limit, offset int) ([]models.Product, error) {
	if err := checkPagination(limit, offset); err != nil {
		return nil, err
	}

	products := []models.Product{}
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// FindOne retrieves a single product by its ID.
func (r *GORMProductRepository) FindOne(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, fmt.Errorf("failed to get product %d: %w", id, err)
	}
	return &product, nil
}
