package repositories

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/models"
)

var (
	// ErrNotFound is returned when no product has the requested ID.
	ErrNotFound = errors.New("product not found")
	// ErrNotImplemented is returned by every operation the unimplemented
	// backend does not support.
	ErrNotImplemented = errors.New("Method not implemented.")
	// ErrInvalidPagination is returned by Find for a negative limit or offset.
	ErrInvalidPagination = errors.New("limit and offset must not be negative")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Create stores product and returns the stored record with its ID set.
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	// Update applies the set fields of patch to the product with patch.ID.
	Update(ctx context.Context, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int) (*models.DeletedProduct, error)
	// Find returns at most limit products, skipping the first offset.
	Find(ctx context.Context, limit, offset int) ([]models.Product, error)
	FindOne(ctx context.Context, id int) (*models.Product, error)
}

func notFound(id int) error {
	return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
}

func checkPagination(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return fmt.Errorf("limit %d, offset %d: %w", limit, offset, ErrInvalidPagination)
	}
	return nil
}
