package services

import (
	"context"
	"errors"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/rs/zerolog"
)

// ErrUnableToCreateProduct is returned when the repository reports success
// but hands back a product without an ID.
var ErrUnableToCreateProduct = errors.New("Unable to create product")

// ProductService handles business logic related to products.
type ProductService struct {
	repo    repositories.ProductRepository
	indexer ProductIndexer
	log     zerolog.Logger
}

// NewProductService creates a new ProductService. A nil indexer disables
// index synchronization.
func NewProductService(repo repositories.ProductRepository, indexer ProductIndexer, log zerolog.Logger) *ProductService {
	if indexer == nil {
		indexer = NoopIndexer{}
	}
	return &ProductService{
		repo:    repo,
		indexer: indexer,
		log:     log,
	}
}

// CreateProduct stores a new product.
func (s *ProductService) CreateProduct(ctx context.Context, input models.CreateProductRequest) (*models.Product, error) {
	product, err := s.repo.Create(ctx, input.Product())
	if err != nil {
		return nil, err
	}
	if product == nil || product.ID == 0 {
		return nil, ErrUnableToCreateProduct
	}
	return product, nil
}

// UpdateProduct applies a partial update and notifies the search index.
func (s *ProductService) UpdateProduct(ctx context.Context, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(ctx, patch)
	if err != nil {
		return nil, err
	}

	if product != nil {
		if err := s.indexer.ProductUpdated(ctx, *product); err != nil {
			s.log.Warn().Err(err).Int("product_id", product.ID).Msg("failed to sync updated product to index")
		}
	}
	return product, nil
}

// GetProducts returns a page of products.
func (s *ProductService) GetProducts(ctx context.Context, limit, offset int) ([]models.Product, error) {
	return s.repo.Find(ctx, limit, offset)
}

// GetProduct retrieves a single product by its ID.
func (s *ProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return s.repo.FindOne(ctx, id)
}

// DeleteProduct deletes a product by its ID and removes it from the search
// index.
func (s *ProductService) DeleteProduct(ctx context.Context, id int) (*models.DeletedProduct, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	if deleted != nil {
		if err := s.indexer.ProductDeleted(ctx, deleted.ID); err != nil {
			s.log.Warn().Err(err).Int("product_id", deleted.ID).Msg("failed to sync deleted product to index")
		}
	}
	return deleted, nil
}
