package services

import (
	"context"

	"catalog/internal/models"
)

// ProductIndexer keeps a search index in step with the catalog. It is told
// about changes after they have been stored; its errors never fail the
// request.
type ProductIndexer interface {
	ProductUpdated(ctx context.Context, product models.Product) error
	ProductDeleted(ctx context.Context, id int) error
}

// NoopIndexer ignores every change.
type NoopIndexer struct{}

func (NoopIndexer) ProductUpdated(context.Context, models.Product) error { return nil }

func (NoopIndexer) ProductDeleted(context.Context, int) error { return nil }
