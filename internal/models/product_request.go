package models

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"min=1"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// Product converts the request into an unsaved Product.
func (r CreateProductRequest) Product() *Product {
	return &Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}

// UpdateProductRequest is the body of PATCH /products/:id. Every field is
// optional; a name that is present must not be the empty string.
type UpdateProductRequest struct {
	Name        *string  `json:"name" validate:"omitnil,notempty"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitnil,min=1"`
	Stock       *int     `json:"stock" validate:"omitnil,gte=0"`
}

// Patch keys the request by id.
func (r UpdateProductRequest) Patch(id int) ProductPatch {
	return ProductPatch{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
	}
}
