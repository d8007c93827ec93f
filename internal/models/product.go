package models

// Product represents a product in the catalog. ID is zero until the product
// has been stored.
type Product struct {
	ID          int     `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" gorm:"size:100;not null"`
	Description string  `json:"description" gorm:"size:500"`
	Price       float64 `json:"price" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null;default:0"`
}

// TableName returns the table name for Product model.
func (Product) TableName() string {
	return "products"
}

// ProductPatch carries a partial update keyed by ID. Nil fields are left
// unchanged.
type ProductPatch struct {
	ID          int
	Name        *string
	Description *string
	Price       *float64
	Stock       *int
}

// Apply copies the set fields of the patch onto p.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
}

// DeletedProduct is returned after a product has been removed.
type DeletedProduct struct {
	ID int `json:"id"`
}
