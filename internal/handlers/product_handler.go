package handlers

import (
	"context"

	"catalog/internal/models"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// ProductService is the set of catalog operations the handler delegates to.
type ProductService interface {
	CreateProduct(ctx context.Context, input models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, patch models.ProductPatch) (*models.Product, error)
	GetProducts(ctx context.Context, limit, offset int) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) (*models.DeletedProduct, error)
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service   ProductService
	validator *validation.Validator
	log       zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service ProductService, validator *validation.Validator, log zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: validator,
		log:       log,
	}
}

// RegisterRoutes registers the product routes on router.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Post("", h.HandleCreateProduct)
	productRoutes.Get("", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleCreateProduct validates the body and creates a product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	input, err := validation.Validate[models.CreateProductRequest](h.validator, c.Body())
	if err != nil {
		return h.validationFailed(c, err)
	}

	product, err := h.service.CreateProduct(c.UserContext(), *input)
	if err != nil {
		h.log.Error().Err(err).Msg("Error creating product")
		return operationFailed(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct validates the body and applies it to the product
// named by :id.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := parseID(c.Params("id"))

	input, err := validation.Validate[models.UpdateProductRequest](h.validator, c.Body())
	if err != nil {
		return h.validationFailed(c, err)
	}

	product, err := h.service.UpdateProduct(c.UserContext(), input.Patch(id))
	if err != nil {
		h.log.Error().Err(err).Int("product_id", id).Msg("Error updating product")
		return operationFailed(c, err)
	}
	return c.JSON(product)
}

// HandleGetProducts returns a page of products selected by the limit and
// offset query parameters.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	limit := queryNumber(c.Query("limit"), defaultLimit)
	offset := queryNumber(c.Query("offset"), defaultOffset)

	products, err := h.service.GetProducts(c.UserContext(), limit, offset)
	if err != nil {
		h.log.Error().Err(err).Int("limit", limit).Int("offset", offset).Msg("Error getting products")
		return operationFailed(c, err)
	}
	return c.JSON(products)
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := parseID(c.Params("id"))

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		h.log.Error().Err(err).Int("product_id", id).Msg("Error getting product")
		return operationFailed(c, err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product and responds with its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := parseID(c.Params("id"))

	deleted, err := h.service.DeleteProduct(c.UserContext(), id)
	if err != nil {
		h.log.Error().Err(err).Int("product_id", id).Msg("Error deleting product")
		return operationFailed(c, err)
	}
	return c.JSON(deleted)
}
