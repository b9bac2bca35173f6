package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/treko-inventory/internal/model"
	"github.com/iyhunko/treko-inventory/internal/repository"
	"github.com/iyhunko/treko-inventory/internal/service"
)

// ProductService is the catalog behaviour the controller depends on.
type ProductService interface {
	ListProducts(ctx context.Context) ([]*model.Product, error)
	CreateProduct(ctx context.Context, name, description string, price float64) (*model.Product, error)
	UpdateProduct(ctx context.Context, id int64, name, description string, price float64) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ProductController handles HTTP requests for product operations.
type ProductController struct {
	productService ProductService
}

// NewProductController creates a new ProductController with the given product service.
func NewProductController(productService ProductService) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ProductRequest is the body of create and update requests.
type ProductRequest struct {
	Name        string  `json:"nome" binding:"required"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco" binding:"required,gt=0"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
}

// ListProducts handles GET /produtos. The body is always a JSON array.
func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.productService.ListProducts(c.Request.Context())
	if err != nil {
		slog.Error("failed to list products", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	response := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		response = append(response, toProductResponse(product))
	}

	c.JSON(http.StatusOK, response)
}

// CreateProduct handles the HTTP POST request for creating a new product.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	req, ok := bindProduct(c)
	if !ok {
		return
	}

	created, err := pc.productService.CreateProduct(c.Request.Context(), req.Name, req.Description, req.Price)
	if err != nil {
		writeProductError(c, err, "failed to create product")
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(created))
}

// UpdateProduct handles PUT /produtos/:id.
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	req, ok := bindProduct(c)
	if !ok {
		return
	}

	updated, err := pc.productService.UpdateProduct(c.Request.Context(), id, req.Name, req.Description, req.Price)
	if err != nil {
		writeProductError(c, err, "failed to update product")
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

// DeleteProduct handles the HTTP DELETE request for deleting a product by ID.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	if err := pc.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		writeProductError(c, err, "failed to delete product")
		return
	}

	c.Status(http.StatusNoContent)
}

// bindProduct decodes the body. Validator output is logged, not returned:
// clients get the same message the service uses for an invalid product.
func bindProduct(c *gin.Context) (ProductRequest, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("invalid product request", slog.Any("err", err))
		c.JSON(http.StatusBadRequest, gin.H{"error": service.ErrInvalidProduct.Error()})
		return ProductRequest{}, false
	}
	return req, true
}

func productID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return 0, false
	}
	return id, true
}

func writeProductError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, service.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error(fallback, slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func toProductResponse(product *model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
	}
}
