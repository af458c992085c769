package services

import (
	"context"
	"time"

	"github.com/shopease/core/internal/domain/entities"
	"github.com/shopease/core/internal/infrastructure/logger"
	"github.com/shopease/core/internal/ports"
)

// CreateProductRequest carries the fields accepted when creating a product.
// Price and stock must be non-negative; anything else is rejected up front
// rather than stored as-is.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

// ProductService handles catalog operations
type ProductService struct {
	repo   ports.ProductRepository
	logger *logger.Logger
}

// NewProductService creates a new product service
func NewProductService(repo ports.ProductRepository, logger *logger.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

// List returns the full catalog. An absent collection is an empty catalog,
// not an error.
func (s *ProductService) List(ctx context.Context) ([]entities.Product, error) {
	return s.repo.List(ctx)
}

// Create adds a product with a timestamp-derived id.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (entities.Product, error) {
	product := entities.Product{
		ID:          entities.NewProductID(time.Now()),
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
		Image:       req.Image,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return entities.Product{}, err
	}

	s.logger.Info("Product created", "product_id", created.ID, "name", created.Name)
	return created, nil
}

// Update overlays the provided fields onto the matching product.
func (s *ProductService) Update(ctx context.Context, id string, update ports.ProductUpdate) (entities.Product, error) {
	return s.repo.Update(ctx, id, update)
}

// Delete removes the matching product. Idempotent by contract.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", "product_id", id)
	return nil
}
