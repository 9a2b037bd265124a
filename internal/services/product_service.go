package services

import (
	"context"
	"errors"

	"tienda/internal/models"
	"tienda/internal/repositories"
	"tienda/internal/validation"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo  repositories.ProductRepository
	rules *validation.Engine
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, rules *validation.Engine) *ProductService {
	return &ProductService{
		repo:  repo,
		rules: rules,
	}
}

// GetAllProducts retrieves all products with their categories.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, validation.NotFoundFor(validation.ProductResource)
	}
	return product, err
}

// CreateProduct validates the product, swaps in the stored category and
// saves it.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	product.ID = 0
	if err := s.rules.Product(ctx, product, 0); err != nil {
		return err
	}
	category, err := s.rules.ResolveCategory(ctx, product.Category)
	if err != nil {
		return err
	}

	product.Category = category
	product.CategoryID = category.ID
	return s.repo.Create(ctx, product)
}

// UpdateProduct overwrites the product at id with the payload.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, product *models.Product) (*models.Product, error) {
	if product.ID != id {
		return nil, validation.IDMismatchFor(validation.ProductResource)
	}
	existing, err := s.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.rules.Product(ctx, product, id); err != nil {
		return nil, err
	}
	category, err := s.rules.ResolveCategory(ctx, product.Category)
	if err != nil {
		return nil, err
	}

	existing.Name = product.Name
	existing.Description = product.Description
	existing.Price = product.Price
	existing.StockQuantity = product.StockQuantity
	existing.Category = category
	existing.CategoryID = category.ID
	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return validation.NotFoundFor(validation.ProductResource)
	}
	return err
}
