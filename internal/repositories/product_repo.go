package repositories

import (
	"context"

	"tienda/internal/models"
)

// ProductRepository defines the interface for product data access.
// Reads always carry the product's category.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id uint) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uint) error
	// ExistsByName reports whether a product other than excludeID uses name.
	// An excludeID of 0 excludes nothing.
	ExistsByName(ctx context.Context, name string, excludeID uint) (bool, error)
}
