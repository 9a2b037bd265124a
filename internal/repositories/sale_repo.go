package repositories

import (
	"context"

	"tienda/internal/models"
)

// SaleRepository defines the interface for sale data access.
// Reads load the product (with its category) and the client.
type SaleRepository interface {
	GetAll(ctx context.Context) ([]models.Sale, error)
	GetByID(ctx context.Context, id uint) (*models.Sale, error)
	Create(ctx context.Context, sale *models.Sale) error
	Update(ctx context.Context, sale *models.Sale) error
	Delete(ctx context.Context, id uint) error
}
