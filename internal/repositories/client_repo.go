package repositories

import (
	"context"

	"tienda/internal/models"
)

// ClientRepository defines the interface for client data access.
type ClientRepository interface {
	GetAll(ctx context.Context) ([]models.Client, error)
	GetByID(ctx context.Context, id uint) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) error
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)
}
