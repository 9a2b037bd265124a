package repositories

import (
	"context"
	"errors"
	"fmt"

	"tienda/internal/models"

	"gorm.io/gorm"
)

// GORMClientRepository is a GORM implementation of ClientRepository.
type GORMClientRepository struct {
	db *gorm.DB
}

func NewGORMClientRepository(db *gorm.DB) *GORMClientRepository {
	return &GORMClientRepository{db: db}
}

func (r *GORMClientRepository) GetAll(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

func (r *GORMClientRepository) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get client by ID %d: %w", id, err)
	}
	return &client, nil
}

func (r *GORMClientRepository) Create(ctx context.Context, client *models.Client) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *GORMClientRepository) Update(ctx context.Context, client *models.Client) error {
	res := r.db.WithContext(ctx).Model(client).Select("*").Updates(client)
	if res.Error != nil {
		return fmt.Errorf("failed to update client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("client with ID %d for update: %w", client.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the client; its sales go with it through ON DELETE CASCADE.
func (r *GORMClientRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Client{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("client with ID %d for deletion: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GORMClientRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	q := r.db.WithContext(ctx).Model(&models.Client{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to look up client email %q: %w", email, err)
	}
	return count > 0, nil
}
