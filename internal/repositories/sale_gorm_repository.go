package repositories

import (
	"context"
	"errors"
	"fmt"

	"tienda/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMSaleRepository is a GORM implementation of SaleRepository.
type GORMSaleRepository struct {
	db *gorm.DB
}

func NewGORMSaleRepository(db *gorm.DB) *GORMSaleRepository {
	return &GORMSaleRepository{db: db}
}

// withDetail eager-loads the product, its category and the client.
func (r *GORMSaleRepository) withDetail(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Product.Category").Preload("Client")
}

func (r *GORMSaleRepository) GetAll(ctx context.Context) ([]models.Sale, error) {
	var sales []models.Sale
	if err := r.withDetail(ctx).Order("id").Find(&sales).Error; err != nil {
		return nil, fmt.Errorf("failed to get all sales: %w", err)
	}
	return sales, nil
}

func (r *GORMSaleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	var sale models.Sale
	if err := r.withDetail(ctx).First(&sale, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sale with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sale by ID %d: %w", id, err)
	}
	return &sale, nil
}

// Create inserts the sale row only; product and client are referenced by id.
func (r *GORMSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(sale).Error; err != nil {
		return fmt.Errorf("failed to create sale: %w", err)
	}
	return nil
}

func (r *GORMSaleRepository) Update(ctx context.Context, sale *models.Sale) error {
	res := r.db.WithContext(ctx).Model(sale).Select("*").Omit(clause.Associations).Updates(sale)
	if res.Error != nil {
		return fmt.Errorf("failed to update sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale with ID %d for update: %w", sale.ID, ErrNotFound)
	}
	return nil
}

func (r *GORMSaleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Sale{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete sale: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sale with ID %d for deletion: %w", id, ErrNotFound)
	}
	return nil
}
