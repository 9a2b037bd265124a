package database

import (
	"context"
	"fmt"
	"log/slog"

	"tienda/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed inserts a small catalogue when the store is empty.
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("database: seed: %w", err)
	}
	if count > 0 {
		slog.Info("seed skipped, store already has categories", "count", count)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		perifericos := models.Category{Name: "Periféricos"}
		if err := tx.Create(&perifericos).Error; err != nil {
			return fmt.Errorf("database: seed category: %w", err)
		}

		products := []models.Product{
			{Name: "Laptop", Price: decimal.NewFromInt(1200), StockQuantity: 10, CategoryID: perifericos.ID},
			{Name: "Teclado", Price: decimal.NewFromInt(75), StockQuantity: 25, CategoryID: perifericos.ID},
			{Name: "Mouse", Price: decimal.NewFromInt(25), StockQuantity: 50, CategoryID: perifericos.ID},
		}
		for i := range products {
			if err := tx.Omit("Category").Create(&products[i]).Error; err != nil {
				return fmt.Errorf("database: seed product %s: %w", products[i].Name, err)
			}
			slog.Info("seeded product", "name", products[i].Name, "id", products[i].ID)
		}
		return nil
	})
}
