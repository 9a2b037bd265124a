package models

import "github.com/shopspring/decimal"

// Product represents a product in the store.
type Product struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Name          string          `json:"nombre" gorm:"column:nombre;type:varchar(100);uniqueIndex;not null"`
	Description   *string         `json:"descripcion" gorm:"column:descripcion;type:varchar(500)"`
	Price         decimal.Decimal `json:"precio" gorm:"column:precio;type:decimal(18,2);not null"`
	StockQuantity int             `json:"cantidadStock" gorm:"column:cantidad_stock;not null"`
	CategoryID    uint            `json:"-" gorm:"column:categoria_id;not null;index"`
	Category      *Category       `json:"categoria" gorm:"foreignKey:CategoryID"`
}

func (Product) TableName() string { return "productos" }
