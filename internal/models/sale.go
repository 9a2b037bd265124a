package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records a quantity of one product sold to one client.
type Sale struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	ProductID uint            `json:"-" gorm:"column:producto_id;not null;index"`
	Product   *Product        `json:"producto" gorm:"foreignKey:ProductID"`
	ClientID  uint            `json:"-" gorm:"column:cliente_id;not null;index"`
	Client    *Client         `json:"cliente" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Quantity  int             `json:"cantidad" gorm:"column:cantidad;not null"`
	SaleDate  time.Time       `json:"fechaVenta" gorm:"column:fecha_venta;not null"`
	Total     decimal.Decimal `json:"total" gorm:"column:total;type:decimal(18,2);not null"`
}

func (Sale) TableName() string { return "ventas" }

// All lists every persisted model in migration order.
func All() []interface{} {
	return []interface{}{&Category{}, &Product{}, &Client{}, &Sale{}}
}
