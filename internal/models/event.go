package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale event types.
const (
	SaleCreated = "sale.created"
	SaleUpdated = "sale.updated"
	SaleDeleted = "sale.deleted"
)

// SaleEvent is published after a sale is written or removed.
type SaleEvent struct {
	EventID    string          `json:"eventId"`
	Type       string          `json:"type"`
	SaleID     uint            `json:"saleId"`
	ProductID  uint            `json:"productId"`
	ClientID   uint            `json:"clientId"`
	Quantity   int             `json:"cantidad"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurredAt"`
}
