package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlacedOnLayout is the display format recorded on an order when it is placed.
const PlacedOnLayout = "January 02, 2006"

// Order represents a single coffee order placed by a member.
// Price is the line total (unit price times quantity) snapshotted at
// placement time; later catalog edits do not touch it.
type Order struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Item      string          `json:"item"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	PlacedOn  string          `json:"placed_on"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// IsOpen reports whether the order is still awaiting settlement.
func (o *Order) IsOpen() bool {
	return o.Status == OrderStatusOpen
}
