package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptModel mirrors the 'receipts' table. Items holds the settled lines
// as a JSONB document; the receipt is immutable once written.
type ReceiptModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	Number    string          `gorm:"type:varchar(64);not null"`
	Items     []byte          `gorm:"type:jsonb;not null"`
	Total     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReceiptModel) TableName() string {
	return "receipts"
}
