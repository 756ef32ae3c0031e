package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReceiptNumberLayout is the date portion of a receipt number.
const ReceiptNumberLayout = "January 02, 2006"

// ReceiptItem is one settled line on a receipt, snapshotted from an open
// order at reconciliation time.
type ReceiptItem struct {
	Item     string          `json:"item"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// Receipt captures the settlement of all open orders at a point in time.
type Receipt struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Number    string          `json:"number"`
	Items     []ReceiptItem   `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewReceiptNumber builds the human-readable receipt number from the
// settlement date and the settling member's name, e.g.
// "August 31, 2026_Ann".
func NewReceiptNumber(t time.Time, name string) string {
	return t.Format(ReceiptNumberLayout) + "_" + name
}

// TotalOf sums the line prices of the given items.
func TotalOf(items []ReceiptItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price)
	}

	return total
}

// ArchiveKey derives the archive object name for the receipt artifact,
// e.g. "August312026_Ann.txt". Spaces and commas in the receipt number
// are stripped so the key stays filesystem-safe.
func (r *Receipt) ArchiveKey() string {
	replacer := strings.NewReplacer(" ", "", ",", "")

	return replacer.Replace(r.Number) + ".txt"
}

// FormatItems renders receipt lines as "[(Cappuccino, 2, 6), (Latte, 1, 1)]".
func FormatItems(items []ReceiptItem) string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		sb.WriteString(item.Item)
		sb.WriteString(", ")
		sb.WriteString(decimal.NewFromInt(int64(item.Quantity)).String())
		sb.WriteString(", ")
		sb.WriteString(item.Price.String())
		sb.WriteString(")")
	}
	sb.WriteString("]")

	return sb.String()
}

// ArtifactText renders the archived receipt document.
func (r *Receipt) ArtifactText() string {
	var sb strings.Builder
	sb.WriteString("Summary of (Coffee_Type, Quantity, Price)\n")
	sb.WriteString(FormatItems(r.Items))
	sb.WriteString("\nTotal Price: ")
	sb.WriteString(r.Total.String())

	return sb.String()
}
