package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewReceiptNumber(t *testing.T) {
	at := time.Date(2026, time.August, 31, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "August 31, 2026_Ann", NewReceiptNumber(at, "Ann"))
}

func TestReceipt_ArchiveKey(t *testing.T) {
	receipt := &Receipt{Number: "August 31, 2026_Ann"}

	assert.Equal(t, "August312026_Ann.txt", receipt.ArchiveKey())
}

func TestFormatItems(t *testing.T) {
	items := []ReceiptItem{
		{Item: "Cappuccino", Quantity: 2, Price: decimal.NewFromInt(6)},
		{Item: "Latte", Quantity: 1, Price: decimal.NewFromInt(1)},
	}

	assert.Equal(t, "[(Cappuccino, 2, 6), (Latte, 1, 1)]", FormatItems(items))
	assert.Equal(t, "[]", FormatItems(nil))
}

func TestTotalOf(t *testing.T) {
	items := []ReceiptItem{
		{Item: "Cappuccino", Quantity: 2, Price: decimal.NewFromInt(6)},
		{Item: "Latte", Quantity: 1, Price: decimal.NewFromInt(1)},
	}

	assert.True(t, TotalOf(items).Equal(decimal.NewFromInt(7)))
	assert.True(t, TotalOf(nil).IsZero())
}

func TestReceipt_ArtifactText(t *testing.T) {
	receipt := &Receipt{
		ID:     uuid.New(),
		Number: "August 31, 2026_Ann",
		Items: []ReceiptItem{
			{Item: "Cappuccino", Quantity: 2, Price: decimal.NewFromInt(6)},
			{Item: "Latte", Quantity: 1, Price: decimal.NewFromInt(1)},
		},
		Total: decimal.NewFromInt(7),
	}

	want := "Summary of (Coffee_Type, Quantity, Price)\n" +
		"[(Cappuccino, 2, 6), (Latte, 1, 1)]\n" +
		"Total Price: 7"
	assert.Equal(t, want, receipt.ArtifactText())
}
