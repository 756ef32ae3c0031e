package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testCatalog() *Catalog {
	return New([]Item{
		{Name: "Cappuccino", Price: decimal.NewFromInt(3)},
		{Name: "Mocha", Price: decimal.NewFromInt(2)},
		{Name: "Latte", Price: decimal.NewFromInt(1)},
	})
}

func TestCatalog_Price(t *testing.T) {
	c := testCatalog()

	price, ok := c.Price("Cappuccino")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(3)))

	_, ok = c.Price("Espresso")
	assert.False(t, ok)

	// Lookups are case-sensitive.
	_, ok = c.Price("cappuccino")
	assert.False(t, ok)
}

func TestCatalog_Items_KeepConfiguredOrder(t *testing.T) {
	items := testCatalog().Items()

	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.Name
	}
	assert.Equal(t, []string{"Cappuccino", "Mocha", "Latte"}, names)
}

func TestCatalog_DuplicateNamesKeepLastPrice(t *testing.T) {
	c := New([]Item{
		{Name: "Latte", Price: decimal.NewFromInt(1)},
		{Name: "Latte", Price: decimal.NewFromInt(4)},
	})

	price, ok := c.Price("Latte")
	assert.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(4)))
	assert.Len(t, c.Items(), 1)
}
