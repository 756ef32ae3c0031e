// Package catalog holds the fixed menu of coffee items and their unit prices.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Item is a single menu entry.
type Item struct {
	Name  string
	Price decimal.Decimal
}

// Catalog is an immutable name-to-price menu. Lookups are case-sensitive;
// the menu is small enough that a copy per listing is fine.
type Catalog struct {
	items  []Item
	prices map[string]decimal.Decimal
}

// New builds a Catalog from the given items. Duplicate names keep the
// last price seen.
func New(items []Item) *Catalog {
	prices := make(map[string]decimal.Decimal, len(items))
	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if _, ok := prices[item.Name]; !ok {
			kept = append(kept, item)
		}
		prices[item.Name] = item.Price
	}
	for i := range kept {
		kept[i].Price = prices[kept[i].Name]
	}

	return &Catalog{items: kept, prices: prices}
}

// Price returns the unit price for the named item.
func (c *Catalog) Price(name string) (decimal.Decimal, bool) {
	price, ok := c.prices[name]

	return price, ok
}

// Items returns the menu entries in their configured order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)

	return out
}
