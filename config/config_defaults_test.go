package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	assert.Equal(t, "cc1234", cfg.Auth.ResetPassword)
	assert.Equal(t, "receipts", cfg.Receipts.Dir)
	assert.Equal(t, 10, cfg.Summary.StartHour)
	assert.Equal(t, 11, cfg.Summary.EndHour)

	// A config file without a catalog section must still boot a usable menu.
	require.Len(t, cfg.Catalog, 3)
	assert.Equal(t, CatalogItem{Name: "Cappuccino", Price: 3}, cfg.Catalog[0])
	assert.Equal(t, CatalogItem{Name: "Mocha", Price: 2}, cfg.Catalog[1])
	assert.Equal(t, CatalogItem{Name: "Latte", Price: 1}, cfg.Catalog[2])
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{ResetPassword: "changeme"},
		Catalog: []CatalogItem{{Name: "Flat White", Price: 4}},
	}
	cfg.applyDefaults()

	assert.Equal(t, "changeme", cfg.Auth.ResetPassword)
	require.Len(t, cfg.Catalog, 1)
	assert.Equal(t, "Flat White", cfg.Catalog[0].Name)
}
