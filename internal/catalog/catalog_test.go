package catalog

import (
	"testing"

	"parts-service/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Len(t, c.Vendors, 8)
	assert.Len(t, c.Categories, 10)
	assert.Len(t, c.Parts, 51)
	assert.Len(t, c.Listings, 110)

	assert.Equal(t, "Accra Auto Parts", c.Vendors[0].Name)
	assert.True(t, c.Vendors[0].Verified)

	brakes := c.Categories[0]
	assert.Equal(t, "Brake & Wheel Hub", brakes.Name)
	require.NotEmpty(t, brakes.Subcategories)
	require.NotNil(t, brakes.Subcategories[0].ParentID)
	assert.Equal(t, 1, *brakes.Subcategories[0].ParentID)

	first := c.Listings[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 25, first.StockQuantity)
	assert.True(t, first.InStock)
	assert.True(t, decimal.NewFromInt(185).Equal(first.Price))
	assert.Equal(t, domain.DefaultCurrency, first.Currency)
	assert.Equal(t, domain.DefaultCondition, first.Condition)
}

func TestLoad_ListingsReferenceCatalog(t *testing.T) {
	c := MustLoad()

	parts := map[int]bool{}
	for _, p := range c.Parts {
		parts[p.ID] = true
	}
	vendors := map[int]bool{}
	for _, v := range c.Vendors {
		vendors[v.ID] = true
	}

	maxID := 0
	for _, l := range c.Listings {
		assert.True(t, parts[l.PartID], "listing %d references unknown part %d", l.ID, l.PartID)
		assert.True(t, vendors[l.VendorID], "listing %d references unknown vendor %d", l.ID, l.VendorID)
		assert.Equal(t, l.StockQuantity > 0, l.InStock, "listing %d", l.ID)
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	assert.Equal(t, 110, maxID)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("vendors: {not: [a list"))
	assert.Error(t, err)
}

func TestLoadVehicles(t *testing.T) {
	v, err := LoadVehicles()
	require.NoError(t, err)

	assert.Len(t, v.Makes, 10)
	assert.Equal(t, "Toyota", v.Makes[0].Name)
	assert.Len(t, v.Engines, 20)

	years := v.YearsForMake(5)
	require.NotEmpty(t, years)
	assert.Equal(t, 2024, years[0])
	assert.Equal(t, 2014, years[len(years)-1])

	assert.Empty(t, v.YearsForMake(99))
}

func TestDemoOrders(t *testing.T) {
	orders, err := DemoOrders(3)
	require.NoError(t, err)
	require.Len(t, orders, 5)

	for _, o := range orders {
		assert.Equal(t, 3, o.VendorID)
		assert.True(t, o.Status.Valid())
		assert.NotEmpty(t, o.Items)
	}
	assert.Equal(t, domain.StatusPending, orders[0].Status)
	assert.True(t, decimal.NewFromInt(370).Equal(orders[0].TotalAmount()))
}
