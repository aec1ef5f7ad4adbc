package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	tests := []struct {
		name     string
		from     OrderStatus
		to       OrderStatus
		expected bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending straight to shipped", StatusPending, StatusShipped, true},
		{"processing back to confirmed", StatusProcessing, StatusConfirmed, false},
		{"same status", StatusConfirmed, StatusConfirmed, false},
		{"cancel pending", StatusPending, StatusCancelled, true},
		{"cancel shipped", StatusShipped, StatusCancelled, true},
		{"delivered is terminal", StatusDelivered, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"unknown target", StatusPending, OrderStatus("LOST"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.from.CanTransition(tt.to))
		})
	}
}

func TestVehicleSelection_Breadcrumb(t *testing.T) {
	year := 2024
	sel := VehicleSelection{
		Make:  &VehicleMake{ID: 1, Name: "Toyota"},
		Model: &VehicleModel{ID: 1, Name: "Corolla", MakeID: 1, Year: 2024},
	}
	assert.Equal(t, "Toyota > Corolla", sel.Breadcrumb())
	assert.False(t, sel.IsComplete())

	sel.Year = &year
	sel.Engine = &VehicleEngine{ID: 1, Description: "1.8L L4 DOHC", ModelID: 1}
	assert.Equal(t, "Toyota > Corolla > 2024 > 1.8L L4 DOHC", sel.Breadcrumb())
	assert.True(t, sel.IsComplete())

	assert.Equal(t, "", VehicleSelection{}.Breadcrumb())
}

func TestCartItem_TotalPrice(t *testing.T) {
	item := CartItem{
		ID:       1,
		Listing:  VendorListing{ID: 1, Price: decimal.RequireFromString("185.50")},
		PartName: "Front Brake Pad Set",
		Quantity: 3,
	}
	assert.True(t, decimal.RequireFromString("556.50").Equal(item.TotalPrice()))
}

func TestOrder_Totals(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{UnitPrice: decimal.NewFromInt(185), Quantity: 2},
			{UnitPrice: decimal.NewFromInt(35), Quantity: 3},
		},
	}
	assert.True(t, decimal.NewFromInt(475).Equal(order.TotalAmount()))
	assert.Equal(t, 5, order.ItemCount())
}

func TestVendorListing_WithStock(t *testing.T) {
	l := VendorListing{ID: 1, StockQuantity: 5, InStock: true}

	out := l.WithStock(0)
	assert.Equal(t, 0, out.StockQuantity)
	assert.False(t, out.InStock)

	out = l.WithStock(-3)
	assert.Equal(t, 0, out.StockQuantity)
	assert.False(t, out.InStock)

	out = out.WithStock(4)
	assert.True(t, out.InStock)
}

func TestNewCheckoutCompletedEvent(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	items := []CartItem{
		{ID: 1, Listing: VendorListing{ID: 1, VendorID: 1, Price: decimal.NewFromInt(185)}, PartName: "Front Brake Pad Set", Quantity: 2},
		{ID: 2, Listing: VendorListing{ID: 11, VendorID: 1, Price: decimal.NewFromInt(35)}, PartName: "Oil Filter", Quantity: 1},
	}

	evt := NewCheckoutCompletedEvent("session-1", items, at)

	assert.Equal(t, "session-1", evt.SessionID)
	assert.Len(t, evt.Lines, 2)
	assert.Equal(t, 3, evt.ItemCount)
	assert.True(t, decimal.NewFromInt(405).Equal(evt.Total))
	assert.Equal(t, at, evt.CompletedAt)
}

func TestListingAction_Pattern(t *testing.T) {
	assert.Equal(t, PatternListingCreated, ListingCreated.Pattern())
	assert.Equal(t, PatternListingUpdated, ListingUpdated.Pattern())
	assert.Equal(t, PatternListingRemoved, ListingRemoved.Pattern())
}
