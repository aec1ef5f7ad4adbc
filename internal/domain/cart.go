package domain

import "github.com/shopspring/decimal"

type CartItem struct {
	ID       int           `json:"id"`
	Listing  VendorListing `json:"vendorListing"`
	PartName string        `json:"partName"`
	Quantity int           `json:"quantity"`
}

func (c CartItem) TotalPrice() decimal.Decimal {
	return c.Listing.Price.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
