package domain

import "github.com/shopspring/decimal"

const (
	DefaultCurrency  = "GHS"
	DefaultCondition = "New"
)

// VendorListing is a vendor's offer for a catalog part. It is the only catalog
// record that changes after seeding.
type VendorListing struct {
	ID            int             `json:"id"`
	PartID        int             `json:"partId"`
	VendorID      int             `json:"vendorId"`
	VendorName    string          `json:"vendorName"`
	BrandName     string          `json:"brandName"`
	PartNumber    string          `json:"partNumber"`
	Price         decimal.Decimal `json:"price"`
	Currency      string          `json:"currency"`
	InStock       bool            `json:"inStock"`
	StockQuantity int             `json:"stockQuantity"`
	Condition     string          `json:"condition"`
}

// WithStock returns a copy with the stock quantity set and InStock derived from it.
func (l VendorListing) WithStock(quantity int) VendorListing {
	if quantity < 0 {
		quantity = 0
	}
	l.StockQuantity = quantity
	l.InStock = quantity > 0
	return l
}
