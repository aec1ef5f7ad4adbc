package http

import "github.com/shopspring/decimal"

type SourceResponse struct {
	Source string `json:"source"`
}

type AddCartItemRequest struct {
	ListingID int `json:"listingId" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type CreateListingRequest struct {
	PartID        int             `json:"partId" binding:"required,min=1"`
	BrandName     string          `json:"brandName" binding:"required"`
	PartNumber    string          `json:"partNumber"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stockQuantity" binding:"required,min=0"`
	Condition     string          `json:"condition"`
}

type UpdateListingRequest struct {
	Price         decimal.Decimal `json:"price"`
	StockQuantity *int            `json:"stockQuantity" binding:"required,min=0"`
	InStock       *bool           `json:"inStock"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
