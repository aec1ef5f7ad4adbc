package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	PatternCheckoutCompleted = "checkout.completed"
	PatternListingCreated    = "listing.created"
	PatternListingUpdated    = "listing.updated"
	PatternListingRemoved    = "listing.removed"
)

type CheckoutLine struct {
	ListingID int             `json:"listingId"`
	VendorID  int             `json:"vendorId"`
	PartName  string          `json:"partName"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"lineTotal"`
}

type CheckoutCompletedEvent struct {
	SessionID   string          `json:"sessionId"`
	Lines       []CheckoutLine  `json:"lines"`
	ItemCount   int             `json:"itemCount"`
	Total       decimal.Decimal `json:"total"`
	CompletedAt time.Time       `json:"completedAt"`
}

func NewCheckoutCompletedEvent(sessionID string, items []CartItem, at time.Time) CheckoutCompletedEvent {
	evt := CheckoutCompletedEvent{
		SessionID:   sessionID,
		Lines:       make([]CheckoutLine, 0, len(items)),
		Total:       decimal.Zero,
		CompletedAt: at,
	}
	for _, it := range items {
		line := CheckoutLine{
			ListingID: it.Listing.ID,
			VendorID:  it.Listing.VendorID,
			PartName:  it.PartName,
			Quantity:  it.Quantity,
			LineTotal: it.TotalPrice(),
		}
		evt.Lines = append(evt.Lines, line)
		evt.ItemCount += it.Quantity
		evt.Total = evt.Total.Add(line.LineTotal)
	}
	return evt
}

type ListingAction string

const (
	ListingCreated ListingAction = "created"
	ListingUpdated ListingAction = "updated"
	ListingRemoved ListingAction = "removed"
)

type ListingChangedEvent struct {
	Action        ListingAction   `json:"action"`
	ListingID     int             `json:"listingId"`
	VendorID      int             `json:"vendorId"`
	PartID        int             `json:"partId"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	InStock       bool            `json:"inStock"`
	At            time.Time       `json:"at"`
}

func NewListingChangedEvent(action ListingAction, l VendorListing, at time.Time) ListingChangedEvent {
	return ListingChangedEvent{
		Action:        action,
		ListingID:     l.ID,
		VendorID:      l.VendorID,
		PartID:        l.PartID,
		Price:         l.Price,
		StockQuantity: l.StockQuantity,
		InStock:       l.InStock,
		At:            at,
	}
}

// Pattern maps a listing action to its routing key.
func (a ListingAction) Pattern() string {
	switch a {
	case ListingCreated:
		return PatternListingCreated
	case ListingRemoved:
		return PatternListingRemoved
	default:
		return PatternListingUpdated
	}
}
