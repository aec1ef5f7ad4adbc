package services

import (
	"time"

	"parts-service/internal/domain"

	"github.com/shopspring/decimal"
)

func CreateMockOrder(id uint64, vendorID int, status domain.OrderStatus, items ...domain.OrderItem) *domain.Order {
	return &domain.Order{
		ID:           id,
		VendorID:     vendorID,
		Items:        items,
		Status:       status,
		CustomerName: TestCustomerName,
		CreatedAt:    time.Now(),
	}
}

func CreateMockOrderItem(listingID int, unitPrice int64, quantity int) domain.OrderItem {
	return domain.OrderItem{
		ListingID: listingID,
		PartName:  "Front Brake Pad Set",
		UnitPrice: decimal.NewFromInt(unitPrice),
		Currency:  domain.DefaultCurrency,
		Quantity:  quantity,
	}
}

const (
	TestVendorID     = 1
	TestOrderID      = uint64(1001)
	TestListingID    = 1
	TestCustomerName = "Kwame Asante"
	TestSessionID    = "session-1"
)
