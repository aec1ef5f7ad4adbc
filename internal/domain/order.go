package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusProcessing OrderStatus = "PROCESSING"
	StatusShipped    OrderStatus = "SHIPPED"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

var orderFlow = []OrderStatus{StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered}

// OrderStatuses lists every status in display order.
var OrderStatuses = append(append([]OrderStatus{}, orderFlow...), StatusCancelled)

func (s OrderStatus) Valid() bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

func (s OrderStatus) rank() int {
	for i, st := range orderFlow {
		if st == s {
			return i
		}
	}
	return -1
}

// CanTransition allows any move forward along the fulfilment flow, and
// cancellation of an order that has not reached a terminal status.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	if s.Terminal() || !to.Valid() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return to.rank() > s.rank()
}

type Order struct {
	ID              uint64      `json:"id" gorm:"primaryKey;autoIncrement"`
	VendorID        int         `json:"vendorId" gorm:"not null;index"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status          OrderStatus `json:"status" gorm:"type:varchar(16);not null;default:'PENDING'"`
	CustomerName    string      `json:"customerName"`
	CustomerPhone   string      `json:"customerPhone"`
	DeliveryAddress string      `json:"deliveryAddress"`
	CreatedAt       time.Time   `json:"createdAt" gorm:"autoCreateTime"`
}

func (o Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}

// OrderItem is the stored form of a cart line.
type OrderItem struct {
	ID         uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID    uint64          `json:"orderId" gorm:"not null;index"`
	ListingID  int             `json:"listingId"`
	PartID     int             `json:"partId"`
	PartName   string          `json:"partName"`
	BrandName  string          `json:"brandName"`
	PartNumber string          `json:"partNumber"`
	UnitPrice  decimal.Decimal `json:"unitPrice" gorm:"type:decimal(12,2)"`
	Currency   string          `json:"currency"`
	Quantity   int             `json:"quantity"`
}

func NewOrderItem(c CartItem) OrderItem {
	return OrderItem{
		ListingID:  c.Listing.ID,
		PartID:     c.Listing.PartID,
		PartName:   c.PartName,
		BrandName:  c.Listing.BrandName,
		PartNumber: c.Listing.PartNumber,
		UnitPrice:  c.Listing.Price,
		Currency:   c.Listing.Currency,
		Quantity:   c.Quantity,
	}
}

func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
