package catalog

import (
	"fmt"

	"parts-service/internal/domain"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type orderItemRecord struct {
	ListingID  int             `yaml:"listing_id"`
	PartID     int             `yaml:"part_id"`
	PartName   string          `yaml:"part_name"`
	BrandName  string          `yaml:"brand_name"`
	PartNumber string          `yaml:"part_number"`
	UnitPrice  decimal.Decimal `yaml:"unit_price"`
	Quantity   int             `yaml:"quantity"`
}

type orderRecord struct {
	CustomerName    string             `yaml:"customer_name"`
	CustomerPhone   string             `yaml:"customer_phone"`
	DeliveryAddress string             `yaml:"delivery_address"`
	Status          domain.OrderStatus `yaml:"status"`
	Items           []orderItemRecord  `yaml:"items"`
}

// DemoOrders builds the demo order set for one vendor. IDs are left zero for
// the repository to assign.
func DemoOrders(vendorID int) ([]domain.Order, error) {
	var f struct {
		Orders []orderRecord `yaml:"orders"`
	}
	if err := yaml.Unmarshal(ordersYAML, &f); err != nil {
		return nil, fmt.Errorf("catalog: decode orders: %w", err)
	}

	out := make([]domain.Order, 0, len(f.Orders))
	for _, r := range f.Orders {
		o := domain.Order{
			VendorID:        vendorID,
			Status:          r.Status,
			CustomerName:    r.CustomerName,
			CustomerPhone:   r.CustomerPhone,
			DeliveryAddress: r.DeliveryAddress,
		}
		for _, it := range r.Items {
			o.Items = append(o.Items, domain.OrderItem{
				ListingID:  it.ListingID,
				PartID:     it.PartID,
				PartName:   it.PartName,
				BrandName:  it.BrandName,
				PartNumber: it.PartNumber,
				UnitPrice:  it.UnitPrice,
				Currency:   domain.DefaultCurrency,
				Quantity:   it.Quantity,
			})
		}
		out = append(out, o)
	}
	return out, nil
}
