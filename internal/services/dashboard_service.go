package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"parts-service/internal/catalog"
	"parts-service/internal/domain"
	"parts-service/internal/inventory"
	"parts-service/internal/receipt"
	"parts-service/internal/repository"

	"github.com/shopspring/decimal"
)

// demoOrderSpacing staggers seeded orders so the newest fixture order is
// listed first.
const demoOrderSpacing = 6 * time.Hour

type DashboardStats struct {
	Vendor             domain.Vendor              `json:"vendor"`
	TotalListings      int                        `json:"totalListings"`
	InStockListings    int                        `json:"inStockListings"`
	OutOfStockListings int                        `json:"outOfStockListings"`
	TotalStockUnits    int                        `json:"totalStockUnits"`
	TotalOrders        int                        `json:"totalOrders"`
	OrdersByStatus     map[domain.OrderStatus]int `json:"ordersByStatus"`
	TotalRevenue       decimal.Decimal            `json:"totalRevenue"`
	TotalItemsSold     int                        `json:"totalItemsSold"`
}

// DashboardService backs the vendor dashboard: order management and stats.
type DashboardService struct {
	repo      repository.OrderRepository
	inventory *inventory.Manager
	seedDemo  bool
	now       func() time.Time

	mu     sync.Mutex
	seeded map[int]bool
}

func NewDashboardService(repo repository.OrderRepository, inv *inventory.Manager, seedDemo bool) *DashboardService {
	return &DashboardService{
		repo:      repo,
		inventory: inv,
		seedDemo:  seedDemo,
		now:       time.Now,
		seeded:    make(map[int]bool),
	}
}

// ensureSeeded gives a vendor the demo orders the first time its orders are
// read, unless the repository already holds orders for it.
func (s *DashboardService) ensureSeeded(ctx context.Context, vendorID int) error {
	if !s.seedDemo {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seeded[vendorID] {
		return nil
	}

	existing, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		orders, err := catalog.DemoOrders(vendorID)
		if err != nil {
			return err
		}
		now := s.now()
		for i := range orders {
			orders[i].CreatedAt = now.Add(-time.Duration(i) * demoOrderSpacing)
			if err := s.repo.Save(ctx, &orders[i]); err != nil {
				return fmt.Errorf("seed demo orders for vendor %d: %w", vendorID, err)
			}
		}
		log.Printf("Seeded %d demo orders for vendor %d", len(orders), vendorID)
	}
	s.seeded[vendorID] = true
	return nil
}

func (s *DashboardService) Orders(ctx context.Context, vendorID int) ([]domain.Order, error) {
	if s.inventory.GetVendor(vendorID) == nil {
		return nil, ErrVendorNotFound
	}
	if err := s.ensureSeeded(ctx, vendorID); err != nil {
		return nil, err
	}
	orders, err := s.repo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *DashboardService) Order(ctx context.Context, vendorID int, orderID uint64) (*domain.Order, error) {
	if s.inventory.GetVendor(vendorID) == nil {
		return nil, ErrVendorNotFound
	}
	if err := s.ensureSeeded(ctx, vendorID); err != nil {
		return nil, err
	}
	o, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o == nil || o.VendorID != vendorID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// UpdateOrderStatus moves an order along its fulfilment flow.
func (s *DashboardService) UpdateOrderStatus(ctx context.Context, vendorID int, orderID uint64, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	o, err := s.Order(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	if !o.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, o.Status, status)
	}
	if err := s.repo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	o.Status = status
	log.Printf("Order %d for vendor %d moved to %s", orderID, vendorID, status)
	return o, nil
}

// Stats summarises a vendor's inventory and orders. Revenue and items sold
// count delivered orders only.
func (s *DashboardService) Stats(ctx context.Context, vendorID int) (*DashboardStats, error) {
	v := s.inventory.GetVendor(vendorID)
	if v == nil {
		return nil, ErrVendorNotFound
	}
	orders, err := s.Orders(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{
		Vendor:         *v,
		OrdersByStatus: make(map[domain.OrderStatus]int, len(domain.OrderStatuses)),
		TotalRevenue:   decimal.Zero,
	}
	for _, st := range domain.OrderStatuses {
		stats.OrdersByStatus[st] = 0
	}

	for _, l := range s.inventory.GetVendorListings(vendorID) {
		stats.TotalListings++
		stats.TotalStockUnits += l.StockQuantity
		if l.InStock {
			stats.InStockListings++
		} else {
			stats.OutOfStockListings++
		}
	}

	for _, o := range orders {
		stats.TotalOrders++
		stats.OrdersByStatus[o.Status]++
		if o.Status == domain.StatusDelivered {
			stats.TotalRevenue = stats.TotalRevenue.Add(o.TotalAmount())
			stats.TotalItemsSold += o.ItemCount()
		}
	}
	return stats, nil
}

// Receipt renders the order's PDF receipt.
func (s *DashboardService) Receipt(ctx context.Context, vendorID int, orderID uint64) ([]byte, error) {
	o, err := s.Order(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}
	return receipt.Render(*s.inventory.GetVendor(vendorID), *o)
}
