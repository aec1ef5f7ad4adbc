package services

import (
	"context"
	"log"
	"time"

	"parts-service/internal/cart"
	"parts-service/internal/domain"
	rabbit "parts-service/internal/infra/rabbitmq"
	"parts-service/internal/inventory"

	"github.com/shopspring/decimal"
)

// StoreService runs the buyer cart and the vendor listing editor on top of the
// shared inventory.
type StoreService struct {
	inventory *inventory.Manager
	carts     *cart.Registry
	publisher rabbit.PublisherInterface
	now       func() time.Time
}

func NewStoreService(inv *inventory.Manager, carts *cart.Registry, pub rabbit.PublisherInterface) *StoreService {
	return &StoreService{
		inventory: inv,
		carts:     carts,
		publisher: pub,
		now:       time.Now,
	}
}

type CartView struct {
	Items     []domain.CartItem `json:"items"`
	ItemCount int               `json:"itemCount"`
	Total     decimal.Decimal   `json:"total"`
}

type ListingInput struct {
	PartID        int
	BrandName     string
	PartNumber    string
	Price         decimal.Decimal
	StockQuantity int
	Condition     string
}

// Cart returns the session's cart. Sessions that never added an item see an
// empty cart and are not registered.
func (s *StoreService) Cart(sessionID string) CartView {
	c, ok := s.carts.Lookup(sessionID)
	if !ok {
		return CartView{Items: []domain.CartItem{}, Total: decimal.Zero}
	}
	return CartView{Items: c.Items(), ItemCount: c.ItemCount(), Total: c.TotalPrice()}
}

// AddToCart puts one unit of an in-stock listing into the session's cart,
// creating the cart on first use.
func (s *StoreService) AddToCart(sessionID string, listingID int) (domain.CartItem, error) {
	l := s.inventory.GetListing(listingID)
	if l == nil {
		return domain.CartItem{}, ErrListingNotFound
	}
	if !l.InStock {
		return domain.CartItem{}, ErrOutOfStock
	}
	p := s.inventory.GetPartByID(l.PartID)
	if p == nil {
		return domain.CartItem{}, ErrPartNotFound
	}
	return s.carts.Get(sessionID).AddToCart(*l, p.Name), nil
}

func (s *StoreService) UpdateCartQuantity(sessionID string, itemID, quantity int) CartView {
	if c, ok := s.carts.Lookup(sessionID); ok {
		c.UpdateQuantity(itemID, quantity)
	}
	return s.Cart(sessionID)
}

func (s *StoreService) RemoveFromCart(sessionID string, itemID int) CartView {
	if c, ok := s.carts.Lookup(sessionID); ok {
		c.RemoveFromCart(itemID)
	}
	return s.Cart(sessionID)
}

func (s *StoreService) ClearCart(sessionID string) {
	if c, ok := s.carts.Lookup(sessionID); ok {
		c.ClearCart()
	}
}

// Checkout deducts the cart from stock, empties it and announces the sale.
func (s *StoreService) Checkout(sessionID string) (domain.CheckoutCompletedEvent, error) {
	c, ok := s.carts.Lookup(sessionID)
	if !ok {
		return domain.CheckoutCompletedEvent{}, ErrEmptyCart
	}
	items := c.Checkout()
	if len(items) == 0 {
		return domain.CheckoutCompletedEvent{}, ErrEmptyCart
	}
	evt := domain.NewCheckoutCompletedEvent(sessionID, items, s.now())

	go s.publish(context.Background(), domain.PatternCheckoutCompleted, evt)
	return evt, nil
}

func (s *StoreService) VendorListings(vendorID int, query string) ([]domain.VendorListing, error) {
	if s.inventory.GetVendor(vendorID) == nil {
		return nil, ErrVendorNotFound
	}
	return s.inventory.SearchVendorListings(vendorID, query), nil
}

// ListableParts returns the catalog parts a vendor may create listings for.
func (s *StoreService) ListableParts() []domain.Part {
	return s.inventory.Parts()
}

func (s *StoreService) CreateListing(vendorID int, in ListingInput) (domain.VendorListing, error) {
	v := s.inventory.GetVendor(vendorID)
	if v == nil {
		return domain.VendorListing{}, ErrVendorNotFound
	}
	if s.inventory.GetPartByID(in.PartID) == nil {
		return domain.VendorListing{}, ErrPartNotFound
	}

	stored := s.inventory.AddListing(domain.VendorListing{
		PartID:        in.PartID,
		VendorID:      vendorID,
		VendorName:    v.Name,
		BrandName:     in.BrandName,
		PartNumber:    in.PartNumber,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		Condition:     in.Condition,
	})
	s.publishListing(domain.ListingCreated, stored)
	return stored, nil
}

func (s *StoreService) UpdateListing(vendorID, listingID int, price decimal.Decimal, stockQuantity int, inStock bool) (domain.VendorListing, error) {
	if _, err := s.vendorListing(vendorID, listingID); err != nil {
		return domain.VendorListing{}, err
	}
	s.inventory.UpdateListing(listingID, price, stockQuantity, inStock)

	updated := s.inventory.GetListing(listingID)
	if updated == nil {
		return domain.VendorListing{}, ErrListingNotFound
	}
	s.publishListing(domain.ListingUpdated, *updated)
	return *updated, nil
}

func (s *StoreService) RemoveListing(vendorID, listingID int) error {
	l, err := s.vendorListing(vendorID, listingID)
	if err != nil {
		return err
	}
	s.inventory.RemoveListing(listingID)
	s.publishListing(domain.ListingRemoved, *l)
	return nil
}

// vendorListing resolves a listing only if it belongs to the vendor.
func (s *StoreService) vendorListing(vendorID, listingID int) (*domain.VendorListing, error) {
	if s.inventory.GetVendor(vendorID) == nil {
		return nil, ErrVendorNotFound
	}
	l := s.inventory.GetListing(listingID)
	if l == nil || l.VendorID != vendorID {
		return nil, ErrListingNotFound
	}
	return l, nil
}

func (s *StoreService) publishListing(action domain.ListingAction, l domain.VendorListing) {
	go s.publish(context.Background(), action.Pattern(), domain.NewListingChangedEvent(action, l, s.now()))
}

func (s *StoreService) publish(ctx context.Context, pattern string, evt any) {
	log.Printf("Publishing %s event", pattern)
	if err := s.publisher.Publish(ctx, pattern, evt); err != nil {
		log.Printf("Failed to publish event: %v", err)
	}
}
