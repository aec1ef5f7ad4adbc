// Package inventory holds the marketplace's single mutable catalog: vendors,
// the category tree, parts and vendor listings. Buyers query it, vendors edit
// their listings in it, and checkout deducts stock from it.
//
// Lookups of absent ids yield nil or empty results and mutations of absent ids
// are silent no-ops; nothing here returns an error.
package inventory

import (
	"log"
	"sync"

	"parts-service/internal/catalog"
	"parts-service/internal/domain"

	"github.com/shopspring/decimal"
)

type Manager struct {
	mu         sync.RWMutex
	vendors    []domain.Vendor
	parts      []domain.Part
	categories []domain.PartCategory
	listings   []domain.VendorListing
	nextID     int

	watchers watchers
}

// NewManager seeds a manager from c. The catalog slices are copied.
func NewManager(c *catalog.Catalog) *Manager {
	m := &Manager{
		vendors:    append([]domain.Vendor(nil), c.Vendors...),
		parts:      append([]domain.Part(nil), c.Parts...),
		categories: append([]domain.PartCategory(nil), c.Categories...),
		listings:   append([]domain.VendorListing(nil), c.Listings...),
		nextID:     1,
	}
	for _, l := range m.listings {
		if l.ID >= m.nextID {
			m.nextID = l.ID + 1
		}
	}
	m.watchers.init()
	return m
}

func (m *Manager) Vendors() []domain.Vendor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Vendor{}, m.vendors...)
}

func (m *Manager) GetVendor(vendorID int) *domain.Vendor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, v := range m.vendors {
		if v.ID == vendorID {
			return &v
		}
	}
	return nil
}

func (m *Manager) GetVendorListings(vendorID int) []domain.VendorListing {
	return m.filterListings(func(l domain.VendorListing) bool { return l.VendorID == vendorID })
}

func (m *Manager) Categories() []domain.PartCategory {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.PartCategory{}, m.categories...)
}

// Parts returns the whole catalog; these are the parts a vendor may list.
func (m *Manager) Parts() []domain.Part {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.Part{}, m.parts...)
}

func (m *Manager) GetPartByID(partID int) *domain.Part {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.parts {
		if p.ID == partID {
			return &p
		}
	}
	return nil
}

// Listings returns a snapshot of every listing in catalog order.
func (m *Manager) Listings() []domain.VendorListing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]domain.VendorListing{}, m.listings...)
}

func (m *Manager) GetListing(listingID int) *domain.VendorListing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.listings {
		if l.ID == listingID {
			return &l
		}
	}
	return nil
}

// AddListing stores listing under the next sequential id and returns the
// stored copy. Duplicate offers for the same part and vendor are allowed.
func (m *Manager) AddListing(listing domain.VendorListing) domain.VendorListing {
	m.mu.Lock()
	listing.ID = m.nextID
	m.nextID++
	if listing.Currency == "" {
		listing.Currency = domain.DefaultCurrency
	}
	if listing.Condition == "" {
		listing.Condition = domain.DefaultCondition
	}
	listing = listing.WithStock(listing.StockQuantity)
	m.listings = append(m.listings, listing)
	m.watchers.publish(m.snapshotLocked())
	m.mu.Unlock()
	return listing
}

// UpdateListing replaces the price and stock of a listing. The stored InStock
// flag always follows the stock quantity; a disagreeing inStock argument is
// logged and overridden.
func (m *Manager) UpdateListing(listingID int, price decimal.Decimal, stockQuantity int, inStock bool) {
	m.mu.Lock()
	found := false
	for i, l := range m.listings {
		if l.ID != listingID {
			continue
		}
		l.Price = price
		l = l.WithStock(stockQuantity)
		if l.InStock != inStock {
			log.Printf("listing %d: in-stock flag %t overridden by stock quantity %d", listingID, inStock, l.StockQuantity)
		}
		m.listings[i] = l
		found = true
		break
	}
	if !found {
		m.mu.Unlock()
		return
	}
	m.watchers.publish(m.snapshotLocked())
	m.mu.Unlock()
}

func (m *Manager) RemoveListing(listingID int) {
	m.mu.Lock()
	kept := m.listings[:0:0]
	for _, l := range m.listings {
		if l.ID != listingID {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(m.listings) {
		m.mu.Unlock()
		return
	}
	m.listings = kept
	m.watchers.publish(m.snapshotLocked())
	m.mu.Unlock()
}

// UpdateStockAfterPurchase deducts a sale from a listing's stock, flooring at
// zero, and recomputes InStock.
func (m *Manager) UpdateStockAfterPurchase(listingID int, quantityPurchased int) {
	m.mu.Lock()
	found := false
	for i, l := range m.listings {
		if l.ID == listingID {
			m.listings[i] = l.WithStock(l.StockQuantity - quantityPurchased)
			found = true
			break
		}
	}
	if !found {
		m.mu.Unlock()
		return
	}
	m.watchers.publish(m.snapshotLocked())
	m.mu.Unlock()
}

// GetListingsForPart returns the in-stock offers for a part.
func (m *Manager) GetListingsForPart(partID int) []domain.VendorListing {
	return m.filterListings(func(l domain.VendorListing) bool { return l.PartID == partID && l.InStock })
}

// GetAllListingsForPart includes out-of-stock offers.
func (m *Manager) GetAllListingsForPart(partID int) []domain.VendorListing {
	return m.filterListings(func(l domain.VendorListing) bool { return l.PartID == partID })
}

// GetPartsForCategory returns the category's parts that at least one vendor
// has in stock.
func (m *Manager) GetPartsForCategory(categoryID int) []domain.Part {
	m.mu.RLock()
	defer m.mu.RUnlock()
	stocked := m.inStockPartIDsLocked()
	out := []domain.Part{}
	for _, p := range m.parts {
		if p.CategoryID == categoryID && stocked[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) GetAllPartsForCategory(categoryID int) []domain.Part {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Part{}
	for _, p := range m.parts {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) filterListings(keep func(domain.VendorListing) bool) []domain.VendorListing {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.VendorListing{}
	for _, l := range m.listings {
		if keep(l) {
			out = append(out, l)
		}
	}
	return out
}

func (m *Manager) inStockPartIDsLocked() map[int]bool {
	ids := make(map[int]bool)
	for _, l := range m.listings {
		if l.InStock {
			ids[l.PartID] = true
		}
	}
	return ids
}

func (m *Manager) snapshotLocked() []domain.VendorListing {
	return append([]domain.VendorListing{}, m.listings...)
}
