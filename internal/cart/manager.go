// Package cart keeps a buyer's shopping cart and applies checkout against
// inventory stock.
package cart

import (
	"sync"

	"parts-service/internal/domain"

	"github.com/shopspring/decimal"
)

// StockDeducter is the slice of the inventory a cart needs at checkout.
type StockDeducter interface {
	UpdateStockAfterPurchase(listingID int, quantityPurchased int)
}

type Manager struct {
	mu     sync.Mutex
	stock  StockDeducter
	items  []domain.CartItem
	nextID int
}

func NewManager(stock StockDeducter) *Manager {
	return &Manager{stock: stock, nextID: 1}
}

// AddToCart adds one unit of listing. A listing already in the cart has its
// quantity incremented instead of being added again.
func (m *Manager) AddToCart(listing domain.VendorListing, partName string) domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, it := range m.items {
		if it.Listing.ID == listing.ID {
			m.items[i].Quantity++
			return m.items[i]
		}
	}
	item := domain.CartItem{
		ID:       m.nextID,
		Listing:  listing,
		PartName: partName,
		Quantity: 1,
	}
	m.nextID++
	m.items = append(m.items, item)
	return item
}

func (m *Manager) RemoveFromCart(itemID int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(itemID)
}

// UpdateQuantity sets an item's quantity; zero or less removes it.
func (m *Manager) UpdateQuantity(itemID int, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(itemID)
		return
	}
	for i, it := range m.items {
		if it.ID == itemID {
			m.items[i].Quantity = quantity
			return
		}
	}
}

// Checkout deducts every item's quantity from stock, one listing at a time,
// then empties the cart. It returns the items that were checked out.
func (m *Manager) Checkout() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := m.items
	for _, it := range items {
		m.stock.UpdateStockAfterPurchase(it.Listing.ID, it.Quantity)
	}
	m.items = nil
	if items == nil {
		return []domain.CartItem{}
	}
	return items
}

func (m *Manager) ClearCart() {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
}

func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartItem{}, m.items...)
}

// ItemCount is the total number of units, not of lines.
func (m *Manager) ItemCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, it := range m.items {
		n += it.Quantity
	}
	return n
}

func (m *Manager) TotalPrice() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, it := range m.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

func (m *Manager) removeLocked(itemID int) {
	kept := m.items[:0:0]
	for _, it := range m.items {
		if it.ID != itemID {
			kept = append(kept, it)
		}
	}
	m.items = kept
}
