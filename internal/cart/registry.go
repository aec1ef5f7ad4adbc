package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds one cart per buyer session. A session gets a cart when it
// first adds an item; carts then live for the life of the process.
type Registry struct {
	mu    sync.Mutex
	stock StockDeducter
	carts map[string]*Manager
}

func NewRegistry(stock StockDeducter) *Registry {
	return &Registry{stock: stock, carts: make(map[string]*Manager)}
}

// NewSessionID mints an id for a buyer that has none.
func NewSessionID() string {
	return uuid.NewString()
}

// Get returns the session's cart, creating an empty one on first use.
func (r *Registry) Get(sessionID string) *Manager {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		c = NewManager(r.stock)
		r.carts[sessionID] = c
	}
	return c
}

// Lookup returns the session's cart without creating one.
func (r *Registry) Lookup(sessionID string) (*Manager, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	return c, ok
}

// Len reports how many sessions hold a cart.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.carts)
}
