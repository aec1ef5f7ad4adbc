// Package memory keeps orders in process memory for deployments without a
// database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"parts-service/internal/domain"
	"parts-service/internal/repository"
)

const firstOrderID = 1001

type orderRepo struct {
	mu     sync.RWMutex
	orders map[uint64]domain.Order
	nextID uint64
	now    func() time.Time
}

func NewOrderRepository() repository.OrderRepository {
	return &orderRepo{
		orders: make(map[uint64]domain.Order),
		nextID: firstOrderID,
		now:    time.Now,
	}
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = r.nextID
	r.nextID++
	if order.CreatedAt.IsZero() {
		order.CreatedAt = r.now()
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	for i := range order.Items {
		order.Items[i].ID = uint64(i + 1)
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = clone(*order)
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o = clone(o)
	return &o, nil
}

func (r *orderRepo) FindByVendor(ctx context.Context, vendorID int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []domain.Order{}
	for _, o := range r.orders {
		if o.VendorID == vendorID {
			out = append(out, clone(o))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		o.Status = status
		r.orders[id] = o
	}
	return nil
}

func clone(o domain.Order) domain.Order {
	o.Items = append([]domain.OrderItem(nil), o.Items...)
	return o
}
