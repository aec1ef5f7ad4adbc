package repository

import (
	"context"

	"parts-service/internal/domain"
)

// OrderRepository stores vendor orders. Lookups of unknown orders return
// (nil, nil).
type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindByVendor(ctx context.Context, vendorID int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error
}
