package infra

import (
	"context"
	"time"

	"parts-service/internal/domain"

	"github.com/go-redis/redis/v8"
)

type VehicleAPI interface {
	GetAllMakes(ctx context.Context) ([]domain.VehicleMake, error)
	GetModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error)
	GetModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error)
}

// Cache is the subset of *redis.Client the cached client uses.
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

var (
	_ VehicleAPI = (*VehicleClient)(nil)
	_ VehicleAPI = (*CachedVehicleClient)(nil)
	_ Cache      = (*redis.Client)(nil)
)
