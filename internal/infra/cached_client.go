package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"parts-service/internal/domain"

	"golang.org/x/sync/errgroup"
)

// CachedVehicleClient is a read-through cache in front of a VehicleAPI. Cache
// errors never fail a lookup; they only cost a trip to the API. Empty results
// are never stored.
type CachedVehicleClient struct {
	api   VehicleAPI
	cache Cache
	ttl   time.Duration
}

func NewCachedVehicleClient(api VehicleAPI, cache Cache, ttl time.Duration) *CachedVehicleClient {
	return &CachedVehicleClient{api: api, cache: cache, ttl: ttl}
}

func (c *CachedVehicleClient) GetAllMakes(ctx context.Context) ([]domain.VehicleMake, error) {
	return readThrough(ctx, c, "vehicles:makes", func() ([]domain.VehicleMake, error) {
		return c.api.GetAllMakes(ctx)
	})
}

func (c *CachedVehicleClient) GetModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	return readThrough(ctx, c, fmt.Sprintf("vehicles:models:%d", makeID), func() ([]domain.VehicleModel, error) {
		return c.api.GetModelsForMake(ctx, makeID)
	})
}

func (c *CachedVehicleClient) GetModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	key := fmt.Sprintf("vehicles:models:%d:%d", makeID, year)
	return readThrough(ctx, c, key, func() ([]domain.VehicleModel, error) {
		return c.api.GetModelsForMakeAndYear(ctx, makeID, year)
	})
}

// Warmup loads the model lists of makeIDs into the cache concurrently. The
// first failure is returned after every fetch has finished.
func (c *CachedVehicleClient) Warmup(ctx context.Context, makeIDs []int) error {
	var g errgroup.Group
	g.SetLimit(4)
	for _, id := range makeIDs {
		id := id
		g.Go(func() error {
			if _, err := c.GetModelsForMake(ctx, id); err != nil {
				return fmt.Errorf("warm up make %d: %w", id, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func readThrough[T any](ctx context.Context, c *CachedVehicleClient, key string, load func() ([]T, error)) ([]T, error) {
	if cached, err := c.cache.Get(ctx, key).Result(); err == nil {
		var out []T
		if err := json.Unmarshal([]byte(cached), &out); err == nil {
			return out, nil
		}
		log.Printf("vehicle cache: discarding undecodable %s", key)
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if len(out) == 0 {
		return out, nil
	}
	if data, err := json.Marshal(out); err == nil {
		if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Printf("vehicle cache: set %s: %v", key, err)
		}
	}
	return out, nil
}
