// Package mocks holds testify mocks for the service's collaborator interfaces.
package mocks

import (
	"context"
	"time"

	"parts-service/internal/domain"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct {
	mock.Mock
}

type MockPublisher struct {
	mock.Mock
}

type MockVehicleAPI struct {
	mock.Mock
}

type MockCache struct {
	mock.Mock
}

type MockSource struct {
	mock.Mock
	SourceName string
}

type MockStockDeducter struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, message interface{}) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}

func (m *MockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByVendor(ctx context.Context, vendorID int) ([]domain.Order, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uint64, status domain.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockVehicleAPI) GetAllMakes(ctx context.Context) ([]domain.VehicleMake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleMake), args.Error(1)
}

func (m *MockVehicleAPI) GetModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	args := m.Called(ctx, makeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleModel), args.Error(1)
}

func (m *MockVehicleAPI) GetModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	args := m.Called(ctx, makeID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleModel), args.Error(1)
}

func (m *MockCache) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	return args.Get(0).(*redis.StringCmd)
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	return args.Get(0).(*redis.StatusCmd)
}

func (m *MockSource) Name() string {
	return m.SourceName
}

func (m *MockSource) Makes(ctx context.Context) ([]domain.VehicleMake, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleMake), args.Error(1)
}

func (m *MockSource) YearsForMake(ctx context.Context, makeID int) ([]int, error) {
	args := m.Called(ctx, makeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockSource) ModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	args := m.Called(ctx, makeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleModel), args.Error(1)
}

func (m *MockSource) ModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	args := m.Called(ctx, makeID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleModel), args.Error(1)
}

func (m *MockSource) EnginesForModel(ctx context.Context, makeID, year, modelID int) ([]domain.VehicleEngine, error) {
	args := m.Called(ctx, makeID, year, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VehicleEngine), args.Error(1)
}

func (m *MockStockDeducter) UpdateStockAfterPurchase(listingID int, quantityPurchased int) {
	m.Called(listingID, quantityPurchased)
}
