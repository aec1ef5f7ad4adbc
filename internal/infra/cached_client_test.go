package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"parts-service/internal/domain"
	"parts-service/internal/mocks"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testTTL = time.Hour

func TestCachedVehicleClient_GetAllMakes(t *testing.T) {
	makes := []domain.VehicleMake{{ID: 448, Name: "Toyota"}}

	tests := []struct {
		name       string
		setupMocks func(*mocks.MockVehicleAPI, *mocks.MockCache)
		want       []domain.VehicleMake
		wantErr    bool
	}{
		{
			name: "cache hit skips the api",
			setupMocks: func(api *mocks.MockVehicleAPI, cache *mocks.MockCache) {
				cache.On("Get", mock.Anything, "vehicles:makes").
					Return(redis.NewStringResult(`[{"id":448,"name":"Toyota"}]`, nil))
			},
			want: makes,
		},
		{
			name: "cache miss loads and stores",
			setupMocks: func(api *mocks.MockVehicleAPI, cache *mocks.MockCache) {
				cache.On("Get", mock.Anything, "vehicles:makes").Return(redis.NewStringResult("", redis.Nil))
				api.On("GetAllMakes", mock.Anything).Return(makes, nil)
				cache.On("Set", mock.Anything, "vehicles:makes", mock.Anything, mock.Anything).
					Return(redis.NewStatusResult("OK", nil))
			},
			want: makes,
		},
		{
			name: "cache outage is ignored",
			setupMocks: func(api *mocks.MockVehicleAPI, cache *mocks.MockCache) {
				down := errors.New("connection refused")
				cache.On("Get", mock.Anything, "vehicles:makes").Return(redis.NewStringResult("", down))
				api.On("GetAllMakes", mock.Anything).Return(makes, nil)
				cache.On("Set", mock.Anything, "vehicles:makes", mock.Anything, mock.Anything).
					Return(redis.NewStatusResult("", down))
			},
			want: makes,
		},
		{
			name: "api failure is returned and not cached",
			setupMocks: func(api *mocks.MockVehicleAPI, cache *mocks.MockCache) {
				cache.On("Get", mock.Anything, "vehicles:makes").Return(redis.NewStringResult("", redis.Nil))
				api.On("GetAllMakes", mock.Anything).Return(nil, errors.New("status 500"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(mocks.MockVehicleAPI)
			cache := new(mocks.MockCache)
			tt.setupMocks(api, cache)

			got, err := NewCachedVehicleClient(api, cache, testTTL).GetAllMakes(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			api.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestCachedVehicleClient_EmptyAnswerIsNotCached(t *testing.T) {
	api := new(mocks.MockVehicleAPI)
	cache := new(mocks.MockCache)

	cache.On("Get", mock.Anything, "vehicles:makes").Return(redis.NewStringResult("", redis.Nil))
	api.On("GetAllMakes", mock.Anything).Return([]domain.VehicleMake{}, nil).Once()
	api.On("GetAllMakes", mock.Anything).Return([]domain.VehicleMake{{ID: 448, Name: "Toyota"}}, nil).Once()
	cache.On("Set", mock.Anything, "vehicles:makes", mock.Anything, testTTL).Return(redis.NewStatusResult("OK", nil))
	c := NewCachedVehicleClient(api, cache, testTTL)

	got, err := c.GetAllMakes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	got, err = c.GetAllMakes(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
	api.AssertNumberOfCalls(t, "GetAllMakes", 2)
	cache.AssertNumberOfCalls(t, "Set", 1)
}

func TestCachedVehicleClient_ModelKeys(t *testing.T) {
	api := new(mocks.MockVehicleAPI)
	cache := new(mocks.MockCache)

	models := []domain.VehicleModel{{ID: 2208, Name: "Camry", MakeID: 448, Year: 2015}}
	cache.On("Get", mock.Anything, "vehicles:models:448:2015").Return(redis.NewStringResult("", redis.Nil))
	api.On("GetModelsForMakeAndYear", mock.Anything, 448, 2015).Return(models, nil)
	cache.On("Set", mock.Anything, "vehicles:models:448:2015", mock.Anything, mock.Anything).
		Return(redis.NewStatusResult("OK", nil))

	got, err := NewCachedVehicleClient(api, cache, testTTL).GetModelsForMakeAndYear(context.Background(), 448, 2015)

	require.NoError(t, err)
	assert.Equal(t, models, got)
	api.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCachedVehicleClient_Warmup(t *testing.T) {
	api := new(mocks.MockVehicleAPI)
	cache := new(mocks.MockCache)

	cache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return(redis.NewStringResult("", redis.Nil))
	cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(redis.NewStatusResult("OK", nil))
	api.On("GetModelsForMake", mock.Anything, 1).Return([]domain.VehicleModel{{ID: 1, Name: "Corolla", MakeID: 1}}, nil)
	api.On("GetModelsForMake", mock.Anything, 2).Return(nil, errors.New("status 500"))
	api.On("GetModelsForMake", mock.Anything, 3).Return([]domain.VehicleModel{}, nil)

	err := NewCachedVehicleClient(api, cache, testTTL).Warmup(context.Background(), []int{1, 2, 3})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "make 2")
	api.AssertNumberOfCalls(t, "GetModelsForMake", 3)
}
