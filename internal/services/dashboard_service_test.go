package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"parts-service/internal/catalog"
	"parts-service/internal/domain"
	"parts-service/internal/inventory"
	"parts-service/internal/mocks"
	"parts-service/internal/repository/memory"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newInventory() *inventory.Manager {
	return inventory.NewManager(catalog.MustLoad())
}

func TestDashboardService_UpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name          string
		vendorID      int
		status        domain.OrderStatus
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError error
	}{
		{
			name:     "pending to confirmed",
			vendorID: TestVendorID,
			status:   domain.StatusConfirmed,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).
					Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusPending), nil)
				repo.On("UpdateStatus", mock.Anything, TestOrderID, domain.StatusConfirmed).Return(nil)
			},
		},
		{
			name:     "skipping ahead is allowed",
			vendorID: TestVendorID,
			status:   domain.StatusDelivered,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).
					Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusConfirmed), nil)
				repo.On("UpdateStatus", mock.Anything, TestOrderID, domain.StatusDelivered).Return(nil)
			},
		},
		{
			name:     "cancel in flight order",
			vendorID: TestVendorID,
			status:   domain.StatusCancelled,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).
					Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusShipped), nil)
				repo.On("UpdateStatus", mock.Anything, TestOrderID, domain.StatusCancelled).Return(nil)
			},
		},
		{
			name:     "delivered is terminal",
			vendorID: TestVendorID,
			status:   domain.StatusCancelled,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).
					Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusDelivered), nil)
			},
			expectedError: ErrInvalidStatusTransition,
		},
		{
			name:     "backwards move rejected",
			vendorID: TestVendorID,
			status:   domain.StatusPending,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).
					Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusProcessing), nil)
			},
			expectedError: ErrInvalidStatusTransition,
		},
		{
			name:          "unknown status",
			vendorID:      TestVendorID,
			status:        domain.OrderStatus("LOST"),
			setupMocks:    func(repo *mocks.MockOrderRepository) {},
			expectedError: ErrInvalidStatus,
		},
		{
			name:     "order not found",
			vendorID: TestVendorID,
			status:   domain.StatusConfirmed,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:     "order of another vendor",
			vendorID: 2,
			status:   domain.StatusConfirmed,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.On("FindByID", mock.Anything, TestOrderID).
					Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusPending), nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:          "unknown vendor",
			vendorID:      999,
			status:        domain.StatusConfirmed,
			setupMocks:    func(repo *mocks.MockOrderRepository) {},
			expectedError: ErrVendorNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockOrderRepository)
			tt.setupMocks(repo)
			s := NewDashboardService(repo, newInventory(), false)

			o, err := s.UpdateOrderStatus(context.Background(), tt.vendorID, TestOrderID, tt.status)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, o)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.status, o.Status)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestDashboardService_UpdateOrderStatus_RepositoryError(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindByID", mock.Anything, TestOrderID).
		Return(CreateMockOrder(TestOrderID, TestVendorID, domain.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, TestOrderID, domain.StatusConfirmed).
		Return(errors.New("database connection error"))

	s := NewDashboardService(repo, newInventory(), false)
	_, err := s.UpdateOrderStatus(context.Background(), TestVendorID, TestOrderID, domain.StatusConfirmed)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database connection error")
}

func TestDashboardService_SeedsDemoOrdersOnce(t *testing.T) {
	ctx := context.Background()
	s := NewDashboardService(memory.NewOrderRepository(), newInventory(), true)

	orders, err := s.Orders(ctx, TestVendorID)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	assert.Equal(t, domain.StatusPending, orders[0].Status)
	assert.Equal(t, TestCustomerName, orders[0].CustomerName)

	again, err := s.Orders(ctx, TestVendorID)
	require.NoError(t, err)
	assert.Len(t, again, 5)

	other, err := s.Orders(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other, 5)
	assert.NotEqual(t, orders[0].ID, other[0].ID)
}

func TestDashboardService_SingleOrderAccessSeeds(t *testing.T) {
	ctx := context.Background()
	s := NewDashboardService(memory.NewOrderRepository(), newInventory(), true)

	o, err := s.UpdateOrderStatus(ctx, TestVendorID, TestOrderID, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, o.Status)

	pdf, err := s.Receipt(ctx, TestVendorID, TestOrderID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	orders, err := s.Orders(ctx, TestVendorID)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func TestDashboardService_SkipsSeedingWhenOrdersExist(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	existing := []domain.Order{*CreateMockOrder(TestOrderID, TestVendorID, domain.StatusShipped)}
	repo.On("FindByVendor", mock.Anything, TestVendorID).Return(existing, nil)

	s := NewDashboardService(repo, newInventory(), true)
	orders, err := s.Orders(context.Background(), TestVendorID)

	require.NoError(t, err)
	assert.Len(t, orders, 1)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDashboardService_SeedingDisabled(t *testing.T) {
	s := NewDashboardService(memory.NewOrderRepository(), newInventory(), false)

	orders, err := s.Orders(context.Background(), TestVendorID)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestDashboardService_Stats(t *testing.T) {
	inv := newInventory()
	s := NewDashboardService(memory.NewOrderRepository(), inv, true)
	inv.UpdateStockAfterPurchase(TestListingID, 25)

	stats, err := s.Stats(context.Background(), TestVendorID)
	require.NoError(t, err)

	assert.Equal(t, "Accra Auto Parts", stats.Vendor.Name)
	assert.Equal(t, 29, stats.TotalListings)
	assert.Equal(t, 28, stats.InStockListings)
	assert.Equal(t, 1, stats.OutOfStockListings)
	assert.Equal(t, 498-25, stats.TotalStockUnits)
	assert.Equal(t, 5, stats.TotalOrders)
	assert.Equal(t, 2, stats.OrdersByStatus[domain.StatusDelivered])
	assert.Equal(t, 0, stats.OrdersByStatus[domain.StatusCancelled])
	assert.True(t, decimal.NewFromInt(640).Equal(stats.TotalRevenue), stats.TotalRevenue.String())
	assert.Equal(t, 3, stats.TotalItemsSold)

	_, err = s.Stats(context.Background(), 999)
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestDashboardService_Receipt(t *testing.T) {
	ctx := context.Background()
	s := NewDashboardService(memory.NewOrderRepository(), newInventory(), true)

	orders, err := s.Orders(ctx, TestVendorID)
	require.NoError(t, err)

	pdf, err := s.Receipt(ctx, TestVendorID, orders[0].ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))

	_, err = s.Receipt(ctx, 2, orders[0].ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
