package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mohammaduzzal/bistro-boss-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCounter struct{ mock.Mock }

func (m *MockCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockAnalytics struct{ mock.Mock }

func (m *MockAnalytics) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockAnalytics) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}
func (m *MockAnalytics) CategoryStats(ctx context.Context) ([]models.CategoryStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CategoryStat), args.Error(1)
}
func (m *MockAnalytics) CountMenuItemRefs(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestAdminStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Composes counts and revenue", func(t *testing.T) {
		// Arrange
		users := new(MockCounter)
		menu := new(MockCounter)
		payments := new(MockAnalytics)
		users.On("Count", ctx).Return(int64(12), nil).Once()
		menu.On("Count", ctx).Return(int64(40), nil).Once()
		payments.On("Count", ctx).Return(int64(7), nil).Once()
		payments.On("TotalRevenue", ctx).Return(321.5, nil).Once()

		svc := NewStatsService(users, menu, payments)

		// Act
		stats, err := svc.AdminStats(ctx)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, int64(12), stats.Users)
		assert.Equal(t, int64(40), stats.MenuItems)
		assert.Equal(t, int64(7), stats.Orders)
		assert.Equal(t, 321.5, stats.Revenue)
	})

	t.Run("Empty ledger yields zero revenue, not an error", func(t *testing.T) {
		users := new(MockCounter)
		menu := new(MockCounter)
		payments := new(MockAnalytics)
		users.On("Count", ctx).Return(int64(0), nil).Once()
		menu.On("Count", ctx).Return(int64(0), nil).Once()
		payments.On("Count", ctx).Return(int64(0), nil).Once()
		payments.On("TotalRevenue", ctx).Return(float64(0), nil).Once()

		svc := NewStatsService(users, menu, payments)
		stats, err := svc.AdminStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, float64(0), stats.Revenue)
	})

	t.Run("Count failure propagates", func(t *testing.T) {
		users := new(MockCounter)
		menu := new(MockCounter)
		payments := new(MockAnalytics)
		users.On("Count", ctx).Return(int64(0), errors.New("store down")).Once()

		svc := NewStatsService(users, menu, payments)
		_, err := svc.AdminStats(ctx)

		assert.Error(t, err)
	})
}

func TestOrderStats(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns category buckets", func(t *testing.T) {
		payments := new(MockAnalytics)
		buckets := []models.CategoryStat{
			{Category: "dessert", Quantity: 3, Revenue: 21.5},
			{Category: "pizza", Quantity: 2, Revenue: 30},
		}
		payments.On("CategoryStats", ctx).Return(buckets, nil).Once()
		payments.On("CountMenuItemRefs", ctx).Return(int64(5), nil).Once()

		svc := NewStatsService(new(MockCounter), new(MockCounter), payments)
		stats, err := svc.OrderStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, buckets, stats)
	})

	t.Run("Dropped menu references do not fail the aggregation", func(t *testing.T) {
		payments := new(MockAnalytics)
		// 6 referenced items but only 4 joined: two references point at
		// menu entries that were deleted since the payments were made.
		buckets := []models.CategoryStat{{Category: "salad", Quantity: 4, Revenue: 40}}
		payments.On("CategoryStats", ctx).Return(buckets, nil).Once()
		payments.On("CountMenuItemRefs", ctx).Return(int64(6), nil).Once()

		svc := NewStatsService(new(MockCounter), new(MockCounter), payments)
		stats, err := svc.OrderStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, buckets, stats)
	})

	t.Run("Reference count failure is tolerated", func(t *testing.T) {
		payments := new(MockAnalytics)
		buckets := []models.CategoryStat{{Category: "drinks", Quantity: 1, Revenue: 5}}
		payments.On("CategoryStats", ctx).Return(buckets, nil).Once()
		payments.On("CountMenuItemRefs", ctx).Return(int64(0), errors.New("store down")).Once()

		svc := NewStatsService(new(MockCounter), new(MockCounter), payments)
		stats, err := svc.OrderStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, buckets, stats)
	})

	t.Run("Aggregation failure propagates", func(t *testing.T) {
		payments := new(MockAnalytics)
		payments.On("CategoryStats", ctx).Return(nil, errors.New("store down")).Once()

		svc := NewStatsService(new(MockCounter), new(MockCounter), payments)
		_, err := svc.OrderStats(ctx)

		assert.Error(t, err)
	})
}
