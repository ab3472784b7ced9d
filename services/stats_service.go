package services

import (
	"context"
	"fmt"

	"github.com/mohammaduzzal/bistro-boss-server/metrics"
	"github.com/mohammaduzzal/bistro-boss-server/models"
	"go.uber.org/zap"
)

// Counter reports the size of a collection.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// LedgerAnalytics is the read-only view of the payment ledger the stats
// service aggregates over.
type LedgerAnalytics interface {
	Count(ctx context.Context) (int64, error)
	TotalRevenue(ctx context.Context) (float64, error)
	CategoryStats(ctx context.Context) ([]models.CategoryStat, error)
	CountMenuItemRefs(ctx context.Context) (int64, error)
}

// StatsService derives admin dashboards from the payment ledger. It never
// writes anything.
type StatsService struct {
	users    Counter
	menu     Counter
	payments LedgerAnalytics
}

func NewStatsService(users, menu Counter, payments LedgerAnalytics) *StatsService {
	return &StatsService{users: users, menu: menu, payments: payments}
}

// AdminStats returns collection counts plus total revenue summed over the
// whole ledger.
func (s *StatsService) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	menuItems, err := s.menu.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}
	orders, err := s.payments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}
	revenue, err := s.payments.TotalRevenue(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return &models.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   revenue,
	}, nil
}

// OrderStats groups every purchased line item by menu category. References
// to menu items that have since been deleted are dropped by the join; the
// drop count is recorded so the data loss stays visible.
func (s *StatsService) OrderStats(ctx context.Context) ([]models.CategoryStat, error) {
	stats, err := s.payments.CategoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate order stats: %w", err)
	}

	totalRefs, err := s.payments.CountMenuItemRefs(ctx)
	if err != nil {
		// Observability only; the aggregation itself succeeded.
		zap.L().Warn("Failed to count menu item references", zap.Error(err))
		return stats, nil
	}

	var joined int64
	for _, stat := range stats {
		joined += stat.Quantity
	}
	if dropped := totalRefs - joined; dropped > 0 {
		metrics.OrderStatsDroppedRefs.Add(float64(dropped))
		zap.L().Warn("Order stats dropped unmatched menu item references",
			zap.Int64("dropped", dropped),
			zap.Int64("total_refs", totalRefs),
		)
	}
	return stats, nil
}
