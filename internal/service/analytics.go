package service

import (
	"context"

	"inventory_control/internal/repository"
)

type AnalyticsService struct {
	products repository.Products
}

func NewAnalyticsService(products repository.Products) *AnalyticsService {
	return &AnalyticsService{products: products}
}

// Snapshot returns the catalog extremes plus the total row count. Ties are
// broken arbitrarily by whatever row the store orders first; an empty catalog
// yields nil extremes.
func (s *AnalyticsService) Snapshot(ctx context.Context) (Snapshot, error) {
	total, err := s.products.Count(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	mostStocked, err := s.products.MostStocked(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	mostExpensive, err := s.products.MostExpensive(ctx)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		TotalProducts:        total,
		MostStockedProduct:   mostStocked,
		MostExpensiveProduct: mostExpensive,
	}, nil
}
