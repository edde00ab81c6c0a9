package service

import (
	"context"
	"errors"
	"testing"

	"inventory_control/internal/models"
)

func TestAnalyticsService_Snapshot(t *testing.T) {
	bolts := &models.Product{ID: 1, Name: "Bolts", Quantity: 900, Price: 0.1}
	lathe := &models.Product{ID: 2, Name: "Lathe", Quantity: 1, Price: 4999.5}

	products := &mockProductRepo{
		CountFn:         func() (int, error) { return 2, nil },
		MostStockedFn:   func() (*models.Product, error) { return bolts, nil },
		MostExpensiveFn: func() (*models.Product, error) { return lathe, nil },
	}
	svc := NewAnalyticsService(products)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.TotalProducts != 2 {
		t.Fatalf("total: got %d, want 2", snap.TotalProducts)
	}
	if snap.MostStockedProduct != bolts || snap.MostExpensiveProduct != lathe {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestAnalyticsService_Snapshot_EmptyCatalog(t *testing.T) {
	products := &mockProductRepo{
		CountFn:         func() (int, error) { return 0, nil },
		MostStockedFn:   func() (*models.Product, error) { return nil, nil },
		MostExpensiveFn: func() (*models.Product, error) { return nil, nil },
	}
	svc := NewAnalyticsService(products)

	snap, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if snap.TotalProducts != 0 || snap.MostStockedProduct != nil || snap.MostExpensiveProduct != nil {
		t.Fatalf("expected empty snapshot, got %+v", snap)
	}
}

func TestAnalyticsService_Snapshot_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	products := &mockProductRepo{
		CountFn: func() (int, error) { return 0, boom },
	}
	svc := NewAnalyticsService(products)

	if _, err := svc.Snapshot(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
