package service

import (
	"context"
	"time"

	"inventory_control/internal/logger"
	"inventory_control/internal/models"
	"inventory_control/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, email, password string) (*models.User, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (*Claims, error)
}

// Catalog exposes product operations: create-or-merge by SKU, quantity
// overwrite, and paginated listing.
type Catalog interface {
	CreateOrMerge(ctx context.Context, in ProductInput, userID int) (CreateResult, error)
	SetQuantity(ctx context.Context, id, quantity int) error
	List(ctx context.Context, page int) (ProductPage, error)
}

// Analytics exposes read-only catalog extremes for dashboards.
type Analytics interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// EventLog exposes the append-only audit trail with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.InventoryEvent, error)
}

// ProductInput is the payload for create-or-merge. Quantity and Price are
// pointers so "absent" and "zero" stay distinguishable for validation.
type ProductInput struct {
	Name        string
	Type        string
	SKU         string
	ImageURL    string
	Description string
	Quantity    *int
	Price       *float64
}

// CreateResult reports the affected row and whether an existing SKU absorbed
// the quantity instead of a new row being created.
type CreateResult struct {
	ID     int
	Merged bool
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products   []models.Product
	Pagination models.Pagination
}

// Snapshot is the analytics view of the catalog. The extreme fields are nil
// while the catalog is empty.
type Snapshot struct {
	TotalProducts        int             `json:"totalProducts"`
	MostStockedProduct   *models.Product `json:"mostStockedProduct"`
	MostExpensiveProduct *models.Product `json:"mostExpensiveProduct"`
}

// LogFilter supports audit history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "PRODUCT_ADDED", "QUANTITY_MERGED", "QUANTITY_SET"
}

type Service struct {
	Authorization
	Catalog
	Analytics
	EventLog
}

// NewService wires the repository layer into concrete services. The signing
// key is process-wide state loaded once at startup.
func NewService(repos *repository.Repository, signingKey string, log *logger.Logger) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, signingKey),
		Catalog:       NewCatalogService(repos.Products, repos.Events, log),
		Analytics:     NewAnalyticsService(repos.Products),
		EventLog:      NewEventLogService(repos.Events),
	}
}
