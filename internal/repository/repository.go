package repository

import (
	"context"
	"database/sql"
	"time"

	"inventory_control/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, email, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*models.User, error)
}

type Products interface {
	// Upsert inserts the product or, when the SKU already exists under the
	// same name, adds the quantity to the stored row. The SKU uniqueness
	// constraint arbitrates concurrent first inserts.
	Upsert(ctx context.Context, p models.Product) (int, error)
	GetBySKU(ctx context.Context, sku string) (*models.Product, error)
	SetQuantity(ctx context.Context, id, quantity int) error
	List(ctx context.Context, limit, offset int) ([]models.Product, error)
	Count(ctx context.Context) (int, error)
	MostStocked(ctx context.Context) (*models.Product, error)
	MostExpensive(ctx context.Context) (*models.Product, error)
}

type EventRepo interface {
	Append(ctx context.Context, e models.InventoryEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.InventoryEvent, error)
}

type Repository struct {
	Auth     Authorization
	Products Products
	Events   EventRepo
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Auth:     NewUserRepository(db),
		Products: NewProductRepository(db),
		Events:   NewEventSQLite(db),
	}
}
