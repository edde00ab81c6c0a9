package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inventory_control/internal/logger"
	"inventory_control/internal/models"
	"inventory_control/internal/repository"

	"github.com/google/uuid"
)

const itemsPerPage = 10

// CatalogService owns product mutations and listing. Every mutation appends
// an audit event; event failures are logged, never surfaced, so the audit
// trail cannot fail an already committed write.
type CatalogService struct {
	products  repository.Products
	eventRepo repository.EventRepo
	log       *logger.Logger
}

func NewCatalogService(products repository.Products, eventRepo repository.EventRepo, log *logger.Logger) *CatalogService {
	return &CatalogService{products: products, eventRepo: eventRepo, log: log}
}

// validateInput checks every field before any store access.
func validateInput(in ProductInput) error {
	if in.Name == "" {
		return invalidf("Product name is required")
	}
	if in.SKU == "" {
		return invalidf("SKU is required")
	}
	if in.Type == "" {
		return invalidf("Product type is required")
	}
	if in.Description == "" {
		return invalidf("Product description is required")
	}
	if in.Quantity == nil {
		return invalidf("Product quantity is required")
	}
	if in.Price == nil {
		return invalidf("Product price is required")
	}
	if *in.Quantity < 0 {
		return invalidf("Quantity must be a non-negative integer")
	}
	if *in.Price < 0 {
		return invalidf("Price must be a non-negative number")
	}
	return nil
}

// CreateOrMerge inserts a new product or, when the SKU already exists under
// the same name, adds the quantity to the stored row. A SKU stays bound to
// its first name: a different name is a conflict, never an overwrite. The
// write itself is a single conditional upsert, so two concurrent requests for
// a brand-new SKU cannot double-insert; the loser lands on the merge branch.
func (s *CatalogService) CreateOrMerge(ctx context.Context, in ProductInput, userID int) (CreateResult, error) {
	if err := validateInput(in); err != nil {
		return CreateResult{}, err
	}

	// Pre-read for the merged flag and an early name check. The upsert below
	// re-checks the name atomically, so a stale read here only costs a
	// friendlier error, not correctness.
	existing, err := s.products.GetBySKU(ctx, in.SKU)
	if err != nil {
		return CreateResult{}, err
	}
	if existing != nil && existing.Name != in.Name {
		return CreateResult{}, &SKUConflictError{SKU: in.SKU, ExistingName: existing.Name}
	}

	id, err := s.products.Upsert(ctx, models.Product{
		Name:        in.Name,
		Type:        in.Type,
		SKU:         in.SKU,
		ImageURL:    in.ImageURL,
		Description: in.Description,
		Quantity:    *in.Quantity,
		Price:       *in.Price,
		UserID:      userID,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNameMismatch) {
			// Lost a race against a concurrent insert under another name.
			return CreateResult{}, s.nameConflict(ctx, in.SKU)
		}
		return CreateResult{}, err
	}

	merged := existing != nil
	eventType := models.EventProductAdded
	desc := fmt.Sprintf("Product %q added with SKU %s", in.Name, in.SKU)
	if merged {
		eventType = models.EventQuantityMerged
		desc = fmt.Sprintf("Quantity merged into SKU %s", in.SKU)
	}
	s.appendEvent(ctx, eventType, desc, map[string]any{
		"product_id": id,
		"sku":        in.SKU,
		"quantity":   *in.Quantity,
	})

	return CreateResult{ID: id, Merged: merged}, nil
}

// SetQuantity overwrites (does not add to) the stored quantity.
func (s *CatalogService) SetQuantity(ctx context.Context, id, quantity int) error {
	if quantity < 0 {
		return invalidf("Valid quantity is required (must be a non-negative number)")
	}

	if err := s.products.SetQuantity(ctx, id, quantity); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	s.appendEvent(ctx, models.EventQuantitySet,
		fmt.Sprintf("Quantity of product %d set to %d", id, quantity),
		map[string]any{"product_id": id, "quantity": quantity})
	return nil
}

// List returns one page of products ordered by descending id. Pages below 1
// clamp to 1; pages past the end come back empty.
func (s *CatalogService) List(ctx context.Context, page int) (ProductPage, error) {
	if page < 1 {
		page = 1
	}

	total, err := s.products.Count(ctx)
	if err != nil {
		return ProductPage{}, err
	}
	totalPages := (total + itemsPerPage - 1) / itemsPerPage

	items, err := s.products.List(ctx, itemsPerPage, itemsPerPage*(page-1))
	if err != nil {
		return ProductPage{}, err
	}

	return ProductPage{
		Products: items,
		Pagination: models.Pagination{
			CurrentPage:     page,
			TotalPages:      totalPages,
			TotalProducts:   total,
			ItemsPerPage:    itemsPerPage,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
		},
	}, nil
}

// nameConflict builds the conflict error from the stored row.
func (s *CatalogService) nameConflict(ctx context.Context, sku string) error {
	existing, err := s.products.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}
	if existing == nil {
		// Row vanished between the failed upsert and this read.
		return repository.ErrNameMismatch
	}
	return &SKUConflictError{SKU: sku, ExistingName: existing.Name}
}

// appendEvent records an audit entry best-effort.
func (s *CatalogService) appendEvent(ctx context.Context, typ, desc string, meta map[string]any) {
	err := s.eventRepo.Append(ctx, models.InventoryEvent{
		EventID:     uuid.NewString(),
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil && s.log != nil {
		s.log.Errorw("inventory_event_append_failed", "err", err, "type", typ)
	}
}
