package repository

import (
	"context"

	"mezze/internal/domain/entity"
	"mezze/internal/errors"
)

var (
	// ErrCategoryNotFound is returned when no category exists for the id.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrItemNotFound is returned when no item exists for the id within the category.
	ErrItemNotFound = errors.New("menu item not found")
)

// CatalogRepository provides read-only access to the static menu catalog.
// Implementations load the catalog once at startup; the returned values
// must be treated as immutable.
type CatalogRepository interface {
	// Categories returns all categories in catalog order.
	Categories(ctx context.Context) []entity.Category

	// CategoryByID returns the category for the given id.
	CategoryByID(ctx context.Context, id string) (*entity.Category, error)

	// DefaultCategoryID returns the id of the first catalog category.
	DefaultCategoryID(ctx context.Context) string

	// ItemByID returns the item for the given ids.
	ItemByID(ctx context.Context, categoryID, itemID string) (*entity.MenuItem, error)
}
