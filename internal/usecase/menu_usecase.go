package usecase

import (
	"context"

	"mezze/internal/domain/entity"
)

// SortMode selects the ordering of browsed menu items.
type SortMode string

const (
	// SortDefault preserves catalog order.
	SortDefault SortMode = "default"
	// SortPriceLowHigh orders by the minimum of a price range, ascending.
	SortPriceLowHigh SortMode = "low-high"
	// SortPriceHighLow orders by the maximum of a price range, descending.
	SortPriceHighLow SortMode = "high-low"
)

// ParseSortMode maps a raw string to a SortMode, falling back to catalog
// order for anything unrecognized.
func ParseSortMode(raw string) SortMode {
	switch SortMode(raw) {
	case SortPriceLowHigh, SortPriceHighLow:
		return SortMode(raw)
	default:
		return SortDefault
	}
}

// BrowseQuery describes one browse of a category.
type BrowseQuery struct {
	CategoryID string
	Query      string
	Sort       SortMode
	Limit      int
	Language   entity.Language
}

// PriceView exposes the raw price shape alongside its formatted rendering.
type PriceView struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	IsSet   bool    `json:"is_set"`
	IsRange bool    `json:"is_range"`
}

// ItemView is the display form of one menu item.
type ItemView struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Price          PriceView `json:"price"`
	FormattedPrice string    `json:"formatted_price"`
	ImageURL       string    `json:"image_url,omitempty"`
}

// ItemListView is the result of browsing a category. An empty item list is
// a valid result; Notice then carries the localized no-results text.
type ItemListView struct {
	Items  []ItemView `json:"items"`
	Total  int        `json:"total"` // Matches before the visible-count cap.
	Notice string     `json:"notice,omitempty"`
}

// CategoryView is the display form of one category.
type CategoryView struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	HeroImageURL string `json:"hero_image_url"`
	ItemCount    int    `json:"item_count"`
}

// CategoryListView lists all categories plus the default selection.
type CategoryListView struct {
	Categories        []CategoryView `json:"categories"`
	DefaultCategoryID string         `json:"default_category_id"`
}

// MenuUsecase defines the interface for browsing the menu catalog.
type MenuUsecase interface {
	// ListCategories returns all categories in catalog order.
	ListCategories(ctx context.Context, lang entity.Language) (*CategoryListView, error)

	// BrowseItems filters, sorts and caps the items of one category.
	BrowseItems(ctx context.Context, query BrowseQuery) (*ItemListView, error)

	// GetItem returns the display form of a single item.
	GetItem(ctx context.Context, categoryID, itemID string, lang entity.Language) (*ItemView, error)
}
