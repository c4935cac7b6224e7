package impl

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"mezze/config"
	"mezze/internal/domain/entity"
	domainerrors "mezze/internal/domain/errors"
	"mezze/internal/domain/l10n"
	"mezze/internal/domain/repository"
	"mezze/internal/usecase"
)

type menuService struct {
	catalog   repository.CatalogRepository
	formatter *l10n.Formatter
	pageSize  int
}

// NewMenuService creates a new menu service instance
func NewMenuService(catalog repository.CatalogRepository, formatter *l10n.Formatter, cfg *config.Config) usecase.MenuUsecase {
	return &menuService{
		catalog:   catalog,
		formatter: formatter,
		pageSize:  cfg.Menu.PageSize,
	}
}

// ListCategories returns all categories in catalog order.
func (s *menuService) ListCategories(ctx context.Context, lang entity.Language) (*usecase.CategoryListView, error) {
	categories := s.catalog.Categories(ctx)

	view := &usecase.CategoryListView{
		Categories:        make([]usecase.CategoryView, 0, len(categories)),
		DefaultCategoryID: s.catalog.DefaultCategoryID(ctx),
	}

	for _, category := range categories {
		view.Categories = append(view.Categories, usecase.CategoryView{
			ID:           category.ID,
			Name:         category.DisplayName(lang),
			HeroImageURL: category.HeroImageURL,
			ItemCount:    len(category.Items),
		})
	}

	return view, nil
}

// BrowseItems filters, sorts and caps the items of one category.
func (s *menuService) BrowseItems(ctx context.Context, query usecase.BrowseQuery) (*usecase.ItemListView, error) {
	categoryID := query.CategoryID
	if categoryID == "" {
		categoryID = s.catalog.DefaultCategoryID(ctx)
	}

	category, err := s.catalog.CategoryByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, fmt.Errorf("failed to load category: %w", err)
	}

	matched := filterItems(category.Items, query.Query)
	sortItems(matched, query.Sort)

	limit := query.Limit
	if limit <= 0 {
		limit = s.pageSize
	}

	view := &usecase.ItemListView{
		Items: make([]usecase.ItemView, 0, min(limit, len(matched))),
		Total: len(matched),
	}

	for _, item := range matched {
		if len(view.Items) >= limit {
			break
		}
		view.Items = append(view.Items, s.itemView(item, query.Language))
	}

	if len(view.Items) == 0 {
		view.Notice = l10n.NoResults(query.Language)
	}

	return view, nil
}

// GetItem returns the display form of a single item.
func (s *menuService) GetItem(ctx context.Context, categoryID, itemID string, lang entity.Language) (*usecase.ItemView, error) {
	item, err := s.catalog.ItemByID(ctx, categoryID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCategoryNotFound):
			return nil, domainerrors.ErrCategoryNotFound
		case errors.Is(err, repository.ErrItemNotFound):
			return nil, domainerrors.ErrItemNotFound
		default:
			return nil, fmt.Errorf("failed to load item: %w", err)
		}
	}

	view := s.itemView(*item, lang)

	return &view, nil
}

func (s *menuService) itemView(item entity.MenuItem, lang entity.Language) usecase.ItemView {
	return usecase.ItemView{
		ID:          item.ID,
		Name:        item.DisplayName(lang),
		Description: item.DisplayDescription(lang),
		Price: usecase.PriceView{
			Min:     item.Price.Min(),
			Max:     item.Price.Max(),
			IsSet:   item.Price.IsSet(),
			IsRange: item.Price.IsRange(),
		},
		FormattedPrice: s.formatter.FormatPrice(item.Price, lang),
		ImageURL:       item.ImageURL,
	}
}

// filterItems keeps items whose name or description contains the query.
// Primary-language fields match case-insensitively; the Arabic fields
// match verbatim since the script has no case.
func filterItems(items []entity.MenuItem, query string) []entity.MenuItem {
	matched := make([]entity.MenuItem, 0, len(items))

	if strings.TrimSpace(query) == "" {
		return append(matched, items...)
	}

	lowered := strings.ToLower(query)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), lowered) ||
			strings.Contains(strings.ToLower(item.Description), lowered) ||
			strings.Contains(item.NameAr, query) ||
			strings.Contains(item.DescriptionAr, query) {
			matched = append(matched, item)
		}
	}

	return matched
}

// sortItems orders items in place. Low-to-high keys on the minimum of a
// price range, high-to-low on the maximum; both sorts are stable so equal
// keys keep catalog order.
func sortItems(items []entity.MenuItem, mode usecase.SortMode) {
	switch mode {
	case usecase.SortPriceLowHigh:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.Min() < items[j].Price.Min()
		})
	case usecase.SortPriceHighLow:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price.Max() > items[j].Price.Max()
		})
	case usecase.SortDefault:
	}
}
