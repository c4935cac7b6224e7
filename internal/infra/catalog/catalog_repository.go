// Package catalog loads the static menu document and serves it read-only.
package catalog

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"mezze/config"
	"mezze/internal/domain/entity"
	"mezze/internal/domain/repository"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type catalogRepository struct {
	categories []entity.Category
	byCategory map[string]int
	byItem     map[string]map[string]int
}

// NewCatalogRepository loads the catalog YAML once and returns an
// immutable repository over it.
func NewCatalogRepository(cfg *config.Config) (repository.CatalogRepository, error) {
	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(file.Provider(cfg.Catalog.Path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s failed", cfg.Catalog.Path)
	}

	var doc document
	if err := koanfInstance.Unmarshal("", &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog failed")
	}

	return buildRepository(doc, cfg.Assets.DefaultHero)
}

func buildRepository(doc document, defaultHero string) (*catalogRepository, error) {
	if len(doc.Categories) == 0 {
		return nil, errors.New("catalog has no categories")
	}

	repo := &catalogRepository{
		byCategory: make(map[string]int, len(doc.Categories)),
		byItem:     make(map[string]map[string]int, len(doc.Categories)),
	}

	for _, rawCat := range doc.Categories {
		category, err := buildCategory(rawCat, defaultHero)
		if err != nil {
			return nil, err
		}

		if _, exists := repo.byCategory[category.ID]; exists {
			return nil, errors.Errorf("duplicate category id %q", category.ID)
		}

		itemIndex := make(map[string]int, len(category.Items))
		for i, item := range category.Items {
			itemIndex[item.ID] = i
		}

		repo.byCategory[category.ID] = len(repo.categories)
		repo.byItem[category.ID] = itemIndex
		repo.categories = append(repo.categories, category)
	}

	return repo, nil
}

func buildCategory(raw rawCategory, defaultHero string) (entity.Category, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return entity.Category{}, errors.New("category without a name")
	}

	id := raw.ID
	if id == "" {
		id = slugify(raw.Name)
	}

	hero := raw.HeroImage
	if hero == "" {
		hero = defaultHero
	}

	category := entity.Category{
		ID:           id,
		Name:         raw.Name,
		NameAr:       raw.NameAr,
		HeroImageURL: "/images/hero/" + hero,
		Items:        make([]entity.MenuItem, 0, len(raw.Items)),
	}

	seen := make(map[string]bool, len(raw.Items))
	for _, rawIt := range raw.Items {
		item, err := buildItem(rawIt, id)
		if err != nil {
			return entity.Category{}, errors.Wrapf(err, "category %q", id)
		}

		// Display names may legitimately repeat; ids must not. A slug
		// that collides gets a numeric suffix.
		item.ID = dedupe(item.ID, seen)
		seen[item.ID] = true

		category.Items = append(category.Items, item)
	}

	return category, nil
}

func buildItem(raw rawItem, categoryID string) (entity.MenuItem, error) {
	if strings.TrimSpace(raw.Name) == "" {
		return entity.MenuItem{}, errors.New("item without a name")
	}

	price, err := parsePrice(raw.Price)
	if err != nil {
		return entity.MenuItem{}, errors.Wrapf(err, "item %q", raw.Name)
	}

	id := raw.ID
	if id == "" {
		id = slugify(raw.Name)
	}

	item := entity.MenuItem{
		ID:            id,
		Name:          raw.Name,
		NameAr:        raw.NameAr,
		Description:   raw.Description,
		DescriptionAr: raw.DescriptionAr,
		Price:         price,
	}

	if raw.Image != "" {
		item.ImageURL = "/images/" + categoryID + "/" + raw.Image
	}

	return item, nil
}

// parsePrice accepts a missing value, a scalar number, or a list of
// numbers (the range bounds, in either order).
func parsePrice(raw any) (entity.Price, error) {
	if raw == nil {
		return entity.Price{}, nil
	}

	if list, ok := raw.([]any); ok {
		values := make([]float64, 0, len(list))
		for _, elem := range list {
			v, err := toFloat(elem)
			if err != nil {
				return entity.Price{}, err
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			return entity.Price{}, nil
		}

		return validatePrice(entity.NewPrice(values...))
	}

	v, err := toFloat(raw)
	if err != nil {
		return entity.Price{}, err
	}

	return validatePrice(entity.NewPrice(v))
}

func validatePrice(p entity.Price) (entity.Price, error) {
	if p.Min() < 0 {
		return entity.Price{}, errors.New("negative price")
	}

	return p, nil
}

func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	default:
		return 0, errors.Errorf("price value %v is not a number", raw)
	}
}

// slugify derives a stable id from a display name: lowercased, with
// non-alphanumeric runs collapsed to a single dash.
func slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastDash := true
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false

			continue
		}
		if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

func dedupe(id string, seen map[string]bool) string {
	if !seen[id] {
		return id
	}

	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", id, i)
		if !seen[candidate] {
			return candidate
		}
	}
}

// Categories returns all categories in catalog order.
func (r *catalogRepository) Categories(_ context.Context) []entity.Category {
	return r.categories
}

// CategoryByID returns the category for the given id.
func (r *catalogRepository) CategoryByID(_ context.Context, id string) (*entity.Category, error) {
	idx, ok := r.byCategory[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return &r.categories[idx], nil
}

// DefaultCategoryID returns the id of the first catalog category.
func (r *catalogRepository) DefaultCategoryID(_ context.Context) string {
	return r.categories[0].ID
}

// ItemByID returns the item for the given ids.
func (r *catalogRepository) ItemByID(_ context.Context, categoryID, itemID string) (*entity.MenuItem, error) {
	items, ok := r.byItem[categoryID]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	idx, ok := items[itemID]
	if !ok {
		return nil, repository.ErrItemNotFound
	}

	catIdx := r.byCategory[categoryID]

	return &r.categories[catIdx].Items[idx], nil
}
