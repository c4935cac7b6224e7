package impl

import (
	"context"

	"mezze/config"
	"mezze/internal/domain/entity"
	"mezze/internal/domain/l10n"
	"mezze/internal/domain/repository"
)

// fakeCatalog is a hand-rolled CatalogRepository over fixture data.
type fakeCatalog struct {
	categories []entity.Category
}

func (f *fakeCatalog) Categories(_ context.Context) []entity.Category {
	return f.categories
}

func (f *fakeCatalog) CategoryByID(_ context.Context, id string) (*entity.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}

	return nil, repository.ErrCategoryNotFound
}

func (f *fakeCatalog) DefaultCategoryID(_ context.Context) string {
	return f.categories[0].ID
}

func (f *fakeCatalog) ItemByID(_ context.Context, categoryID, itemID string) (*entity.MenuItem, error) {
	category, err := f.CategoryByID(context.Background(), categoryID)
	if err != nil {
		return nil, err
	}

	for i := range category.Items {
		if category.Items[i].ID == itemID {
			return &category.Items[i], nil
		}
	}

	return nil, repository.ErrItemNotFound
}

func testCatalog() *fakeCatalog {
	return &fakeCatalog{categories: []entity.Category{
		{
			ID:     "mains",
			Name:   "Mains",
			NameAr: "الأطباق الرئيسية",
			Items: []entity.MenuItem{
				{
					ID:            "koshari",
					Name:          "Koshari",
					NameAr:        "كشري",
					Description:   "Rice, lentils and pasta with tomato sauce",
					DescriptionAr: "أرز وعدس ومكرونة مع صلصة الطماطم",
					Price:         entity.NewPrice(45),
				},
				{
					ID:     "fattah",
					Name:   "Fattah",
					NameAr: "فتة",
					Price:  entity.NewPrice(80, 120),
				},
				{
					ID:          "molokhia",
					Name:        "Molokhia",
					Description: "Green soup with garlic and coriander",
					Price:       entity.NewPrice(45),
				},
				{
					ID:   "chefs-special",
					Name: "Chef's Special",
				},
			},
		},
		{
			ID:   "drinks",
			Name: "Cold Drinks",
			Items: []entity.MenuItem{
				{ID: "mango", Name: "Fresh Mango Juice", Price: entity.NewPrice(30)},
			},
		},
	}}
}

func testFormatter() *l10n.Formatter {
	return l10n.NewFormatter("EGP", "جنيه")
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Menu.PageSize = 12
	cfg.Ordering.MessagingHost = "wa.me"
	cfg.Ordering.Phone = "201001234567"

	return cfg
}
