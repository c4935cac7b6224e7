package entity

// MenuItem represents one dish in the catalog. The catalog is loaded once
// at startup and never mutated afterwards.
type MenuItem struct {
	ID            string `json:"id"`             // Stable identifier, unique within its category.
	Name          string `json:"name"`           // Primary-language display name.
	NameAr        string `json:"name_ar"`        // Localized display name (optional).
	Description   string `json:"description"`    // Primary-language description (optional).
	DescriptionAr string `json:"description_ar"` // Localized description (optional).
	Price         Price  `json:"-"`              // Scalar or range price, possibly unset.
	ImageURL      string `json:"image_url"`      // Resolved image path, empty when the item has none.
}

// DisplayName returns the localized name when lang is Arabic and a
// localized value exists, otherwise the primary name.
func (m MenuItem) DisplayName(lang Language) string {
	if lang == LanguageArabic && m.NameAr != "" {
		return m.NameAr
	}

	return m.Name
}

// DisplayDescription returns the localized description when lang is Arabic
// and a localized value exists, otherwise the primary description.
func (m MenuItem) DisplayDescription(lang Language) string {
	if lang == LanguageArabic && m.DescriptionAr != "" {
		return m.DescriptionAr
	}

	return m.Description
}

// Category represents an ordered group of menu items.
type Category struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	NameAr       string     `json:"name_ar"`
	HeroImageURL string     `json:"hero_image_url"` // Resolved hero path, default fallback already applied.
	Items        []MenuItem `json:"items"`
}

// DisplayName returns the localized category name when lang is Arabic and
// a localized value exists, otherwise the primary name.
func (c Category) DisplayName(lang Language) string {
	if lang == LanguageArabic && c.NameAr != "" {
		return c.NameAr
	}

	return c.Name
}
