package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one aggregated entry of the in-progress order. The unit
// price is locked when the item is first added and never re-read from the
// catalog afterwards.
type CartLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	NameAr    string  `json:"name_ar"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// DisplayName returns the localized line name when lang is Arabic and a
// localized value exists, otherwise the primary name.
func (l CartLine) DisplayName(lang Language) string {
	if lang == LanguageArabic && l.NameAr != "" {
		return l.NameAr
	}

	return l.Name
}

// LineTotal returns quantity * locked unit price.
func (l CartLine) LineTotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

// Cart is an ordered collection of cart lines, unique by item id, plus the
// free-text order notes. Invariants: no line has quantity <= 0, and
// TotalPrice always equals the sum of line totals.
type Cart struct {
	ID        uuid.UUID  `json:"id"`
	Lines     []CartLine `json:"lines"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart creates an empty cart for the given session id.
func NewCart(id uuid.UUID) *Cart {
	now := time.Now()

	return &Cart{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add puts quantity units of the item into the cart. An existing line for
// the same item id is incremented and keeps its locked unit price; a new
// line captures the item's current unit price. Quantities below 1 are
// ignored.
func (c *Cart) Add(item MenuItem, quantity int) {
	if quantity < 1 {
		return
	}

	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ID {
			c.Lines[i].Quantity += quantity

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ItemID:    item.ID,
		Name:      item.Name,
		NameAr:    item.NameAr,
		UnitPrice: item.Price.Unit(),
		Quantity:  quantity,
	})
}

// SetQuantity sets the line's quantity to exactly quantity. A quantity of
// 0 or below removes the line. It reports whether the line existed.
func (c *Cart) SetQuantity(itemID string, quantity int) bool {
	if quantity <= 0 {
		return c.Remove(itemID)
	}

	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity

			return true
		}
	}

	return false
}

// Remove deletes the line for the given item id. It reports whether the
// line existed; removing an absent line is a no-op.
func (c *Cart) Remove(itemID string) bool {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return true
		}
	}

	return false
}

// Clear empties all lines and the order notes together; notes belong to
// the in-progress order.
func (c *Cart) Clear() {
	c.Lines = nil
	c.Notes = ""
}

// Line returns the line for the given item id, if present.
func (c *Cart) Line(itemID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ItemID == itemID {
			return line, true
		}
	}

	return CartLine{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems returns the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice returns the sum of quantity * unit price across all lines.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.LineTotal()
	}

	return total
}
