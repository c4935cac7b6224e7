package usecase

import (
	"context"

	"mezze/internal/domain/entity"

	"github.com/google/uuid"
)

// CartLineView is the display form of one cart line.
type CartLineView struct {
	ItemID             string  `json:"item_id"`
	Name               string  `json:"name"`
	UnitPrice          float64 `json:"unit_price"`
	FormattedUnitPrice string  `json:"formatted_unit_price"`
	Quantity           int     `json:"quantity"`
	LineTotal          float64 `json:"line_total"`
	FormattedLineTotal string  `json:"formatted_line_total"`
}

// CartView is the display form of the whole cart.
type CartView struct {
	SessionID           string         `json:"session_id"`
	Lines               []CartLineView `json:"lines"`
	TotalItems          int            `json:"total_items"`
	TotalPrice          float64        `json:"total_price"`
	FormattedTotalPrice string         `json:"formatted_total_price"`
	Notes               string         `json:"notes,omitempty"`
}

// CartUsecase defines the interface for the per-session cart. A cart is
// created implicitly the first time a session touches it.
type CartUsecase interface {
	// AddItem puts quantity units of a catalog item into the cart,
	// locking the unit price on first add.
	AddItem(ctx context.Context, sessionID uuid.UUID, categoryID, itemID string, quantity int, lang entity.Language) (*CartView, error)

	// UpdateQuantity sets a line's quantity to an absolute value;
	// values of 0 or below remove the line.
	UpdateQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int, lang entity.Language) (*CartView, error)

	// RemoveItem deletes a line; removing an absent line is a no-op.
	RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string, lang entity.Language) (*CartView, error)

	// ClearCart empties the cart and its notes together.
	ClearCart(ctx context.Context, sessionID uuid.UUID) error

	// SetNotes replaces the free-text order notes.
	SetNotes(ctx context.Context, sessionID uuid.UUID, notes string) error

	// GetCart returns the current cart contents and totals.
	GetCart(ctx context.Context, sessionID uuid.UUID, lang entity.Language) (*CartView, error)
}
