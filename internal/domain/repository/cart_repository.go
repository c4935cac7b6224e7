package repository

import (
	"context"

	"mezze/internal/domain/entity"
	"mezze/internal/errors"

	"github.com/google/uuid"
)

// ErrCartNotFound is returned when no cart exists for the session id.
var ErrCartNotFound = errors.New("cart not found")

// CartRepository stores in-progress carts keyed by session id. Carts live
// in process memory only and are discarded when the process exits.
type CartRepository interface {
	// FindByID returns the cart for the given session id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cart, error)

	// Save inserts or replaces the cart.
	Save(ctx context.Context, cart *entity.Cart) error

	// Delete removes the cart for the given session id.
	Delete(ctx context.Context, id uuid.UUID) error
}
