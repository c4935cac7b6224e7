// Package cartstore keeps in-progress carts in process memory. There is
// deliberately no durable backing: a cart lives exactly as long as the
// visitor's session and the process.
package cartstore

import (
	"context"
	"sync"

	"mezze/internal/domain/entity"
	"mezze/internal/domain/repository"

	"github.com/google/uuid"
)

type memoryCartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*entity.Cart
}

// NewMemoryCartRepository creates an empty in-memory cart store.
func NewMemoryCartRepository() repository.CartRepository {
	return &memoryCartRepository{
		carts: make(map[uuid.UUID]*entity.Cart),
	}
}

// FindByID returns a copy of the cart for the given session id.
func (r *memoryCartRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[id]
	if !ok {
		return nil, repository.ErrCartNotFound
	}

	return clone(cart), nil
}

// Save inserts or replaces the cart. The stored value is a copy so later
// caller-side mutation cannot bypass Save.
func (r *memoryCartRepository) Save(_ context.Context, cart *entity.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.ID] = clone(cart)

	return nil
}

// Delete removes the cart for the given session id.
func (r *memoryCartRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, id)

	return nil
}

func clone(cart *entity.Cart) *entity.Cart {
	copied := *cart
	copied.Lines = make([]entity.CartLine, len(cart.Lines))
	copy(copied.Lines, cart.Lines)

	return &copied
}
