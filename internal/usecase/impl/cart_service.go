package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mezze/internal/domain/entity"
	domainerrors "mezze/internal/domain/errors"
	"mezze/internal/domain/l10n"
	"mezze/internal/domain/repository"
	"mezze/internal/usecase"

	"github.com/google/uuid"
)

type cartService struct {
	catalog   repository.CatalogRepository
	carts     repository.CartRepository
	formatter *l10n.Formatter
}

// NewCartService creates a new cart service instance
func NewCartService(catalog repository.CatalogRepository, carts repository.CartRepository, formatter *l10n.Formatter) usecase.CartUsecase {
	return &cartService{
		catalog:   catalog,
		carts:     carts,
		formatter: formatter,
	}
}

// AddItem puts quantity units of a catalog item into the cart.
func (s *cartService) AddItem(ctx context.Context, sessionID uuid.UUID, categoryID, itemID string, quantity int, lang entity.Language) (*usecase.CartView, error) {
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

	if quantity < 1 {
		quantity = 1
	}

	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(*item, quantity)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart, lang), nil
}

// UpdateQuantity sets a line's quantity; 0 or below removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID uuid.UUID, itemID string, quantity int, lang entity.Language) (*usecase.CartView, error) {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		// Same as removal; removing an absent line stays a no-op.
		cart.Remove(itemID)
	} else if !cart.SetQuantity(itemID, quantity) {
		return nil, domainerrors.ErrCartLineNotFound
	}

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart, lang), nil
}

// RemoveItem deletes a line; removing an absent line is a no-op.
func (s *cartService) RemoveItem(ctx context.Context, sessionID uuid.UUID, itemID string, lang entity.Language) (*usecase.CartView, error) {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Remove(itemID)

	if err := s.save(ctx, cart); err != nil {
		return nil, err
	}

	return s.view(cart, lang), nil
}

// ClearCart drops the stored cart, discarding lines and notes together.
// Deleting instead of saving an emptied cart frees abandoned sessions.
func (s *cartService) ClearCart(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}

	return nil
}

// SetNotes replaces the free-text order notes.
func (s *cartService) SetNotes(ctx context.Context, sessionID uuid.UUID, notes string) error {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return err
	}

	cart.Notes = notes

	return s.save(ctx, cart)
}

// GetCart returns the current cart contents and totals.
func (s *cartService) GetCart(ctx context.Context, sessionID uuid.UUID, lang entity.Language) (*usecase.CartView, error) {
	cart, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return s.view(cart, lang), nil
}

func (s *cartService) loadOrCreate(ctx context.Context, sessionID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.carts.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return entity.NewCart(sessionID), nil
		}

		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return cart, nil
}

func (s *cartService) save(ctx context.Context, cart *entity.Cart) error {
	cart.UpdatedAt = time.Now()

	if err := s.carts.Save(ctx, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func (s *cartService) view(cart *entity.Cart, lang entity.Language) *usecase.CartView {
	view := &usecase.CartView{
		SessionID:           cart.ID.String(),
		Lines:               make([]usecase.CartLineView, 0, len(cart.Lines)),
		TotalItems:          cart.TotalItems(),
		TotalPrice:          cart.TotalPrice(),
		FormattedTotalPrice: s.formatter.FormatAmount(cart.TotalPrice(), lang),
		Notes:               cart.Notes,
	}

	for _, line := range cart.Lines {
		view.Lines = append(view.Lines, usecase.CartLineView{
			ItemID:             line.ItemID,
			Name:               line.DisplayName(lang),
			UnitPrice:          line.UnitPrice,
			FormattedUnitPrice: s.formatter.FormatAmount(line.UnitPrice, lang),
			Quantity:           line.Quantity,
			LineTotal:          line.LineTotal(),
			FormattedLineTotal: s.formatter.FormatAmount(line.LineTotal(), lang),
		})
	}

	return view
}
