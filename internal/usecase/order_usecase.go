package usecase

import (
	"context"

	"mezze/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderHandoff is the composed order: the human-readable message and the
// messaging deep link that carries it. Navigation is the caller's job; the
// service itself has no further side effect.
type OrderHandoff struct {
	Message string `json:"message"`
	Link    string `json:"link"`
}

// OrderUsecase defines the interface for turning a cart into an outbound
// order message.
type OrderUsecase interface {
	// ComposeOrder builds the bilingual order message and deep link for
	// the session's cart. Fails on an empty cart.
	ComposeOrder(ctx context.Context, sessionID uuid.UUID, lang entity.Language) (*OrderHandoff, error)

	// OrderLinkQR renders the deep link as a PNG QR code.
	OrderLinkQR(ctx context.Context, sessionID uuid.UUID, lang entity.Language) ([]byte, error)
}
