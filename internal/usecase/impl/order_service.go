package impl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"mezze/config"
	"mezze/internal/domain/entity"
	domainerrors "mezze/internal/domain/errors"
	"mezze/internal/domain/l10n"
	"mezze/internal/domain/repository"
	"mezze/internal/domain/service"
	"mezze/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	carts     repository.CartRepository
	formatter *l10n.Formatter
	qr        service.QRCodeService
	host      string
	phone     string
}

// NewOrderService creates a new order service instance
func NewOrderService(carts repository.CartRepository, formatter *l10n.Formatter, qr service.QRCodeService, cfg *config.Config) usecase.OrderUsecase {
	return &orderService{
		carts:     carts,
		formatter: formatter,
		qr:        qr,
		host:      cfg.Ordering.MessagingHost,
		phone:     cfg.Ordering.Phone,
	}
}

// ComposeOrder builds the bilingual order message and deep link for the
// session's cart.
func (s *orderService) ComposeOrder(ctx context.Context, sessionID uuid.UUID, lang entity.Language) (*usecase.OrderHandoff, error) {
	cart, err := s.carts.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, domainerrors.ErrEmptyCart
		}

		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	message := s.buildMessage(cart, lang)

	return &usecase.OrderHandoff{
		Message: message,
		Link:    s.buildLink(message),
	}, nil
}

// OrderLinkQR renders the deep link as a PNG QR code.
func (s *orderService) OrderLinkQR(ctx context.Context, sessionID uuid.UUID, lang entity.Language) ([]byte, error) {
	handoff, err := s.ComposeOrder(ctx, sessionID, lang)
	if err != nil {
		return nil, err
	}

	png, err := s.qr.GenerateLinkQR(handoff.Link)
	if err != nil {
		return nil, fmt.Errorf("failed to render order QR: %w", err)
	}

	return png, nil
}

// buildMessage renders the plain-text order: greeting, one bullet per
// cart line with quantity, localized-or-primary name and line total, the
// grand total, the notes section when notes exist, and a thank-you line.
func (s *orderService) buildMessage(cart *entity.Cart, lang entity.Language) string {
	var b strings.Builder

	b.WriteString(l10n.Greeting(lang))
	b.WriteString("\n\n")

	for _, line := range cart.Lines {
		b.WriteString(fmt.Sprintf("• %dx %s - %s\n",
			line.Quantity,
			line.DisplayName(lang),
			s.formatter.FormatAmount(line.LineTotal(), lang),
		))
	}

	b.WriteString("\n")
	b.WriteString(l10n.TotalLabel(lang))
	b.WriteString(": ")
	b.WriteString(s.formatter.FormatAmount(cart.TotalPrice(), lang))

	if cart.Notes != "" {
		b.WriteString("\n")
		b.WriteString(l10n.NotesLabel(lang))
		b.WriteString(": ")
		b.WriteString(cart.Notes)
	}

	b.WriteString("\n\n")
	b.WriteString(l10n.ThankYou(lang))

	return b.String()
}

func (s *orderService) buildLink(message string) string {
	query := url.Values{}
	query.Set("text", message)

	link := url.URL{
		Scheme:   "https",
		Host:     s.host,
		Path:     "/" + s.phone,
		RawQuery: query.Encode(),
	}

	return link.String()
}
