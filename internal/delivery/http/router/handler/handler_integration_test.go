package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"mezze/config"
	httpmiddleware "mezze/internal/delivery/http/middleware"
	"mezze/internal/delivery/http/validator"
	"mezze/internal/domain/l10n"
	"mezze/internal/infra/cartstore"
	"mezze/internal/infra/catalog"
	"mezze/internal/infra/qrcode"
	"mezze/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMenu = `
categories:
  - id: mains
    name: Mains
    nameAr: الأطباق الرئيسية
    items:
      - name: Koshari
        nameAr: كشري
        price: 45
      - name: Fattah
        price: [80, 120]
  - name: Cold Drinks
    items:
      - name: Fresh Mango Juice
        price: 30
`

// newTestServer wires the full HTTP stack against a fixture catalog, the
// same way the composition root does, minus the Fx lifecycle.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testMenu), 0o600))

	cfg := &config.Config{}
	cfg.Catalog.Path = path
	cfg.Assets.Dir = dir
	cfg.Assets.DefaultHero = "default-hero.jpg"
	cfg.Pricing.Currency = "EGP"
	cfg.Pricing.CurrencyAr = "جنيه"
	cfg.Menu.PageSize = 12
	cfg.Ordering.MessagingHost = "wa.me"
	cfg.Ordering.Phone = "201001234567"

	catalogRepo, err := catalog.NewCatalogRepository(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	formatter := l10n.NewFormatter(cfg.Pricing.Currency, cfg.Pricing.CurrencyAr)
	carts := cartstore.NewMemoryCartRepository()

	menuHandler := NewMenuHandler(impl.NewMenuService(catalogRepo, formatter, cfg), logger)
	cartHandler := NewCartHandler(impl.NewCartService(catalogRepo, carts, formatter), logger)
	orderHandler := NewOrderHandler(
		impl.NewOrderService(carts, formatter, qrcode.NewQRCodeService(128, "M"), cfg),
		logger,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/health", HealthCheck)
	e.GET("/api/menu/categories", menuHandler.ListCategories)
	e.GET("/api/menu/items", menuHandler.BrowseItems)
	e.GET("/api/menu/categories/:categoryID/items/:itemID", menuHandler.GetItem)
	e.GET("/api/cart", cartHandler.GetCart)
	e.DELETE("/api/cart", cartHandler.ClearCart)
	e.POST("/api/cart/items", cartHandler.AddItem)
	e.PATCH("/api/cart/items/:itemID", cartHandler.UpdateQuantity)
	e.DELETE("/api/cart/items/:itemID", cartHandler.RemoveItem)
	e.PUT("/api/cart/notes", cartHandler.SetNotes)
	e.POST("/api/order/compose", orderHandler.ComposeOrder)
	e.GET("/api/order/qr", orderHandler.OrderLinkQR)

	return e
}

func doRequest(e *echo.Echo, method, target, session string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if session != "" {
		req.Header.Set(HeaderXSessionID, session)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestMenuHandler_BrowseItems_DefaultCategory(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/menu/items", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Koshari")
	assert.Contains(t, rec.Body.String(), "EGP 45")
	assert.Contains(t, rec.Body.String(), `"total":2`)
}

func TestMenuHandler_BrowseItems_RejectsBadLimit(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/menu/items?limit=abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_LIMIT")
}

func TestMenuHandler_GetItem_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/api/menu/categories/mains/items/pizza", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ITEM_NOT_FOUND")
}

func TestCartHandler_IssuesSessionWhenHeaderMissing(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/cart/items", "", AddItemRequest{
		CategoryID: "mains",
		ItemID:     "koshari",
		Quantity:   1,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	issued := rec.Header().Get(HeaderXSessionID)
	_, err := uuid.Parse(issued)
	assert.NoError(t, err)
}

func TestCartHandler_SessionFlow(t *testing.T) {
	e := newTestServer(t)
	session := uuid.New().String()

	rec := doRequest(e, http.MethodPost, "/api/cart/items", session, AddItemRequest{
		CategoryID: "mains",
		ItemID:     "koshari",
		Quantity:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, session, rec.Header().Get(HeaderXSessionID))

	rec = doRequest(e, http.MethodPost, "/api/cart/items", session, AddItemRequest{
		CategoryID: "mains",
		ItemID:     "fattah",
		Quantity:   2,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Fattah locks the range minimum, so the total is 45 + 2*80.
	rec = doRequest(e, http.MethodGet, "/api/cart", session, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":3`)
	assert.Contains(t, rec.Body.String(), "EGP 205")

	// A different session sees an empty cart.
	rec = doRequest(e, http.MethodGet, "/api/cart", uuid.New().String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":0`)
}

func TestCartHandler_AddItem_ValidationError(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/cart/items", "", AddItemRequest{
		CategoryID: "mains",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestOrderHandler_ComposeOrder_EmptyCart(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/order/compose", uuid.New().String(), nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "EMPTY_CART")
}

func TestOrderHandler_ComposeOrder(t *testing.T) {
	e := newTestServer(t)
	session := uuid.New().String()

	rec := doRequest(e, http.MethodPost, "/api/cart/items", session, AddItemRequest{
		CategoryID: "mains",
		ItemID:     "koshari",
		Quantity:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodPost, "/api/order/compose", session, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wa.me")
	assert.Contains(t, rec.Body.String(), "201001234567")
}

func TestOrderHandler_OrderLinkQR(t *testing.T) {
	e := newTestServer(t)
	session := uuid.New().String()

	rec := doRequest(e, http.MethodPost, "/api/cart/items", session, AddItemRequest{
		CategoryID: "mains",
		ItemID:     "koshari",
		Quantity:   1,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/api/order/qr", session, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, rec.Body.Bytes()[:4])
}
