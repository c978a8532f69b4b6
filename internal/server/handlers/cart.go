package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/cartsync/internal/server/storage"
	"github.com/iudanet/cartsync/internal/validation"
	"github.com/iudanet/cartsync/pkg/api"
)

const (
	// CartTokenHeader выбирает корзину
	CartTokenHeader = "X-Cart-Token"
	// DefaultCartToken корзина запросов без токена
	DefaultCartToken = "default"
)

// CartStorage определяет интерфейс корзин для handler
type CartStorage interface {
	ListItems(ctx context.Context, cartToken string) ([]*storage.CartLine, error)
	AddItem(ctx context.Context, cartToken string, productID int64, quantity int) (*storage.CartLine, error)
	UpdateItem(ctx context.Context, cartToken, lineID string, quantity int) (*storage.CartLine, error)
	RemoveItem(ctx context.Context, cartToken, lineID string) error
	ClearCart(ctx context.Context, cartToken string) (int, error)
}

// CartHandler handles cart requests
type CartHandler struct {
	responder
	storage CartStorage
}

// NewCartHandler creates a new cart handler
func NewCartHandler(logger *slog.Logger, storage CartStorage) *CartHandler {
	return &CartHandler{
		responder: responder{logger: logger},
		storage:   storage,
	}
}

// cartToken возвращает токен корзины из заголовка
func cartToken(r *http.Request) string {
	if token := strings.TrimSpace(r.Header.Get(CartTokenHeader)); token != "" {
		return token
	}
	return DefaultCartToken
}

// requireCartToken отклоняет запросы с некорректным токеном корзины
func (h *CartHandler) requireCartToken(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(r.Header.Get(CartTokenHeader))
		if err := validation.ValidateCartToken(token); err != nil {
			h.logger.WarnContext(r.Context(), "rejected cart token", slog.Any("error", err))
			h.sendError(w, err.Error(), http.StatusBadRequest)
			return
		}
		next(w, r)
	}
}

// List обрабатывает GET /cart
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lines, err := h.storage.ListItems(ctx, cartToken(r))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list cart items", slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := make([]api.CartLine, 0, len(lines))
	for _, line := range lines {
		resp = append(resp, toAPILine(line))
	}
	h.sendJSON(w, resp, http.StatusOK)
}

// Add обрабатывает POST /cart/items. Товар, уже лежащий в корзине,
// получает увеличенное количество вместо второй строки.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode add item request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ProductID < 1 {
		h.sendError(w, "productId must be a positive number", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		h.sendError(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	line, err := h.storage.AddItem(ctx, cartToken(r), req.ProductID, req.Quantity)
	if err != nil {
		h.storageError(w, r, "add", err)
		return
	}

	h.logger.InfoContext(ctx, "cart item added",
		slog.String("line_item_id", line.ID),
		slog.Int64("product_id", req.ProductID),
		slog.Int("quantity", line.Quantity))

	h.sendJSON(w, toAPILine(line), http.StatusCreated)
}

// Update обрабатывает PUT /cart/items/{id}
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	lineID := r.PathValue("id")

	var req api.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode update item request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Quantity < 1 {
		h.sendError(w, "quantity must be at least 1", http.StatusBadRequest)
		return
	}

	line, err := h.storage.UpdateItem(ctx, cartToken(r), lineID, req.Quantity)
	if err != nil {
		h.storageError(w, r, "update", err)
		return
	}

	h.sendJSON(w, toAPILine(line), http.StatusOK)
}

// Remove обрабатывает DELETE /cart/items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.storage.RemoveItem(r.Context(), cartToken(r), r.PathValue("id")); err != nil {
		h.storageError(w, r, "remove", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear обрабатывает POST /cart/clear
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	n, err := h.storage.ClearCart(ctx, cartToken(r))
	if err != nil {
		h.storageError(w, r, "clear", err)
		return
	}

	h.logger.InfoContext(ctx, "cart cleared", slog.Int("items_removed", n))
	w.WriteHeader(http.StatusNoContent)
}

// storageError переводит ошибки хранилища в HTTP статусы
func (h *CartHandler) storageError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrItemNotFound):
		h.sendError(w, "cart item not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrProductNotFound):
		h.sendError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrInvalidQuantity):
		h.sendError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(r.Context(), "cart storage failed", slog.String("op", op), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
	}
}

func toAPILine(line *storage.CartLine) api.CartLine {
	out := api.CartLine{
		ID:       line.ID,
		Product:  line.Product,
		Quantity: line.Quantity,
	}
	if line.Product.NumericID != nil {
		out.ProductID = *line.Product.NumericID
	}
	return out
}
