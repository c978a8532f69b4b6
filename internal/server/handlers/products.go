package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/cartsync/internal/server/storage"
	"github.com/iudanet/cartsync/pkg/api"
)

// ProductStorage определяет интерфейс каталога для handler
type ProductStorage interface {
	GetProduct(ctx context.Context, id string) (*api.Product, error)
}

// ProductHandler отдаёт товары каталога
type ProductHandler struct {
	responder
	storage ProductStorage
}

// NewProductHandler creates a new product handler
func NewProductHandler(logger *slog.Logger, storage ProductStorage) *ProductHandler {
	return &ProductHandler{
		responder: responder{logger: logger},
		storage:   storage,
	}
}

// Get обрабатывает GET /products/{id}. id может быть UUID или числовым ключом.
// Ответ обёрнут в {"success": true, "data": {...}}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		h.sendError(w, "product id is required", http.StatusBadRequest)
		return
	}

	product, err := h.storage.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrProductNotFound) {
			h.logger.DebugContext(ctx, "product not found", slog.String("product_id", id))
			h.sendError(w, "product not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get product", slog.String("product_id", id), slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.sendJSON(w, api.ProductEnvelope{Success: true, Data: *product}, http.StatusOK)
}
