package handlers

import (
	"log/slog"
	"net/http"
)

// Storage всё, что нужно маршрутам от хранилища
type Storage interface {
	CartStorage
	ProductStorage
	Pinger
}

// NewRouter регистрирует маршруты сервиса корзины
func NewRouter(logger *slog.Logger, store Storage, version string) *http.ServeMux {
	cart := NewCartHandler(logger, store)
	products := NewProductHandler(logger, store)
	health := NewHealthHandler(logger, store, version)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /cart", cart.requireCartToken(cart.List))
	mux.HandleFunc("POST /cart/items", cart.requireCartToken(cart.Add))
	mux.HandleFunc("PUT /cart/items/{id}", cart.requireCartToken(cart.Update))
	mux.HandleFunc("DELETE /cart/items/{id}", cart.requireCartToken(cart.Remove))
	mux.HandleFunc("POST /cart/clear", cart.requireCartToken(cart.Clear))
	mux.HandleFunc("GET /products/{id}", products.Get)
	mux.HandleFunc("GET /health", health.Health)

	return mux
}
