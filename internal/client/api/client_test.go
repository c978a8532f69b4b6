package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cartsync/pkg/api"
)

// TestNewClient проверяет создание нового клиента
func TestNewClient(t *testing.T) {
	client := NewClient("http://localhost:8080/")

	assert.NotNil(t, client)
	assert.Equal(t, "http://localhost:8080", client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)

	client = NewClient("http://localhost:8080", WithTimeout(5*time.Second), WithCartToken("tok"))
	assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	assert.Equal(t, "tok", client.cartToken)
}

func TestClient_GetCart(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantIDs   []string
		wantNames []string
	}{
		{
			name:      "bare array with nested product",
			body:      `[{"id":101,"productId":7,"quantity":2,"product":{"name":"Mug","price":9.5}}]`,
			wantIDs:   []string{"101"},
			wantNames: []string{"Mug"},
		},
		{
			name:      "wrapped items with flat fields",
			body:      `{"items":[{"id":"a1","product_id":"sku-1","quantity":1,"name":"Tee","price":"12.00"}]}`,
			wantIDs:   []string{"a1"},
			wantNames: []string{"Tee"},
		},
		{
			name:    "empty",
			body:    `[]`,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/cart", r.URL.Path)
				assert.Equal(t, "cart-1", r.Header.Get(CartTokenHeader))
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, WithCartToken("cart-1"))
			items, err := client.GetCart(context.Background())
			require.NoError(t, err)
			require.NotNil(t, items)

			ids := make([]string, 0, len(items))
			for i, item := range items {
				ids = append(ids, item.ID.String())
				assert.Equal(t, tt.wantNames[i], item.Product["name"])
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestClient_AddItem(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.AddItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(42), req.ProductID)
		assert.Equal(t, 3, req.Quantity)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"line-9","productId":42,"quantity":3}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	item, err := client.AddItem(context.Background(), api.AddItemRequest{ProductID: 42, Quantity: 3})
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "line-9", item.ID.String())
	assert.Equal(t, "42", item.ProductID.String())
	assert.Equal(t, 3, item.Quantity)
}

func TestClient_AddItem_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	item, err := NewClient(server.URL).AddItem(context.Background(), api.AddItemRequest{ProductID: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestClient_UpdateRemoveClear(t *testing.T) {
	type call struct {
		method string
		path   string
		body   string
	}
	var calls []call

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		raw, _ := json.Marshal(body)
		calls = append(calls, call{method: r.Method, path: r.URL.EscapedPath(), body: string(raw)})
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	require.NoError(t, client.UpdateItem(ctx, "line 1", api.UpdateItemRequest{Quantity: 4}))
	require.NoError(t, client.RemoveItem(ctx, "line-2"))
	require.NoError(t, client.ClearCart(ctx))

	assert.Equal(t, []call{
		{method: http.MethodPut, path: "/cart/items/line%201", body: `{"quantity":4}`},
		{method: http.MethodDelete, path: "/cart/items/line-2", body: "null"},
		{method: http.MethodPost, path: "/cart/clear", body: "null"},
	}, calls)
}

func TestClient_GetProduct(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "bare", body: `{"id":"7","name":"Lamp","price":"19.90"}`, want: "Lamp"},
		{name: "envelope", body: `{"success":true,"data":{"id":"7","name":"Desk","price":120}}`, want: "Desk"},
		{name: "data field without envelope", body: `{"name":"Chair","data":{"name":"x"}}`, want: "Chair"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/products/7", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			record, err := NewClient(server.URL).GetProduct(context.Background(), "7")
			require.NoError(t, err)
			assert.Equal(t, tt.want, record["name"])
			assert.True(t, record.Usable())
		})
	}
}

func TestClient_GetProduct_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Error: "not_found", Message: "product not found"})
	}))
	defer server.Close()

	_, err := NewClient(server.URL).GetProduct(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "server error (404): product not found")
}

// TestClient_Errors проверяет классификацию ошибок сервиса
func TestClient_Errors(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		wantMsg       string
		statusCode    int
		wantPermanent bool
	}{
		{
			name:          "bad request",
			statusCode:    http.StatusBadRequest,
			body:          `{"error":"bad_request","message":"quantity must be positive"}`,
			wantMsg:       "server error (400): quantity must be positive",
			wantPermanent: true,
		},
		{
			name:          "too many requests",
			statusCode:    http.StatusTooManyRequests,
			body:          `{"error":"rate limit exceeded"}`,
			wantMsg:       "server error (429): rate limit exceeded",
			wantPermanent: false,
		},
		{
			name:          "internal error plain text",
			statusCode:    http.StatusInternalServerError,
			body:          "Internal Server Error",
			wantMsg:       "server error (500): Internal Server Error",
			wantPermanent: false,
		},
		{
			name:          "empty body",
			statusCode:    http.StatusConflict,
			body:          "",
			wantMsg:       "request failed with status 409",
			wantPermanent: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL).ClearCart(context.Background())
			require.Error(t, err)

			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.statusCode, se.StatusCode)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantPermanent, IsPermanent(err))
		})
	}
}

func TestClient_TransportErrorIsNotPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewClient(url).Health(context.Background())
	require.Error(t, err)
	assert.False(t, IsPermanent(err))
}

func TestClient_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).GetCart(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
