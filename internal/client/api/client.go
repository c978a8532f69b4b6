package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/cartsync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// CartTokenHeader идентифицирует корзину на стороне сервиса
const CartTokenHeader = "X-Cart-Token"

// DefaultTimeout ограничивает каждый HTTP вызов
const DefaultTimeout = 30 * time.Second

// ErrNotFound возвращается, когда сервис ответил 404
var ErrNotFound = errors.New("not found")

// StatusError описывает ответ сервиса с кодом вне диапазона 2xx
type StatusError struct {
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is позволяет сравнивать 404 с ErrNotFound через errors.Is
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Temporary reports whether retrying the same request may succeed.
// 5xx, 408 and 429 are temporary; every other status is final.
func (e *StatusError) Temporary() bool {
	switch {
	case e.StatusCode >= 500:
		return true
	case e.StatusCode == http.StatusRequestTimeout, e.StatusCode == http.StatusTooManyRequests:
		return true
	default:
		return false
	}
}

// IsPermanent reports whether err is a final rejection by the service.
// Transport errors and temporary statuses are not permanent.
func IsPermanent(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return !se.Temporary()
	}
	return false
}

// ClientAPI определяет контракт удалённой корзины
type ClientAPI interface {
	// GetCart возвращает текущие строки удалённой корзины
	GetCart(ctx context.Context) ([]api.RemoteCartItem, error)

	// AddItem добавляет товар; сервис может слить его с существующей строкой
	AddItem(ctx context.Context, req api.AddItemRequest) (*api.RemoteCartItem, error)

	// UpdateItem меняет количество в строке
	UpdateItem(ctx context.Context, lineItemID string, req api.UpdateItemRequest) error

	// RemoveItem удаляет строку
	RemoveItem(ctx context.Context, lineItemID string) error

	// ClearCart очищает корзину
	ClearCart(ctx context.Context) error

	// GetProduct возвращает товар по кандидату id, ErrNotFound если его нет
	GetProduct(ctx context.Context, id string) (api.ProductRecord, error)

	// Health проверяет доступность сервиса
	Health(ctx context.Context) error
}

// Client представляет HTTP клиент для взаимодействия с сервисом корзины
type Client struct {
	httpClient *http.Client
	baseURL    string
	cartToken  string
}

// Option настраивает Client
type Option func(*Client)

// WithTimeout задаёт таймаут на один запрос
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithCartToken передаёт токен корзины в каждом запросе
func WithCartToken(token string) Option {
	return func(c *Client) {
		c.cartToken = token
	}
}

// WithHTTPClient подменяет http.Client (тесты, прокси)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient создает новый API клиент
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// токен корзины должен пережить редирект
				if len(via) > 0 && via[0].Header.Get(CartTokenHeader) != "" {
					req.Header.Set(CartTokenHeader, via[0].Header.Get(CartTokenHeader))
				}
				return nil
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetCart получает снимок удалённой корзины
func (c *Client) GetCart(ctx context.Context) ([]api.RemoteCartItem, error) {
	var snapshot api.CartSnapshot
	if err := c.doRequest(ctx, http.MethodGet, "/cart", nil, &snapshot); err != nil {
		return nil, fmt.Errorf("get cart request failed: %w", err)
	}
	if snapshot == nil {
		return []api.RemoteCartItem{}, nil
	}
	return snapshot, nil
}

// AddItem добавляет товар в удалённую корзину
func (c *Client) AddItem(ctx context.Context, req api.AddItemRequest) (*api.RemoteCartItem, error) {
	var raw json.RawMessage
	if err := c.doRequest(ctx, http.MethodPost, "/cart/items", req, &raw); err != nil {
		return nil, fmt.Errorf("add item request failed: %w", err)
	}

	// тело ответа необязательно
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var item api.RemoteCartItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, nil //nolint:nilerr // неразборчивый ответ не отменяет успешное добавление
	}
	return &item, nil
}

// UpdateItem меняет количество в строке удалённой корзины
func (c *Client) UpdateItem(ctx context.Context, lineItemID string, req api.UpdateItemRequest) error {
	path := "/cart/items/" + url.PathEscape(lineItemID)
	if err := c.doRequest(ctx, http.MethodPut, path, req, nil); err != nil {
		return fmt.Errorf("update item request failed: %w", err)
	}
	return nil
}

// RemoveItem удаляет строку удалённой корзины
func (c *Client) RemoveItem(ctx context.Context, lineItemID string) error {
	path := "/cart/items/" + url.PathEscape(lineItemID)
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("remove item request failed: %w", err)
	}
	return nil
}

// ClearCart очищает удалённую корзину
func (c *Client) ClearCart(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/cart/clear", nil, nil); err != nil {
		return fmt.Errorf("clear cart request failed: %w", err)
	}
	return nil
}

// GetProduct получает товар по id. Ответ может быть как самим товаром,
// так и обёрткой {"success": true, "data": {...}}.
func (c *Client) GetProduct(ctx context.Context, id string) (api.ProductRecord, error) {
	var raw json.RawMessage
	path := "/products/" + url.PathEscape(id)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, fmt.Errorf("get product %q request failed: %w", id, err)
	}

	record, err := decodeProduct(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode product %q: %w", id, err)
	}
	return record, nil
}

// Health проверяет доступность сервиса
func (c *Client) Health(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodGet, "/health", nil, nil); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

func decodeProduct(raw json.RawMessage) (api.ProductRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New("empty product")
	}

	if data, ok := obj["data"].(map[string]any); ok {
		if _, wrapped := obj["success"]; wrapped {
			return api.ProductRecord(data), nil
		}
	}
	return api.ProductRecord(obj), nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cartToken != "" {
		req.Header.Set(CartTokenHeader, c.cartToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func statusError(code int, body []byte) *StatusError {
	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		msg := errResp.Message
		if msg == "" {
			msg = errResp.Error
		}
		if msg != "" {
			return &StatusError{StatusCode: code, Message: msg}
		}
	}
	return &StatusError{StatusCode: code, Message: strings.TrimSpace(truncate(string(body), 256))}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..." + strconv.Itoa(len(s)-n) + " more bytes"
}
