package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// FlexID хранит идентификатор, пришедший из JSON как число или как строка.
// Бэкенд исторически отдаёт числовые id, новый каталог - UUID.
type FlexID struct {
	value any // json.Number | string | nil
}

// NewFlexID wraps a value that must be a json.Number, an integer, or a string.
func NewFlexID(v any) FlexID {
	switch t := v.(type) {
	case int:
		return FlexID{value: json.Number(fmt.Sprintf("%d", t))}
	case int64:
		return FlexID{value: json.Number(fmt.Sprintf("%d", t))}
	default:
		return FlexID{value: v}
	}
}

// Value returns the decoded value: json.Number, string or nil.
func (f FlexID) Value() any {
	return f.value
}

// String returns the textual form of the id.
func (f FlexID) String() string {
	switch v := f.value.(type) {
	case json.Number:
		return v.String()
	case string:
		return v
	default:
		return ""
	}
}

// IsZero reports whether no id was present.
func (f FlexID) IsZero() bool {
	return f.value == nil
}

// UnmarshalJSON accepts numbers, strings and null.
func (f *FlexID) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("failed to decode id: %w", err)
	}

	switch v.(type) {
	case json.Number, string, nil:
		f.value = v
		return nil
	default:
		return fmt.Errorf("id must be a number or a string, got %s", strings.TrimSpace(string(data)))
	}
}

// MarshalJSON writes the id back in its original JSON type.
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.value)
}

// RemoteCartItem представляет строку удалённой корзины.
// Данные товара приходят либо вложенным объектом product, либо плоскими полями
// (name, price, image, images, description, compare_price) - оба варианта сводятся в Product.
type RemoteCartItem struct {
	Product   map[string]any `json:"product,omitempty"`
	ID        FlexID         `json:"id"`
	ProductID FlexID         `json:"productId"`
	Quantity  int            `json:"quantity"`
}

var flatProductFields = []string{"name", "price", "image", "images", "description", "compare_price", "comparePrice"}

// UnmarshalJSON decodes both the nested and the flat line item shapes.
func (i *RemoteCartItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		Product        map[string]any `json:"product"`
		ID             FlexID         `json:"id"`
		ProductID      FlexID         `json:"productId"`
		ProductIDSnake FlexID         `json:"product_id"`
		Quantity       json.Number    `json:"quantity"`
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("failed to decode cart item: %w", err)
	}

	i.ID = raw.ID
	i.ProductID = raw.ProductID
	if i.ProductID.IsZero() {
		i.ProductID = raw.ProductIDSnake
	}
	i.Quantity = quantityFrom(raw.Quantity)
	i.Product = raw.Product

	if i.Product == nil {
		var flat map[string]any
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&flat); err != nil {
			return fmt.Errorf("failed to decode cart item fields: %w", err)
		}
		for _, key := range flatProductFields {
			if v, ok := flat[key]; ok {
				if i.Product == nil {
					i.Product = make(map[string]any)
				}
				i.Product[key] = v
			}
		}
	}

	return nil
}

func quantityFrom(n json.Number) int {
	if n == "" {
		return 0
	}
	if v, err := n.Int64(); err == nil {
		return int(clampQuantity(float64(v)))
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(clampQuantity(math.Floor(f)))
}

// clampQuantity держит количество в пределах int32
func clampQuantity(f float64) float64 {
	switch {
	case f > math.MaxInt32:
		return math.MaxInt32
	case f < math.MinInt32:
		return math.MinInt32
	default:
		return f
	}
}

// CartSnapshot is the body of GET /cart. The service returns either a bare
// array or an object with an "items" array.
type CartSnapshot []RemoteCartItem

// UnmarshalJSON accepts both response shapes.
func (s *CartSnapshot) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = CartSnapshot{}
		return nil
	}

	if trimmed[0] == '[' {
		var items []RemoteCartItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*s = items
		return nil
	}

	var wrapped struct {
		Items []RemoteCartItem `json:"items"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil {
		return err
	}
	*s = wrapped.Items
	return nil
}

// AddItemRequest представляет тело POST /cart/items.
// Удалённая корзина принимает только числовые productId.
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// UpdateItemRequest представляет тело PUT /cart/items/{lineItemId}
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Product представляет товар, который отдаёт GET /products/{id}
type Product struct {
	ComparePrice *float64 `json:"compare_price,omitempty"`
	NumericID    *int64   `json:"numeric_id,omitempty"`
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image,omitempty"`
	Images       []string `json:"images"`
	Price        float64  `json:"price"`
}

// ProductEnvelope обёртка ответа GET /products/{id}
type ProductEnvelope struct {
	Data    Product `json:"data"`
	Success bool    `json:"success"`
}

// CartLine представляет строку корзины в ответах сервиса
type CartLine struct {
	Product   Product `json:"product"`
	ID        string  `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
}

// ProductRecord is a product as seen by the client: a loosely typed object
// so that missing or mistyped fields degrade per field instead of failing
// the whole record.
type ProductRecord map[string]any

// Usable reports whether the record names a product.
func (r ProductRecord) Usable() bool {
	name, ok := r["name"].(string)
	return ok && strings.TrimSpace(name) != ""
}

// HealthResponse представляет ответ GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
