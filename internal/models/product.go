package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ProductDetails представляет денормализованный снимок товара для отображения в корзине.
type ProductDetails struct {
	ComparePrice *float64 `json:"comparePrice,omitempty"` // ComparePrice опциональная "старая" цена
	Name         string   `json:"name"`                   // Name название товара
	Image        string   `json:"image"`                  // Image URL изображения или пустая строка
	Description  string   `json:"description"`            // Description описание товара
	Price        float64  `json:"price"`                  // Price цена (>= 0)
}

// Fallback returns the placeholder details used while nothing better is known
// about a product.
func Fallback(productID string) ProductDetails {
	return ProductDetails{
		Name: fmt.Sprintf("Product %s", productID),
	}
}

// IsFallbackFor reports whether d carries no information beyond the fallback
// for productID. Used to decide whether an item should be re-resolved.
func (d ProductDetails) IsFallbackFor(productID string) bool {
	return d.Equal(Fallback(productID))
}

// Equal compares two detail values field by field.
func (d ProductDetails) Equal(other ProductDetails) bool {
	if d.Name != other.Name || d.Price != other.Price ||
		d.Image != other.Image || d.Description != other.Description {
		return false
	}
	if d.ComparePrice == nil || other.ComparePrice == nil {
		return d.ComparePrice == nil && other.ComparePrice == nil
	}
	return *d.ComparePrice == *other.ComparePrice
}

// Clone returns a copy that does not share the ComparePrice pointer.
func (d ProductDetails) Clone() ProductDetails {
	if d.ComparePrice != nil {
		v := *d.ComparePrice
		d.ComparePrice = &v
	}
	return d
}

// PartialDetails is a possibly incomplete details value supplied by a caller
// or embedded in a remote cart snapshot. Nil fields are absent.
type PartialDetails struct {
	Name         *string
	Price        *float64
	Image        *string
	Description  *string
	ComparePrice *float64
}

// Sanitize fills every absent or invalid field from the fallback for productID.
// Price must be finite and non-negative; ComparePrice is kept only if it is too.
func (p *PartialDetails) Sanitize(productID string) ProductDetails {
	details := Fallback(productID)
	if p == nil {
		return details
	}

	if p.Name != nil {
		details.Name = *p.Name
	}
	if p.Price != nil && validAmount(*p.Price) {
		details.Price = *p.Price
	}
	if p.Image != nil {
		details.Image = *p.Image
	}
	if p.Description != nil {
		details.Description = *p.Description
	}
	if p.ComparePrice != nil && validAmount(*p.ComparePrice) {
		v := *p.ComparePrice
		details.ComparePrice = &v
	}

	return details
}

// PartialFromMap extracts details from a loosely typed JSON object. Values of
// the wrong type are treated as absent. The image falls back from "image" to
// the first string in "images".
func PartialFromMap(m map[string]any) *PartialDetails {
	if m == nil {
		return nil
	}

	p := &PartialDetails{}
	if s, ok := m["name"].(string); ok {
		p.Name = &s
	}
	if f, ok := NumberFrom(m["price"]); ok {
		p.Price = &f
	}
	if s, ok := m["description"].(string); ok {
		p.Description = &s
	}
	if img := imageFrom(m); img != "" {
		p.Image = &img
	}

	// оба варианта написания встречаются в ответах бэкенда
	for _, key := range []string{"compare_price", "comparePrice"} {
		if f, ok := NumberFrom(m[key]); ok {
			p.ComparePrice = &f
			break
		}
	}

	return p
}

// NumberFrom converts JSON-decoded numeric values (float64, json.Number or a
// numeric string) into a finite float64.
func NumberFrom(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func imageFrom(m map[string]any) string {
	if s, ok := m["image"].(string); ok && s != "" {
		return s
	}
	switch images := m["images"].(type) {
	case []any:
		if len(images) > 0 {
			if s, ok := images[0].(string); ok {
				return s
			}
		}
	case []string:
		if len(images) > 0 {
			return images[0]
		}
	}
	return ""
}

func validAmount(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
