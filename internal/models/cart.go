package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LocalLineItemPrefix marks line items minted locally that the remote cart has
// not acknowledged yet.
const LocalLineItemPrefix = "local-"

// CartItem представляет одну позицию корзины.
// ID - идентификатор строки корзины (не путать с ProductID).
type CartItem struct {
	ID        string `json:"id"`        // ID идентификатор строки (local-... или удалённый)
	ProductID string `json:"productId"` // ProductID каноническая строка идентификатора товара
	ProductDetails
	Quantity int `json:"quantity"` // Quantity количество, всегда >= 1
}

// Details returns the product snapshot carried by the item.
func (i CartItem) Details() ProductDetails {
	return i.ProductDetails
}

// Clone returns a deep copy of the item.
func (i CartItem) Clone() CartItem {
	i.ProductDetails = i.ProductDetails.Clone()
	return i
}

// IsLocal reports whether the line has never been acknowledged by the remote cart.
func (i CartItem) IsLocal() bool {
	return IsLocalLineItemID(i.ID)
}

// NewLocalLineItemID mints a line item id for an optimistic local add.
func NewLocalLineItemID(productID string, now time.Time) string {
	return fmt.Sprintf("%s%s-%d", LocalLineItemPrefix, productID, now.UnixMilli())
}

// IsLocalLineItemID checks the local prefix.
func IsLocalLineItemID(id string) bool {
	return strings.HasPrefix(id, LocalLineItemPrefix)
}

// CartState is the view of the cart handed to readers.
// Error is advisory: it reports sync problems while local state stays valid.
type CartState struct {
	Error     string     `json:"error,omitempty"`
	Items     []CartItem `json:"items"`
	IsLoading bool       `json:"isLoading"`
}

// Clone returns a copy that shares nothing with s.
func (s CartState) Clone() CartState {
	s.Items = CloneItems(s.Items)
	return s
}

// PersistedCart is the slice of CartState written to durable storage.
// IsLoading and Error are transient and never persisted.
type PersistedCart struct {
	Items []CartItem `json:"items"`
}

// CloneItems deep-copies a list of items. A nil list becomes an empty one.
func CloneItems(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

// Consolidate merges items sharing a ProductID into the first-seen entry of
// the group, summing quantities; the other fields of later duplicates are
// discarded. The input is not modified and the result keeps first-seen order.
//
// Consolidate(Consolidate(x)) == Consolidate(x).
func Consolidate(items []CartItem) []CartItem {
	out := make([]CartItem, 0, len(items))
	index := make(map[string]int, len(items))

	for _, item := range items {
		if idx, ok := index[item.ProductID]; ok {
			out[idx].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(out)
		out = append(out, item.Clone())
	}

	return out
}

// HasDuplicates reports whether more than one item shares a ProductID.
func HasDuplicates(items []CartItem) bool {
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			return true
		}
		seen[item.ProductID] = struct{}{}
	}
	return false
}

// Total sums price*quantity over items. No consolidation is applied.
func Total(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	return total
}

// Count sums quantities over items. No consolidation is applied.
func Count(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
