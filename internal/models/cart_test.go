package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, productID string, qty int, price float64) CartItem {
	return CartItem{
		ID:             id,
		ProductID:      productID,
		Quantity:       qty,
		ProductDetails: ProductDetails{Name: "Product " + productID, Price: price},
	}
}

func TestConsolidate(t *testing.T) {
	tests := []struct {
		name  string
		items []CartItem
		want  []CartItem
	}{
		{
			name:  "empty",
			items: nil,
			want:  []CartItem{},
		},
		{
			name:  "no duplicates",
			items: []CartItem{item("a", "p1", 1, 1), item("b", "p2", 2, 1)},
			want:  []CartItem{item("a", "p1", 1, 1), item("b", "p2", 2, 1)},
		},
		{
			name: "duplicates merged into first seen",
			items: []CartItem{
				item("a", "p1", 1, 10),
				item("b", "p2", 1, 5),
				item("c", "p1", 2, 99),
			},
			want: []CartItem{item("a", "p1", 3, 10), item("b", "p2", 1, 5)},
		},
		{
			name: "three way group",
			items: []CartItem{
				item("a", "p1", 1, 1),
				item("b", "p1", 1, 1),
				item("c", "p1", 5, 1),
			},
			want: []CartItem{item("a", "p1", 7, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Consolidate(tt.items)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Consolidate(got), "consolidation must be idempotent")
			assert.False(t, HasDuplicates(got))
		})
	}
}

func TestConsolidate_DoesNotModifyInput(t *testing.T) {
	items := []CartItem{item("a", "p1", 1, 1), item("b", "p1", 2, 1)}
	_ = Consolidate(items)

	assert.Equal(t, 1, items[0].Quantity)
	assert.Len(t, items, 2)
}

func TestConsolidate_GroupSums(t *testing.T) {
	items := []CartItem{
		item("a", "p1", 3, 1),
		item("b", "p2", 1, 1),
		item("c", "p1", 4, 1),
		item("d", "p3", 2, 1),
		item("e", "p2", 6, 1),
	}

	sums := map[string]int{}
	for _, it := range items {
		sums[it.ProductID] += it.Quantity
	}

	got := Consolidate(items)
	require.Len(t, got, 3)
	for _, it := range got {
		assert.Equal(t, sums[it.ProductID], it.Quantity)
	}
}

func TestTotalAndCount(t *testing.T) {
	items := []CartItem{item("a", "p1", 3, 0.1), item("b", "p2", 2, 249.99)}

	assert.True(t, Total(items).Equal(decimal.RequireFromString("500.28")), Total(items).String())
	assert.Equal(t, 5, Count(items))
	assert.True(t, Total(nil).IsZero())
	assert.Zero(t, Count(nil))
}

func TestLocalLineItemID(t *testing.T) {
	id := NewLocalLineItemID("p1", time.UnixMilli(1700000000000))

	assert.Equal(t, "local-p1-1700000000000", id)
	assert.True(t, IsLocalLineItemID(id))
	assert.False(t, IsLocalLineItemID("17"))
	assert.True(t, CartItem{ID: id}.IsLocal())
}

func TestCartItem_JSONShape(t *testing.T) {
	it := item("17", "4", 2, 1299.99)
	it.Image = "xps.jpg"

	data, err := json.Marshal(it)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "17", m["id"])
	assert.Equal(t, "4", m["productId"])
	assert.Equal(t, 2.0, m["quantity"])
	assert.Equal(t, "xps.jpg", m["image"])
	assert.NotContains(t, m, "comparePrice")
}

func TestCartState_Clone(t *testing.T) {
	state := CartState{Items: []CartItem{item("a", "p1", 1, 1)}}
	clone := state.Clone()
	clone.Items[0].Quantity = 9

	assert.Equal(t, 1, state.Items[0].Quantity)
}
