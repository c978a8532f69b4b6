package api

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteCartItem_Quantity(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "integer", body: `{"id":1,"productId":7,"quantity":3}`, want: 3},
		{name: "fraction is floored", body: `{"id":1,"productId":7,"quantity":2.9}`, want: 2},
		{name: "missing", body: `{"id":1,"productId":7}`, want: 0},
		{name: "huge integer", body: `{"id":1,"productId":7,"quantity":9007199254740993}`, want: math.MaxInt32},
		{name: "huge float", body: `{"id":1,"productId":7,"quantity":1e300}`, want: math.MaxInt32},
		{name: "huge negative float", body: `{"id":1,"productId":7,"quantity":-1e300}`, want: math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item RemoteCartItem
			require.NoError(t, json.Unmarshal([]byte(tt.body), &item))
			assert.Equal(t, tt.want, item.Quantity)
		})
	}
}
