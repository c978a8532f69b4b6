// Package productid normalizes product identifiers coming from the two catalog
// schemes (legacy numeric keys and opaque UUID-like tokens) into one canonical
// string used for every equality check in the cart.
package productid

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind описывает источник идентификатора
type Kind uint8

const (
	// KindEmpty нормализация не дала пригодного значения
	KindEmpty Kind = iota
	// KindNumeric положительный целочисленный ключ старого каталога
	KindNumeric
	// KindOpaque любой другой непустой ключ (UUID, slug, будущие схемы)
	KindOpaque
)

// String returns a readable kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindOpaque:
		return "opaque"
	default:
		return "empty"
	}
}

// SyntheticPrefix prefixes keys minted for products without a usable identifier.
const SyntheticPrefix = "custom-"

// ID is a normalized product identifier. The zero value is the empty ID.
type ID struct {
	raw  string
	num  int64
	kind Kind
}

// FromInt builds an ID from an integer key. Only positive values are numeric;
// zero and negatives are kept as opaque strings since no format is rejected.
func FromInt(n int64) ID {
	raw := strconv.FormatInt(n, 10)
	if n > 0 {
		return ID{kind: KindNumeric, num: n, raw: raw}
	}
	return ID{kind: KindOpaque, raw: raw}
}

// FromFloat stringifies a finite number; NaN and infinities give the empty ID.
func FromFloat(f float64) ID {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return ID{}
	}
	if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
		return FromInt(int64(f))
	}
	return ID{kind: KindOpaque, raw: strconv.FormatFloat(f, 'f', -1, 64)}
}

// FromString trims the input. A string already in canonical positive decimal
// form ("7", not "007") is numeric; any other non-empty string is opaque.
func FromString(s string) ID {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ID{}
	}
	if n, ok := canonicalPositiveInt(trimmed); ok {
		return ID{kind: KindNumeric, num: n, raw: trimmed}
	}
	return ID{kind: KindOpaque, raw: trimmed}
}

// Parse normalizes a loosely typed identifier (as decoded from JSON or passed
// by a caller). Unsupported types yield the empty ID.
func Parse(raw any) ID {
	switch v := raw.(type) {
	case nil:
		return ID{}
	case ID:
		return v
	case string:
		return FromString(v)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return FromInt(n)
		}
		f, err := v.Float64()
		if err != nil {
			return ID{}
		}
		return FromFloat(f)
	case int:
		return FromInt(int64(v))
	case int8:
		return FromInt(int64(v))
	case int16:
		return FromInt(int64(v))
	case int32:
		return FromInt(int64(v))
	case int64:
		return FromInt(v)
	case uint:
		return fromUint(uint64(v))
	case uint8:
		return FromInt(int64(v))
	case uint16:
		return FromInt(int64(v))
	case uint32:
		return FromInt(int64(v))
	case uint64:
		return fromUint(v)
	case float32:
		return FromFloat(float64(v))
	case float64:
		return FromFloat(v)
	default:
		return ID{}
	}
}

// Synthetic mints a replacement key for an item whose identifier was unusable.
func Synthetic(now time.Time) ID {
	return ID{kind: KindOpaque, raw: fmt.Sprintf("%s%d", SyntheticPrefix, now.UnixMilli())}
}

// String returns the canonical form used for equality checks.
func (id ID) String() string {
	return id.raw
}

// Kind returns the identifier kind.
func (id ID) Kind() Kind {
	return id.kind
}

// IsEmpty reports whether normalization produced nothing usable.
func (id ID) IsEmpty() bool {
	return id.kind == KindEmpty
}

// Numeric returns the integer key for numeric identifiers. Only these can be
// pushed to the remote cart, which accepts numeric product ids only.
func (id ID) Numeric() (int64, bool) {
	if id.kind != KindNumeric {
		return 0, false
	}
	return id.num, true
}

// Candidates returns lookup keys to try against the product API, in order.
// The first candidate is always the canonical form; if it parses as a finite
// number whose canonical decimal form differs ("007" vs "7"), that form follows.
func (id ID) Candidates() []string {
	if id.IsEmpty() {
		return nil
	}

	candidates := []string{id.raw}
	f, err := strconv.ParseFloat(id.raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return candidates
	}

	if alt := FromFloat(f).String(); alt != "" && alt != id.raw {
		candidates = append(candidates, alt)
	}
	return candidates
}

func fromUint(n uint64) ID {
	if n > math.MaxInt64 {
		return ID{kind: KindOpaque, raw: strconv.FormatUint(n, 10)}
	}
	return FromInt(int64(n))
}

// canonicalPositiveInt accepts only digit strings without a leading zero that
// fit into int64.
func canonicalPositiveInt(s string) (int64, bool) {
	if s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
