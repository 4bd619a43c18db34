// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.

package record

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// value kinds in their cross-kind order
const (
	kindMissing = iota
	kindBool
	kindNumber
	kindTime
	kindString
	kindOther
)

// Comparer orders cell values. Strings are compared with a collator when one
// is configured, otherwise byte-wise.
type Comparer struct {
	collator *collate.Collator
}

// NewComparer returns a Comparer using the collation rules of tag.
func NewComparer(tag language.Tag) *Comparer {
	return &Comparer{collator: collate.New(tag)}
}

// Compare orders a and b. Missing values sort first, values of different
// kinds are ordered by kind (bool < number < time < string < other).
func (c *Comparer) Compare(a, b any) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return cmp.Compare(ka, kb)
	}

	switch ka {
	case kindMissing:
		return 0
	case kindBool:
		return compareBool(a.(bool), b.(bool))
	case kindNumber:
		return compareNumber(a, b)
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time))
	case kindString:
		sa, sb := asString(a), asString(b)
		if c != nil && c.collator != nil {
			return c.collator.CompareString(sa, sb)
		}
		return strings.Compare(sa, sb)
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

// Compare orders a and b without collation.
func Compare(a, b any) int {
	var c *Comparer
	return c.Compare(a, b)
}

func kindOf(v any) int {
	switch v.(type) {
	case nil:
		return kindMissing
	case bool:
		return kindBool
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return kindNumber
	case time.Time:
		return kindTime
	case string, []byte:
		return kindString
	default:
		return kindOther
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func asString(v any) string {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v.(string)
}

// compareNumber compares any mix of integer and float kinds exactly. NaN
// sorts before every other number so the order stays total.
func compareNumber(a, b any) int {
	fa, aNaN := toBig(a)
	fb, bNaN := toBig(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	}
	return fa.Cmp(fb)
}

func toBig(v any) (*big.Float, bool) {
	f := new(big.Float)
	switch n := v.(type) {
	case int:
		f.SetInt64(int64(n))
	case int8:
		f.SetInt64(int64(n))
	case int16:
		f.SetInt64(int64(n))
	case int32:
		f.SetInt64(int64(n))
	case int64:
		f.SetInt64(n)
	case uint:
		f.SetUint64(uint64(n))
	case uint8:
		f.SetUint64(uint64(n))
	case uint16:
		f.SetUint64(uint64(n))
	case uint32:
		f.SetUint64(uint64(n))
	case uint64:
		f.SetUint64(n)
	case float32:
		if math.IsNaN(float64(n)) {
			return nil, true
		}
		f.SetFloat64(float64(n))
	case float64:
		if math.IsNaN(n) {
			return nil, true
		}
		f.SetFloat64(n)
	}
	return f, false
}
