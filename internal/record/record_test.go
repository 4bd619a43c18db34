package record

import (
	"math"
	"slices"
	"testing"
	"time"

	"golang.org/x/text/language"
)

func TestMap_FieldAndIdentity(t *testing.T) {
	t.Parallel()

	a := NewMap(map[string]any{"id": 1, "name": "Bob"})
	b := NewMap(map[string]any{"id": 1, "name": "Bob"})

	if v, ok := a.Field("name"); !ok || v != "Bob" {
		t.Fatalf("Field(name) = %v, %v", v, ok)
	}
	if _, ok := a.Field("missing"); ok {
		t.Fatalf("expected missing field to report false")
	}
	if a == b {
		t.Fatalf("distinct records with equal values must not be identical")
	}

	var nilMap *Map
	if _, ok := nilMap.Field("id"); ok {
		t.Fatalf("nil record must not report fields")
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cases := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"x", "x"},
		{42, "42"},
		{1.5, "1.5"},
		{float32(2.25), "2.25"},
		{true, "true"},
		{[]byte("raw"), "raw"},
		{ts, "2026-01-02 03:04:05"},
	}
	for _, c := range cases {
		if got := Format(c.in); got != c.want {
			t.Errorf("Format(%#v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestCompare_Numbers(t *testing.T) {
	t.Parallel()

	if Compare(2, 10) >= 0 {
		t.Fatalf("expected numeric order, 2 < 10")
	}
	if Compare(int64(3), 3.0) != 0 {
		t.Fatalf("expected int64(3) == 3.0")
	}
	if Compare(uint64(math.MaxUint64), int64(-1)) <= 0 {
		t.Fatalf("expected large uint to sort after negative int")
	}
	if Compare(math.NaN(), -1e300) >= 0 {
		t.Fatalf("expected NaN to sort first among numbers")
	}
	if Compare(math.NaN(), math.NaN()) != 0 {
		t.Fatalf("expected NaN == NaN for ordering purposes")
	}
}

func TestCompare_StringsAndKinds(t *testing.T) {
	t.Parallel()

	if Compare("Alice", "Bob") >= 0 {
		t.Fatalf("expected lexicographic order")
	}
	if Compare(nil, 0) >= 0 {
		t.Fatalf("expected missing values first")
	}
	if Compare(5, "5") >= 0 {
		t.Fatalf("expected numbers before strings")
	}
	if Compare(false, true) >= 0 {
		t.Fatalf("expected false < true")
	}
	early := time.Unix(0, 0)
	if Compare(early, early.Add(time.Second)) >= 0 {
		t.Fatalf("expected chronological order")
	}
}

func TestComparer_Collation(t *testing.T) {
	t.Parallel()

	words := []string{"Zebra", "apple", "Äpfel", "banana"}

	plain := slices.Clone(words)
	slices.SortFunc(plain, func(a, b string) int { return Compare(a, b) })
	if plain[0] != "Zebra" {
		t.Fatalf("byte-wise order should put upper case first, got %v", plain)
	}

	c := NewComparer(language.German)
	collated := slices.Clone(words)
	slices.SortFunc(collated, func(a, b string) int { return c.Compare(a, b) })
	want := []string{"Äpfel", "apple", "banana", "Zebra"}
	if !slices.Equal(collated, want) {
		t.Fatalf("collated order = %v, want %v", collated, want)
	}
}

func TestMapPointerSatisfiesRecord(t *testing.T) {
	isRecord[*Map]()
	a, b := NewMap(map[string]any{"x": 1}), NewMap(map[string]any{"x": 1})
	if same(a, b) || !same(a, a) {
		t.Fatal("rows with equal content must still be distinct records")
	}
}

func same[T Record](a, b T) bool { return a == b }
