package util

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type testKeyMap struct{ b key.Binding }

func (k testKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.b} }
func (k testKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.b}} }

func TestMergeKeyMaps_SkipsNil(t *testing.T) {
	a := testKeyMap{key.NewBinding(key.WithKeys("a"))}
	b := testKeyMap{key.NewBinding(key.WithKeys("b"))}
	merged := MergeKeyMaps(a, nil, b)

	if got := len(merged.ShortHelp()); got != 2 {
		t.Fatalf("expected 2 short bindings, got %d", got)
	}
	if got := len(merged.FullHelp()); got != 2 {
		t.Fatalf("expected 2 help groups, got %d", got)
	}
}

func TestClampAndWrap(t *testing.T) {
	if Clamp(0, 5, 3) != 3 || Clamp(0, -1, 3) != 0 || Clamp(0, 2, 3) != 2 {
		t.Fatalf("Clamp misbehaves")
	}
	if Wrap(0, -1, 3) != 2 || Wrap(2, 1, 3) != 0 || Wrap(1, 1, 3) != 2 {
		t.Fatalf("Wrap misbehaves")
	}
	if Wrap(4, 1, 0) != 0 {
		t.Fatalf("Wrap with empty range must return 0")
	}
}

func TestSize_Update(t *testing.T) {
	var s Size
	if s.Update(tea.KeyMsg{}) {
		t.Fatalf("non-size message must be ignored")
	}
	if !s.Update(tea.WindowSizeMsg{Width: 80, Height: 24}) || s.Width != 80 || s.Height != 24 {
		t.Fatalf("size not applied: %+v", s)
	}
	if msg := s.ToMsg(); msg.Width != 80 || msg.Height != 24 {
		t.Fatalf("ToMsg = %+v", msg)
	}
}

func TestSize_ShrinkStopsAtZero(t *testing.T) {
	s := Size{Width: 10, Height: 3}
	if got := s.Shrink(4, 6); got != (Size{Width: 6, Height: 0}) {
		t.Fatalf("Shrink = %+v", got)
	}
	// value receiver: works on a returned size without a variable
	if msg := sizeOf(s).ToMsg(); msg.Width != 10 || msg.Height != 3 {
		t.Fatalf("ToMsg = %+v", msg)
	}
}

func sizeOf(s Size) Size { return s }
