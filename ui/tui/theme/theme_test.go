package theme

import "testing"

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{
		"dark":   Dark,
		" DARK ": Dark,
		"light":  Light,
		"":       Light,
		"purple": Light,
	}
	for in, want := range cases {
		if got := ParseMode(in); got != want {
			t.Errorf("ParseMode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToggleAndFor(t *testing.T) {
	if Light.Toggle() != Dark || Dark.Toggle() != Light {
		t.Fatalf("Toggle does not flip modes")
	}
	if For(Dark).Mode != Dark || For(Light).Mode != Light {
		t.Fatalf("For returned wrong palette")
	}
	if For(Dark).Text == For(Light).Text {
		t.Fatalf("light and dark text colors should differ")
	}
}
