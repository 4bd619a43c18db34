// Copyright (c) 2026 ToeiRei
// dashui - terminal widgets for tables and forms
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if codes := LocaleCodes(); len(codes) != 2 || codes[0] != "de" || codes[1] != "en" {
		t.Fatalf("unexpected locale codes: %v", codes)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("table.empty"); got != "No data available" {
		t.Fatalf("expected 'No data available', got %q", got)
	}
	if got := T("app.version", "1.2.3"); got != "version 1.2.3" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("table.loading"); got != "Wird geladen..." {
		t.Fatalf("expected German loading text, got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message id fallback, got %q", got)
	}
}

func TestTN_Plurals(t *testing.T) {
	Init("en")
	if got := TN("selection.count", 1); got != "1 row selected" {
		t.Fatalf("singular: got %q", got)
	}
	if got := TN("selection.count", 3); got != "3 rows selected" {
		t.Fatalf("plural: got %q", got)
	}
}

func TestTag(t *testing.T) {
	SetLang("de")
	defer SetLang("en")
	if Tag().String() != "de" {
		t.Fatalf("expected de tag, got %s", Tag())
	}
}
