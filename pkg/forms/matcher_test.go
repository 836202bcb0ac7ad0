package forms

import (
	"testing"
)

func TestMatch(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"canonical code", "Please complete mvt-5-13 and return it", []string{"mvt-5-13"}},
		{"spaced digits", "Please see MVT 513 form", []string{"mvt-5-13"}},
		{"parenthesized", "mvt(5)(13)", []string{"mvt-5-13"}},
		{"underscores", "fill out MVT_5_13 today", []string{"mvt-5-13"}},
		{"en dash", "fill out MVT–12–1 today", []string{"mvt-12-1"}},
		{"collapsed prefix", "use mvt41-1 for salvage", []string{"mvt-41-1"}},
		{"multiple codes", "Submit MVT-5-13 along with mvt 12 1", []string{"mvt-5-13", "mvt-12-1"}},
		{"unrelated text", "my title is missing", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := catalog.Match(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Match(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchDeduplicates(t *testing.T) {
	catalog := DefaultCatalog()
	got := catalog.Match("mvt-5-13 aka MVT 5 13 aka mvt513")
	if len(got) != 1 || got[0] != "mvt-5-13" {
		t.Errorf("Match should return each code once, got %v", got)
	}
}

func TestMatchKeepsCatalogOrder(t *testing.T) {
	catalog := DefaultCatalog()
	got := catalog.Match("first mvt-12-1, then mvt-5-13")
	want := []string{"mvt-5-13", "mvt-12-1"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Match order = %v, want %v (catalog order)", got, want)
	}
}

func TestMatchKeyword(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantHit  bool
	}{
		{"direct code wins", "where do I get mvt-12-1?", "mvt-12-1", true},
		{"direct code spaced", "where do I get MVT 12 1?", "mvt-12-1", true},
		{"power of attorney", "I need a power of attorney form", "mvt-5-13", true},
		{"salvage", "how do I apply for a salvage title", "mvt-41-1", true},
		{"duplicate", "I lost my title, need a duplicate", "mvt-12-1", true},
		{"replacement", "need a replacement title application", "mvt-12-1", true},
		{"lien release", "my bank never sent a lien release", "mvt-5-6", true},
		{"no match", "what color should I paint my truck", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := catalog.MatchKeyword(tt.text)
			if ok != tt.wantHit {
				t.Fatalf("MatchKeyword(%q) hit = %v, want %v", tt.text, ok, tt.wantHit)
			}
			if ok && e.Code != tt.wantCode {
				t.Errorf("MatchKeyword(%q) = %q, want %q", tt.text, e.Code, tt.wantCode)
			}
		})
	}
}

func TestGet(t *testing.T) {
	catalog := DefaultCatalog()
	e, ok := catalog.Get("mvt-5-13")
	if !ok || e.Label == "" || e.Link == "" {
		t.Errorf("Get(mvt-5-13) = %+v, %v", e, ok)
	}
	if _, ok := catalog.Get("mvt-0-0"); ok {
		t.Error("Get should miss for unknown code")
	}
}
