package textnorm

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"lowercase passthrough", "mvt-5-13", "mvt-5-13"},
		{"uppercase with underscores", "MVT_5_13", "mvt-5-13"},
		{"spaces", "mvt 5 13", "mvt-5-13"},
		{"parentheses", "mvt(5)(13)", "mvt513"},
		{"en dash", "mvt–5–13", "mvt-5-13"},
		{"em dash", "mvt—5—13", "mvt-5-13"},
		{"minus sign", "mvt−5−13", "mvt-5-13"},
		{"fullwidth hyphen", "mvt－5－13", "mvt-5-13"},
		{"mixed whitespace run", "mvt \t 5   13", "mvt-5-13"},
		{"double hyphens collapse", "mvt--5---13", "mvt-5-13"},
		{"leading trailing trim", " -mvt-5-13- ", "mvt-5-13"},
		{"prose around code", "Please file MVT 5-13 today", "please-file-mvt-5-13-today"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"MVT_5 13",
		"mvt(5)(13)",
		"mvt‐5‑13",
		"  Power  of   Attorney ",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

func TestDashVariantEquivalence(t *testing.T) {
	base := Normalize("mvt-5-13")
	if Normalize("mvt–5–13") != base {
		t.Errorf("en-dash variant does not normalize to %q", base)
	}
	if Normalize("MVT_5_13") != base {
		t.Errorf("underscore variant does not normalize to %q", base)
	}
}

func TestStripHyphens(t *testing.T) {
	if got := StripHyphens("mvt-5-13"); got != "mvt513" {
		t.Errorf("StripHyphens = %q, want mvt513", got)
	}
}
