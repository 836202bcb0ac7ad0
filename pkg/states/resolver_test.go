package states

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"abbreviation lower", "ca", "California"},
		{"abbreviation upper", "TX", "Texas"},
		{"abbreviation padded", "  al  ", "Alabama"},
		{"partial name", "calif", "California"},
		{"full name", "Texas", "Texas"},
		{"full name lower", "texas", "Texas"},
		{"prefix with space", "new h", "New Hampshire"},
		{"unknown passthrough", "Zzzyx", "Zzzyx"},
		{"unknown lowercased tail", "ZZZYX", "Zzzyx"},
		{"unknown padded", "  zzzyx  ", "Zzzyx"},
		{"unknown multibyte first rune", "éire", "Éire"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.input)
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	// Any non-blank input must resolve to a non-empty string.
	for _, in := range []string{"x", "9", "-", "ohioo"} {
		if Resolve(in) == "" {
			t.Errorf("Resolve(%q) returned empty string", in)
		}
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown("Alabama") {
		t.Error("Alabama should be a known state")
	}
	if IsKnown("Zzzyx") {
		t.Error("Zzzyx should not be a known state")
	}
}
