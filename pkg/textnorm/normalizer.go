package textnorm

import (
	"regexp"
	"strings"
)

// Canonicalizes free-form text so that form codes embedded in prose compare
// equal regardless of dash style, spacing, or parentheses. "MVT_5 13",
// "mvt(5)(13)" and "mvt-5-13" all normalize to "mvt-5-13".

var (
	// Every dash-like codepoint users paste from rich-text sources.
	dashVariants    = regexp.MustCompile(`[\x{2010}\x{2011}\x{2012}\x{2013}\x{2014}\x{2015}\x{2212}\x{FE58}\x{FE63}\x{FF0D}\x{2043}\x2D]`)
	spaceUnderscore = regexp.MustCompile(`[\s_]+`)
	parens          = regexp.MustCompile(`[()]`)
	multiHyphen     = regexp.MustCompile(`-{2,}`)
)

// Normalize lower-cases the input, folds all dash variants to an ASCII
// hyphen, collapses whitespace and underscores into single hyphens, strips
// parentheses, and trims leading/trailing hyphens. Empty input yields "".
// The function is idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	out := strings.ToLower(s)
	out = dashVariants.ReplaceAllString(out, "-")
	out = spaceUnderscore.ReplaceAllString(out, "-")
	out = parens.ReplaceAllString(out, "")
	out = multiHyphen.ReplaceAllString(out, "-")
	return strings.Trim(out, "- \t\n")
}

// StripHyphens removes every hyphen from an already-normalized string.
// Used by the form matcher to catch variants like "mvt513".
func StripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}
