package forms

import (
	"strings"

	"title-assist-be/pkg/textnorm"
)

// keywordRule maps a phrase users type to the form that covers it. Consulted
// only when no form code is literally present in the text; first hit wins,
// so order is the tie-break.
type keywordRule struct {
	Keyword string
	Code    string
}

var keywordRules = []keywordRule{
	{"power of attorney", "mvt-5-13"},
	{"poa", "mvt-5-13"},
	{"salvage", "mvt-41-1"},
	{"nonrepairable", "mvt-41-1"},
	{"duplicate", "mvt-12-1"},
	{"replacement title", "mvt-12-1"},
	{"lien release", "mvt-5-6"},
	{"affidavit of correction", "mvt-5-7"},
}

// Match returns the codes of every catalog entry whose code is textually
// present in text, tolerant of punctuation and spacing variants. A code
// matches at most once; results keep catalog order.
//
// The four membership rules mirror the observed widget behavior, including
// the partially redundant "mvt-" collapse; see MatchKeyword for the freeform
// fallback path.
func (c *Catalog) Match(text string) []string {
	normalized := textnorm.Normalize(text)
	if normalized == "" {
		return nil
	}
	bare := textnorm.StripHyphens(normalized)

	var found []string
	for _, e := range c.entries {
		codeNorm := textnorm.Normalize(e.Code)
		codeBare := textnorm.StripHyphens(codeNorm)

		if strings.Contains(normalized, codeNorm) ||
			strings.Contains(bare, codeBare) ||
			strings.Contains(normalized, codeBare) ||
			strings.Contains(normalized, strings.Replace(codeNorm, "mvt-", "mvt", 1)) {
			found = append(found, e.Code)
		}
	}
	return found
}

// MatchKeyword resolves a freeform question to at most one form. A literal
// code mention in the text wins; otherwise the keyword table is scanned in
// order and the first hit is returned.
func (c *Catalog) MatchKeyword(text string) (Entry, bool) {
	lower := strings.ToLower(text)

	// Direct code mention, with the widget's light normalization of
	// spaces/underscores so "mvt 5 13" still counts as a direct hit.
	direct := strings.NewReplacer(" ", "-", "_", "-").Replace(lower)
	for _, e := range c.entries {
		if strings.Contains(direct, e.Code) {
			return e, true
		}
	}

	for _, rule := range keywordRules {
		if strings.Contains(lower, rule.Keyword) {
			if e, ok := c.byCode[rule.Code]; ok {
				return e, true
			}
		}
	}
	return Entry{}, false
}
