package states

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// entry pairs a USPS abbreviation with the canonical full state name.
// Kept as an ordered slice so prefix scans are deterministic.
type entry struct {
	Abbr string
	Name string
}

var table = []entry{
	{"AL", "Alabama"}, {"AK", "Alaska"}, {"AZ", "Arizona"}, {"AR", "Arkansas"},
	{"CA", "California"}, {"CO", "Colorado"}, {"CT", "Connecticut"}, {"DE", "Delaware"},
	{"FL", "Florida"}, {"GA", "Georgia"}, {"HI", "Hawaii"}, {"ID", "Idaho"},
	{"IL", "Illinois"}, {"IN", "Indiana"}, {"IA", "Iowa"}, {"KS", "Kansas"},
	{"KY", "Kentucky"}, {"LA", "Louisiana"}, {"ME", "Maine"}, {"MD", "Maryland"},
	{"MA", "Massachusetts"}, {"MI", "Michigan"}, {"MN", "Minnesota"}, {"MS", "Mississippi"},
	{"MO", "Missouri"}, {"MT", "Montana"}, {"NE", "Nebraska"}, {"NV", "Nevada"},
	{"NH", "New Hampshire"}, {"NJ", "New Jersey"}, {"NM", "New Mexico"}, {"NY", "New York"},
	{"NC", "North Carolina"}, {"ND", "North Dakota"}, {"OH", "Ohio"}, {"OK", "Oklahoma"},
	{"OR", "Oregon"}, {"PA", "Pennsylvania"}, {"RI", "Rhode Island"}, {"SC", "South Carolina"},
	{"SD", "South Dakota"}, {"TN", "Tennessee"}, {"TX", "Texas"}, {"UT", "Utah"},
	{"VT", "Vermont"}, {"VA", "Virginia"}, {"WA", "Washington"}, {"WV", "West Virginia"},
	{"WI", "Wisconsin"}, {"WY", "Wyoming"},
}

// Resolve maps arbitrary user input (abbreviation, partial name, full name)
// to one canonical US state name. Unrecognized input falls through to a
// best-effort title-cased copy of the raw input; Resolve never fails.
func Resolve(input string) string {
	trimmed := strings.TrimSpace(input)
	cleaned := strings.ToUpper(trimmed)
	if cleaned == "" {
		return ""
	}

	for _, e := range table {
		if e.Abbr == cleaned {
			return e.Name
		}
	}

	// Partial typed names, e.g. "calif" -> "California".
	for _, e := range table {
		if strings.HasPrefix(strings.ToUpper(e.Name), cleaned) {
			return e.Name
		}
	}

	first, size := utf8.DecodeRuneInString(trimmed)
	return string(unicode.ToUpper(first)) + strings.ToLower(trimmed[size:])
}

// IsKnown reports whether the resolved name is one of the fifty states.
func IsKnown(name string) bool {
	for _, e := range table {
		if e.Name == name {
			return true
		}
	}
	return false
}
