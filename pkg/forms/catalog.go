package forms

// Entry is one downloadable form known to the assistant. The catalog is
// fixed at startup; entries are never mutated during a session.
type Entry struct {
	Code  string // canonical identifier, e.g. "mvt-5-13"
	Label string // display name
	Link  string // download URI
}

// Catalog holds an ordered, immutable set of form entries. Match results
// preserve catalog order.
type Catalog struct {
	entries []Entry
	byCode  map[string]Entry
}

func NewCatalog(entries []Entry) *Catalog {
	byCode := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byCode[e.Code] = e
	}
	return &Catalog{entries: entries, byCode: byCode}
}

// DefaultCatalog returns the Alabama MVT form set the widget ships with.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Entry{
		{
			Code:  "mvt-5-13",
			Label: "MVT-5-13 Form (Alabama)",
			Link:  "https://eforms.com/download/2015/09/Alabama-Motor-Vehicle-Power-of-Attorney-Form-MVT-5-13.pdf",
		},
		{
			Code:  "mvt-41-1",
			Label: "MVT-41-1 Form (Alabama)",
			Link:  "https://drive.google.com/file/d/1J3jB9wuNE0l4zqxgvIumvRehJmtwF7g8/view",
		},
		{
			Code:  "mvt-12-1",
			Label: "MVT-12-1 Form (Alabama)",
			Link:  "https://www.formalu.com/forms/506/application-for-replacement-title",
		},
		{
			Code:  "mvt-5-7",
			Label: "MVT-5-7 Form (Alabama)",
			Link:  "https://www.revenue.alabama.gov/wp-content/uploads/2021/10/MVT-5-7-8-19.pdf",
		},
		{
			Code:  "mvt-5-6",
			Label: "MVT-5-6 Form (Alabama)",
			Link:  "https://drive.google.com/file/d/1oWm0T7w9C0UsaNcw5S0nt5pYWzmRBTrW/view",
		},
	})
}

// Get returns the entry for a canonical code.
func (c *Catalog) Get(code string) (Entry, bool) {
	e, ok := c.byCode[code]
	return e, ok
}

// Entries returns the catalog in declaration order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}
