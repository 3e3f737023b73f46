package mission

// Status values recognised by status aggregation.
const (
	StatusSuccess          = "Success"
	StatusFailure          = "Failure"
	StatusPartialFailure   = "Partial Failure"
	StatusPrelaunchFailure = "Prelaunch Failure"
)

// StatusVocabulary is the fixed set of mission outcomes counted by status queries.
var StatusVocabulary = []string{
	StatusSuccess,
	StatusFailure,
	StatusPartialFailure,
	StatusPrelaunchFailure,
}

// Record is a single normalized row of the mission dataset.
type Record struct {
	Company       string
	Mission       string
	Date          string // zero-padded YYYY-MM-DD
	Year          int
	Time          string
	Rocket        string // empty when the source value is missing
	MissionStatus string
	Price         float64
	// Extra holds source columns that queries do not use, keyed by header name
	Extra map[string]string
}

// HasRocket reports whether the record names a rocket.
func (r Record) HasRocket() bool {
	return r.Rocket != ""
}

// Copy returns a copy of r that shares no maps with it
func (r Record) Copy() Record {
	c := r
	if r.Extra != nil {
		c.Extra = make(map[string]string, len(r.Extra))
		for k, v := range r.Extra {
			c.Extra[k] = v
		}
	}
	return c
}
