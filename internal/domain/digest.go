package domain

// DigestJob is the subset of a posting kept inside a digest record,
// together with the score it ranked at when the digest was generated.
type DigestJob struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Company    string `json:"company"`
	Location   string `json:"location"`
	Experience string `json:"experience"`
	Mode       string `json:"mode"`
	MatchScore int    `json:"matchScore"`
	Link       string `json:"link"`
}

// DigestRecord is the persisted snapshot of one calendar day's top
// matches. At most one record exists per date; regenerating overwrites.
// NoMatches marks a generated-but-empty day, which is distinct from
// "not generated yet" (no record at all).
type DigestRecord struct {
	Date          string      `json:"date"`          // YYYY-MM-DD, local time
	DateFormatted string      `json:"dateFormatted"` // e.g. "Monday, January 2, 2006"
	Jobs          []DigestJob `json:"jobs"`
	NoMatches     bool        `json:"noMatches,omitempty"`
}
