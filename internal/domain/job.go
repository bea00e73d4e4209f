package domain

// Job is a single posting from the static catalog supplied at startup.
// The catalog is read-only for the lifetime of the session; optional
// fields are simply empty (or nil) and never break scoring or sorting.
type Job struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          string   `json:"mode"` // remote/hybrid/onsite or empty
	Experience    string   `json:"experience"`
	Skills        []string `json:"skills"`
	Source        string   `json:"source"`
	SalaryRange   string   `json:"salaryRange"`
	PostedDaysAgo *int     `json:"postedDaysAgo,omitempty"`
	Link          string   `json:"link"`
	Description   string   `json:"description"`
}

// unknownAge pushes undated postings behind everything with a real age.
const unknownAge = 99

// DaysAgo returns the posting age in days, substituting 99 when the
// catalog does not carry one.
func (j Job) DaysAgo() int {
	if j.PostedDaysAgo == nil {
		return unknownAge
	}
	return *j.PostedDaysAgo
}
