package domain

// DefaultMinMatchScore is the dashboard threshold used when preferences
// exist but do not carry one.
const DefaultMinMatchScore = 40

// Preferences is the user's saved search profile. Field names mirror the
// payload the UI stores, so a nil pointer means "never saved" as opposed
// to a saved-but-empty profile (which scores every job 0).
type Preferences struct {
	RoleKeywords       string   `json:"roleKeywords"`
	PreferredLocations []string `json:"preferredLocations"`
	PreferredModes     []string `json:"preferredMode"`
	ExperienceLevel    string   `json:"experienceLevel"`
	Skills             string   `json:"skills"`
	// MinMatchScore is a pointer so "unset" and "0" stay distinguishable.
	MinMatchScore *int `json:"minMatchScore"`
}

// Threshold returns MinMatchScore clamped to [0,100], or def when the
// preferences are absent or carry no threshold.
func (p *Preferences) Threshold(def int) int {
	if p == nil || p.MinMatchScore == nil {
		return def
	}
	v := *p.MinMatchScore
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
