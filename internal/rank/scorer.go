package rank

import (
	"strings"

	"jobtracker-engine/internal/domain"
)

// Rule weights. Each rule fires at most once per job.
const (
	weightTitleKeyword = 25
	weightDescKeyword  = 15
	weightLocation     = 15
	weightMode         = 10
	weightExperience   = 10
	weightSkill        = 15
	weightFresh        = 5
	weightSource       = 5

	maxScore     = 100
	freshMaxDays = 2
)

// Score rates a job against the user's preferences, 0..100. A nil
// preferences means the user never saved a profile; every job scores 0.
// Missing or malformed job fields just mean the rule does not fire.
func Score(job domain.Job, prefs *domain.Preferences) int {
	if prefs == nil {
		return 0
	}

	score := 0
	title := strings.ToLower(job.Title)
	desc := strings.ToLower(job.Description)

	keywords := SplitTokens(prefs.RoleKeywords)
	for _, kw := range keywords {
		if strings.Contains(title, kw) {
			score += weightTitleKeyword
			break
		}
	}
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			score += weightDescKeyword
			break
		}
	}

	if len(prefs.PreferredLocations) > 0 && containsString(prefs.PreferredLocations, job.Location) {
		score += weightLocation
	}
	if len(prefs.PreferredModes) > 0 && containsString(prefs.PreferredModes, job.Mode) {
		score += weightMode
	}
	if prefs.ExperienceLevel != "" && job.Experience == prefs.ExperienceLevel {
		score += weightExperience
	}

	if skillsOverlap(SplitTokens(prefs.Skills), job.Skills) {
		score += weightSkill
	}

	if job.DaysAgo() <= freshMaxDays {
		score += weightFresh
	}
	if strings.EqualFold(job.Source, "linkedin") {
		score += weightSource
	}

	if score > maxScore {
		return maxScore
	}
	return score
}

// Band buckets a score into the badge classes the UI renders.
func Band(score int) string {
	switch {
	case score >= 80:
		return "high"
	case score >= 60:
		return "mid"
	case score >= 40:
		return "neutral"
	default:
		return "low"
	}
}

// SplitTokens breaks a comma-separated preference field into trimmed,
// lowercased, non-empty tokens.
func SplitTokens(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// skillsOverlap reports whether any user skill token matches any job
// skill tag as a case-insensitive substring in either direction. The
// first mutual hit stops the search.
func skillsOverlap(userSkills, jobSkills []string) bool {
	for _, us := range userSkills {
		for _, js := range jobSkills {
			js = strings.ToLower(js)
			if strings.Contains(js, us) || strings.Contains(us, js) {
				return true
			}
		}
	}
	return false
}
