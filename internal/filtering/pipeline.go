package filtering

import (
	"sort"
	"strconv"
	"strings"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/rank"
)

// Sort keys accepted by Apply. Anything else falls back to SortLatest.
const (
	SortLatest = "latest"
	SortSalary = "salary"
	SortMatch  = "match"
)

// Filters is the dashboard's view state. Empty string fields are
// inactive; MatchesOnly only takes effect when preferences exist.
type Filters struct {
	Keyword     string
	Location    string
	Mode        string
	Experience  string
	Source      string
	Sort        string
	MatchesOnly bool
}

// Result pairs the filtered, ordered jobs with their match scores in
// matching index order.
type Result struct {
	Jobs   []domain.Job
	Scores []int
}

type pair struct {
	job   domain.Job
	score int
}

// Apply scores every job, applies the threshold and field filters in a
// fixed order, and sorts stably by the requested key. A nil preferences
// scores everything 0 and makes the threshold filter inert.
func Apply(jobs []domain.Job, f Filters, prefs *domain.Preferences) Result {
	pairs := make([]pair, 0, len(jobs))
	for _, j := range jobs {
		pairs = append(pairs, pair{job: j, score: rank.Score(j, prefs)})
	}

	if f.MatchesOnly && prefs != nil {
		min := prefs.Threshold(domain.DefaultMinMatchScore)
		kept := pairs[:0]
		for _, p := range pairs {
			if p.score >= min {
				kept = append(kept, p)
			}
		}
		pairs = kept
	}

	if kw := strings.ToLower(strings.TrimSpace(f.Keyword)); kw != "" {
		kept := pairs[:0]
		for _, p := range pairs {
			if strings.Contains(strings.ToLower(p.job.Title), kw) ||
				strings.Contains(strings.ToLower(p.job.Company), kw) {
				kept = append(kept, p)
			}
		}
		pairs = kept
	}

	pairs = keepExact(pairs, f.Location, func(j domain.Job) string { return j.Location })
	pairs = keepExact(pairs, f.Mode, func(j domain.Job) string { return j.Mode })
	pairs = keepExact(pairs, f.Experience, func(j domain.Job) string { return j.Experience })
	pairs = keepExact(pairs, f.Source, func(j domain.Job) string { return j.Source })

	switch f.Sort {
	case SortSalary:
		sort.SliceStable(pairs, func(a, b int) bool {
			return salaryDigits(pairs[a].job.SalaryRange) > salaryDigits(pairs[b].job.SalaryRange)
		})
	case SortMatch:
		sort.SliceStable(pairs, func(a, b int) bool {
			return pairs[a].score > pairs[b].score
		})
	default: // latest
		sort.SliceStable(pairs, func(a, b int) bool {
			return pairs[a].job.DaysAgo() < pairs[b].job.DaysAgo()
		})
	}

	res := Result{Jobs: make([]domain.Job, len(pairs)), Scores: make([]int, len(pairs))}
	for i, p := range pairs {
		res.Jobs[i] = p.job
		res.Scores[i] = p.score
	}
	return res
}

func keepExact(pairs []pair, want string, field func(domain.Job) string) []pair {
	if want == "" {
		return pairs
	}
	kept := pairs[:0]
	for _, p := range pairs {
		if field(p.job) == want {
			kept = append(kept, p)
		}
	}
	return kept
}

// salaryDigits orders salary free text by the number its digits spell
// out, with no currency or unit normalization. Empty text sorts as 0.
func salaryDigits(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0
	}
	// int64 holds 18 digits; longer runs keep their leading digits,
	// which preserves the ordering.
	if len(digits) > 18 {
		digits = digits[:18]
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
