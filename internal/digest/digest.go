// Package digest materializes a capped, per-calendar-date snapshot of
// the top-ranked matches. There is no scheduler: the "daily 9AM digest"
// is simulated by an explicit trigger plus date-keyed persistence.
package digest

import (
	"context"
	"sort"
	"time"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/rank"
)

const (
	// DefaultMinScore is the inclusion threshold used when preferences
	// carry none. Looser than the dashboard's default on purpose, so
	// the digest still surfaces borderline roles.
	DefaultMinScore = 20

	// DefaultMaxJobs caps a digest at the top ranked matches.
	DefaultMaxJobs = 10
)

// Clock supplies the local time used to key digest records by date.
type Clock interface {
	Now() time.Time
}

// SystemClock keys digests off the machine's local calendar.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Store persists one digest record per calendar date.
type Store interface {
	Get(ctx context.Context, date string) (*domain.DigestRecord, error)
	Put(ctx context.Context, rec domain.DigestRecord) error
}

// Generator builds and persists digest records. MaxJobs and MinScore
// fall back to the package defaults when left zero.
type Generator struct {
	Store    Store
	Clock    Clock
	MaxJobs  int
	MinScore int
}

// DateKey formats t as the digest's storage key, local calendar day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// Get returns the record already persisted for the clock's current
// date, or nil when none has been generated yet. It never recomputes.
func (g *Generator) Get(ctx context.Context) (*domain.DigestRecord, error) {
	return g.Store.Get(ctx, DateKey(g.clock().Now()))
}

// Generate recomputes the digest for the current date and persists it,
// overwriting any earlier record for that date. Jobs are ranked by
// score descending with posting age ascending as the tie-break, capped,
// then filtered to those at or above the threshold. An empty result is
// persisted as a NoMatches record so it survives reloads.
func (g *Generator) Generate(ctx context.Context, jobs []domain.Job, prefs *domain.Preferences) (domain.DigestRecord, error) {
	now := g.clock().Now()

	type scored struct {
		job   domain.Job
		score int
	}
	ranked := make([]scored, 0, len(jobs))
	for _, j := range jobs {
		ranked = append(ranked, scored{job: j, score: rank.Score(j, prefs)})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].job.DaysAgo() < ranked[b].job.DaysAgo()
	})

	max := g.MaxJobs
	if max <= 0 {
		max = DefaultMaxJobs
	}
	if len(ranked) > max {
		ranked = ranked[:max]
	}

	def := g.MinScore
	if def <= 0 {
		def = DefaultMinScore
	}
	min := prefs.Threshold(def)

	rec := domain.DigestRecord{
		Date:          DateKey(now),
		DateFormatted: now.Format("Monday, January 2, 2006"),
	}
	for _, s := range ranked {
		if s.score < min {
			continue
		}
		rec.Jobs = append(rec.Jobs, domain.DigestJob{
			ID:         s.job.ID,
			Title:      s.job.Title,
			Company:    s.job.Company,
			Location:   s.job.Location,
			Experience: s.job.Experience,
			Mode:       s.job.Mode,
			MatchScore: s.score,
			Link:       s.job.Link,
		})
	}
	if len(rec.Jobs) == 0 {
		rec.NoMatches = true
	}

	if err := g.Store.Put(ctx, rec); err != nil {
		return domain.DigestRecord{}, err
	}
	return rec, nil
}

func (g *Generator) clock() Clock {
	if g.Clock == nil {
		return SystemClock{}
	}
	return g.Clock
}
