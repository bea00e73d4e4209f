package digest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
)

type memStore struct {
	records map[string]domain.DigestRecord
	puts    int
}

func newMemStore() *memStore {
	return &memStore{records: map[string]domain.DigestRecord{}}
}

func (m *memStore) Get(_ context.Context, date string) (*domain.DigestRecord, error) {
	rec, ok := m.records[date]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (m *memStore) Put(_ context.Context, rec domain.DigestRecord) error {
	m.records[rec.Date] = rec
	m.puts++
	return nil
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var testDay = time.Date(2026, time.March, 9, 9, 0, 0, 0, time.Local)

func intp(v int) *int { return &v }

func newGenerator(store Store) *Generator {
	return &Generator{Store: store, Clock: fixedClock{t: testDay}}
}

func matchingJob(id string, daysAgo int) domain.Job {
	return domain.Job{
		ID:            id,
		Title:         "Backend Engineer " + id,
		Company:       "Acme",
		Location:      "Berlin",
		Mode:          "remote",
		Experience:    "2-4 years",
		PostedDaysAgo: intp(daysAgo),
		Link:          "https://example.com/" + id,
	}
}

func matchingPrefs() *domain.Preferences {
	return &domain.Preferences{
		RoleKeywords:       "backend",
		PreferredLocations: []string{"Berlin"},
	}
}

func TestGetBeforeGenerate(t *testing.T) {
	gen := newGenerator(newMemStore())
	rec, err := gen.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestGenerateBasics(t *testing.T) {
	store := newMemStore()
	gen := newGenerator(store)

	jobs := []domain.Job{matchingJob("a", 1), matchingJob("b", 5)}
	rec, err := gen.Generate(context.Background(), jobs, matchingPrefs())
	require.NoError(t, err)

	assert.Equal(t, "2026-03-09", rec.Date)
	assert.Equal(t, "Monday, March 9, 2026", rec.DateFormatted)
	assert.False(t, rec.NoMatches)
	require.Len(t, rec.Jobs, 2)

	// "a" outranks "b": same rule hits plus the freshness bonus.
	assert.Equal(t, "a", rec.Jobs[0].ID)
	assert.Equal(t, "Backend Engineer a", rec.Jobs[0].Title)
	assert.Equal(t, "https://example.com/a", rec.Jobs[0].Link)
	assert.Greater(t, rec.Jobs[0].MatchScore, rec.Jobs[1].MatchScore)

	got, err := gen.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
}

func TestGenerateDeterministic(t *testing.T) {
	gen := newGenerator(newMemStore())
	jobs := []domain.Job{matchingJob("a", 1), matchingJob("b", 5)}

	first, err := gen.Generate(context.Background(), jobs, matchingPrefs())
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), jobs, matchingPrefs())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateOverwritesForSameDate(t *testing.T) {
	store := newMemStore()
	gen := newGenerator(store)

	_, err := gen.Generate(context.Background(), []domain.Job{matchingJob("a", 1)}, matchingPrefs())
	require.NoError(t, err)

	// Changed catalog: regeneration replaces the stored record.
	rec, err := gen.Generate(context.Background(), []domain.Job{matchingJob("b", 1)}, matchingPrefs())
	require.NoError(t, err)

	got, err := gen.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec, *got)
	require.Len(t, got.Jobs, 1)
	assert.Equal(t, "b", got.Jobs[0].ID)
	assert.Equal(t, 2, store.puts)
}

func TestGenerateNoMatchesPersists(t *testing.T) {
	store := newMemStore()
	gen := newGenerator(store)

	// Empty preferences score everything 0, below the digest default 20.
	rec, err := gen.Generate(context.Background(), []domain.Job{matchingJob("a", 1)}, &domain.Preferences{})
	require.NoError(t, err)

	assert.True(t, rec.NoMatches)
	assert.Empty(t, rec.Jobs)

	got, err := gen.Get(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.NoMatches)
	assert.Equal(t, 1, store.puts, "retrieval must not recompute")
}

func TestGenerateCapAndTieBreak(t *testing.T) {
	gen := newGenerator(newMemStore())

	// 12 identical-scoring jobs with distinct ages (all past the
	// freshness bonus): cap at 10, ordered by age ascending via the
	// tie-break.
	var jobs []domain.Job
	for i := 0; i < 12; i++ {
		jobs = append(jobs, matchingJob(fmt.Sprintf("j%02d", i), 14-i))
	}

	rec, err := gen.Generate(context.Background(), jobs, matchingPrefs())
	require.NoError(t, err)
	require.Len(t, rec.Jobs, 10)

	assert.Equal(t, "j11", rec.Jobs[0].ID) // youngest
	// Oldest two fall off the cap.
	for _, j := range rec.Jobs {
		assert.NotEqual(t, "j00", j.ID)
		assert.NotEqual(t, "j01", j.ID)
	}
}

func TestGenerateMissingAgeSortsLast(t *testing.T) {
	gen := newGenerator(newMemStore())

	undated := matchingJob("undated", 0)
	undated.PostedDaysAgo = nil
	dated := matchingJob("dated", 3)

	rec, err := gen.Generate(context.Background(), []domain.Job{undated, dated}, matchingPrefs())
	require.NoError(t, err)
	require.Len(t, rec.Jobs, 2)
	assert.Equal(t, "dated", rec.Jobs[0].ID)
}

func TestGenerateDefaultThreshold(t *testing.T) {
	gen := newGenerator(newMemStore())

	// Location-only hit scores 15: below the digest default of 20 when
	// preferences carry no threshold of their own.
	job := domain.Job{ID: "a", Title: "Role", Location: "Berlin", PostedDaysAgo: intp(5)}
	prefs := &domain.Preferences{PreferredLocations: []string{"Berlin"}}

	rec, err := gen.Generate(context.Background(), []domain.Job{job}, prefs)
	require.NoError(t, err)
	assert.True(t, rec.NoMatches)

	// An explicit zero threshold admits it.
	prefs.MinMatchScore = intp(0)
	rec, err = gen.Generate(context.Background(), []domain.Job{job}, prefs)
	require.NoError(t, err)
	assert.False(t, rec.NoMatches)
	require.Len(t, rec.Jobs, 1)
	assert.Equal(t, 15, rec.Jobs[0].MatchScore)
}

func TestGeneratePreferenceThresholdOverridesDefault(t *testing.T) {
	gen := newGenerator(newMemStore())

	jobs := []domain.Job{matchingJob("a", 1)}
	prefs := matchingPrefs()
	prefs.MinMatchScore = intp(99)

	rec, err := gen.Generate(context.Background(), jobs, prefs)
	require.NoError(t, err)
	assert.True(t, rec.NoMatches)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-09", DateKey(testDay))
}
