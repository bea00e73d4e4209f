package filtering

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker-engine/internal/domain"
)

func intp(v int) *int { return &v }

func testCatalog() []domain.Job {
	return []domain.Job{
		{ID: "a", Title: "Backend Engineer", Company: "Nimbus", Location: "Berlin", Mode: "remote", Experience: "2-4 years", Source: "LinkedIn", SalaryRange: "€65,000 - €80,000", PostedDaysAgo: intp(1), Skills: []string{"Go"}},
		{ID: "b", Title: "Frontend Developer", Company: "Brightpath", Location: "Amsterdam", Mode: "hybrid", Experience: "0-2 years", Source: "Indeed", SalaryRange: "€45,000", PostedDaysAgo: intp(3)},
		{ID: "c", Title: "Data Analyst", Company: "Harborview", Location: "Berlin", Mode: "onsite", Experience: "0-2 years", Source: "Naukri", SalaryRange: "", PostedDaysAgo: intp(0)},
		{ID: "d", Title: "SRE", Company: "Quanta", Location: "Dallas", Mode: "remote", Experience: "4-6 years", Source: "LinkedIn", SalaryRange: "$140,000 - $170,000"},
	}
}

func ids(jobs []domain.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func TestApplyEmptyCatalog(t *testing.T) {
	res := Apply(nil, Filters{}, nil)
	assert.Empty(t, res.Jobs)
	assert.Empty(t, res.Scores)
}

func TestApplyThresholdInertWithoutPreferences(t *testing.T) {
	jobs := []domain.Job{
		{ID: "x", PostedDaysAgo: intp(0)},
		{ID: "y", PostedDaysAgo: intp(1)},
		{ID: "z", PostedDaysAgo: intp(2)},
	}
	res := Apply(jobs, Filters{MatchesOnly: true}, nil)

	require.Len(t, res.Jobs, 3)
	assert.Equal(t, []string{"x", "y", "z"}, ids(res.Jobs))
	assert.Equal(t, []int{0, 0, 0}, res.Scores)
}

func TestApplyThresholdFilter(t *testing.T) {
	prefs := &domain.Preferences{
		RoleKeywords:       "backend",
		PreferredLocations: []string{"Berlin"},
		MinMatchScore:      intp(40),
	}
	res := Apply(testCatalog(), Filters{MatchesOnly: true}, prefs)

	// Only "a" reaches 40: title 25 + location 15 + fresh 5 + linkedin 5 = 50.
	require.Len(t, res.Jobs, 1)
	assert.Equal(t, "a", res.Jobs[0].ID)
	assert.Equal(t, 50, res.Scores[0])
}

func TestApplyThresholdClamped(t *testing.T) {
	prefs := &domain.Preferences{MinMatchScore: intp(150)}
	res := Apply(testCatalog(), Filters{MatchesOnly: true}, prefs)
	// Clamped to 100; nothing scores that high here.
	assert.Empty(t, res.Jobs)

	prefs.MinMatchScore = intp(-10)
	res = Apply(testCatalog(), Filters{MatchesOnly: true}, prefs)
	// Clamped to 0; everything passes.
	assert.Len(t, res.Jobs, 4)
}

func TestApplyKeywordFilter(t *testing.T) {
	t.Run("matches title", func(t *testing.T) {
		res := Apply(testCatalog(), Filters{Keyword: "backend"}, nil)
		require.Len(t, res.Jobs, 1)
		assert.Equal(t, "a", res.Jobs[0].ID)
	})

	t.Run("matches company", func(t *testing.T) {
		res := Apply(testCatalog(), Filters{Keyword: "quanta"}, nil)
		require.Len(t, res.Jobs, 1)
		assert.Equal(t, "d", res.Jobs[0].ID)
	})

	t.Run("no hit", func(t *testing.T) {
		res := Apply(testCatalog(), Filters{Keyword: "zzz"}, nil)
		assert.Empty(t, res.Jobs)
	})
}

func TestApplyExactFilters(t *testing.T) {
	res := Apply(testCatalog(), Filters{Location: "Berlin"}, nil)
	for _, j := range res.Jobs {
		assert.Equal(t, "Berlin", j.Location)
	}
	assert.Len(t, res.Jobs, 2)

	res = Apply(testCatalog(), Filters{Mode: "remote", Source: "LinkedIn"}, nil)
	assert.ElementsMatch(t, []string{"a", "d"}, ids(res.Jobs))

	res = Apply(testCatalog(), Filters{Experience: "0-2 years"}, nil)
	assert.ElementsMatch(t, []string{"b", "c"}, ids(res.Jobs))
}

func TestApplySortLatest(t *testing.T) {
	res := Apply(testCatalog(), Filters{Sort: SortLatest}, nil)
	require.Len(t, res.Jobs, 4)

	// Non-decreasing age, missing age (d) pushed last as 99.
	for i := 1; i < len(res.Jobs); i++ {
		assert.GreaterOrEqual(t, res.Jobs[i].DaysAgo(), res.Jobs[i-1].DaysAgo())
	}
	assert.Equal(t, "d", res.Jobs[3].ID)
}

func TestApplySortSalary(t *testing.T) {
	res := Apply(testCatalog(), Filters{Sort: SortSalary}, nil)
	// d: 140000170000, a: 6500080000, b: 45000, c: 0
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids(res.Jobs))
}

func TestApplySortMatch(t *testing.T) {
	prefs := &domain.Preferences{RoleKeywords: "backend, frontend", PreferredLocations: []string{"Berlin"}}
	res := Apply(testCatalog(), Filters{Sort: SortMatch}, prefs)

	require.Len(t, res.Jobs, 4)
	for i := 1; i < len(res.Scores); i++ {
		assert.LessOrEqual(t, res.Scores[i], res.Scores[i-1])
	}
	// a: 25+15+5+5 = 50 on top.
	assert.Equal(t, "a", res.Jobs[0].ID)
}

func TestApplyScoresParallelToJobs(t *testing.T) {
	prefs := &domain.Preferences{RoleKeywords: "backend"}
	res := Apply(testCatalog(), Filters{Sort: SortMatch}, prefs)

	require.Equal(t, len(res.Jobs), len(res.Scores))
	for i, j := range res.Jobs {
		if j.ID == "a" {
			assert.Equal(t, 35, res.Scores[i]) // title 25 + fresh 5 + linkedin 5
		}
	}
}

func TestSalaryDigits(t *testing.T) {
	assert.Equal(t, int64(0), salaryDigits(""))
	assert.Equal(t, int64(0), salaryDigits("competitive"))
	assert.Equal(t, int64(120000150000), salaryDigits("$120,000 - $150,000"))
}

func TestCollectOptions(t *testing.T) {
	opts := CollectOptions(testCatalog())

	assert.Equal(t, []string{"Amsterdam", "Berlin", "Dallas"}, opts.Locations)
	assert.Equal(t, []string{"hybrid", "onsite", "remote"}, opts.Modes)
	assert.Equal(t, []string{"0-2 years", "2-4 years", "4-6 years"}, opts.Experiences)
	assert.Equal(t, []string{"Indeed", "LinkedIn", "Naukri"}, opts.Sources)
}

func TestCollectOptionsSkipsEmptyFields(t *testing.T) {
	opts := CollectOptions([]domain.Job{{ID: "x"}})
	assert.Empty(t, opts.Locations)
	assert.Empty(t, opts.Modes)
	assert.Empty(t, opts.Experiences)
	assert.Empty(t, opts.Sources)
}
