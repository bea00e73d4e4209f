package httpapi

import (
	"context"
	"net/http"

	"jobtracker-engine/internal/catalog"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/filtering"
	"jobtracker-engine/internal/rank"
	"jobtracker-engine/internal/store"
)

type JobsHandler struct {
	Catalog []domain.Job
	Prefs   store.Prefs
	Saved   store.Saved
}

type jobView struct {
	domain.Job
	Posted    string `json:"posted,omitempty"`
	Score     int    `json:"score"`
	ScoreBand string `json:"scoreBand"`
}

type jobsResponse struct {
	Jobs []jobView `json:"jobs"`
	// Scores repeats the per-job scores in matching index order so the
	// UI can consume them as a parallel list.
	Scores   []int    `json:"scores"`
	SavedIDs []string `json:"savedIds"`
}

// List runs the filter/sort pipeline over the catalog with the stored
// preferences and the view filters from the query string.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := filtering.Filters{
		Keyword:     q.Get("keyword"),
		Location:    q.Get("location"),
		Mode:        q.Get("mode"),
		Experience:  q.Get("experience"),
		Source:      q.Get("source"),
		Sort:        q.Get("sort"),
		MatchesOnly: q.Get("matches_only") == "true",
	}

	prefs, err := h.Prefs.Get(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	res := filtering.Apply(h.Catalog, f, prefs)

	saved, err := h.savedIDs(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	out := jobsResponse{
		Jobs:     make([]jobView, len(res.Jobs)),
		Scores:   res.Scores,
		SavedIDs: saved,
	}
	for i, j := range res.Jobs {
		out.Jobs[i] = jobView{
			Job:       j,
			Posted:    catalog.PostedLabel(j),
			Score:     res.Scores[i],
			ScoreBand: rank.Band(res.Scores[i]),
		}
	}
	WriteJSON(w, http.StatusOK, out)
}

// Options reports the distinct filter values present in the catalog.
func (h JobsHandler) Options(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, filtering.CollectOptions(h.Catalog))
}

func (h JobsHandler) savedIDs(ctx context.Context) ([]string, error) {
	ids, err := h.Saved.List(ctx)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}
