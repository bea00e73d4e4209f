package httpapi

import (
	"net/http"

	"jobtracker-engine/internal/digest"
	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/store"
)

type DigestHandler struct {
	Catalog   []domain.Job
	Prefs     store.Prefs
	Generator *digest.Generator
	Hub       *events.Hub
}

// Get retrieves today's digest without recomputation. 404 means it has
// not been generated yet today; a stored no-matches record still
// returns 200.
func (h DigestHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Generator.Get(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if rec == nil {
		WriteError(w, r, http.StatusNotFound, "not_generated", "digest not generated today")
		return
	}
	WriteJSON(w, http.StatusOK, rec)
}

// Generate builds today's digest on demand, overwriting any earlier one
// for the date. The engine gates on preferences here; the generator
// itself would simply produce a no-matches record.
func (h DigestHandler) Generate(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Prefs.Get(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if prefs == nil {
		WriteError(w, r, http.StatusConflict, "no_preferences", "set preferences before generating a digest")
		return
	}

	rec, err := h.Generator.Generate(r.Context(), h.Catalog, prefs)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeDigestGenerated, 1, map[string]any{
		"date":      rec.Date,
		"jobs":      len(rec.Jobs),
		"noMatches": rec.NoMatches,
	}))
	WriteJSON(w, http.StatusOK, rec)
}
