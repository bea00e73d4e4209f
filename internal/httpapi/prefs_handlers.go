package httpapi

import (
	"encoding/json"
	"net/http"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/store"
)

type PrefsHandler struct {
	Prefs store.Prefs
	Hub   *events.Hub
}

// Get returns the saved preferences, or 404 when the user has none.
// "No preferences" is a real state the UI renders, not an error inside
// the engine.
func (h PrefsHandler) Get(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.Prefs.Get(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if prefs == nil {
		WriteError(w, r, http.StatusNotFound, "no_preferences", "no preferences saved")
		return
	}
	WriteJSON(w, http.StatusOK, prefs)
}

func (h PrefsHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming domain.Preferences
	if err := dec.Decode(&incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if dec.More() {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "trailing data")
		return
	}

	// Out-of-range thresholds are clamped, never rejected.
	if incoming.MinMatchScore != nil {
		v := incoming.Threshold(domain.DefaultMinMatchScore)
		incoming.MinMatchScore = &v
	}

	if err := h.Prefs.Set(r.Context(), incoming); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}

	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypePreferencesUpdated, 1, nil))
	WriteJSON(w, http.StatusOK, incoming)
}

func (h PrefsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.Prefs.Clear(r.Context()); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypePreferencesCleared, 1, nil))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
}
