package httpapi

import (
	"net/http"
	"strings"

	"jobtracker-engine/internal/domain"
	"jobtracker-engine/internal/events"
	"jobtracker-engine/internal/store"
)

type SavedHandler struct {
	Catalog map[string]domain.Job
	Saved   store.Saved
	Hub     *events.Hub
}

func (h SavedHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.Saved.List(r.Context())
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if ids == nil {
		ids = []string{}
	}
	WriteJSON(w, http.StatusOK, map[string]any{"ids": ids})
}

// SaveByPath handles PUT /saved/{id}. Saving twice is a no-op.
func (h SavedHandler) SaveByPath(w http.ResponseWriter, r *http.Request) {
	id := h.pathID(w, r)
	if id == "" {
		return
	}
	if _, ok := h.Catalog[id]; !ok {
		WriteError(w, r, http.StatusNotFound, "unknown_job", "job not in catalog")
		return
	}
	if err := h.Saved.Save(r.Context(), id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeJobSaved, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

// UnsaveByPath handles DELETE /saved/{id}. Unsaving an absent id is a
// no-op, so this never 404s on the id itself.
func (h SavedHandler) UnsaveByPath(w http.ResponseWriter, r *http.Request) {
	id := h.pathID(w, r)
	if id == "" {
		return
	}
	if err := h.Saved.Unsave(r.Context(), id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.TypeJobUnsaved, 1, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (h SavedHandler) pathID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimPrefix(r.URL.Path, "/saved/")
	if id == "" || strings.Contains(id, "/") {
		WriteError(w, r, http.StatusBadRequest, "invalid_id", "invalid job id")
		return ""
	}
	return id
}
