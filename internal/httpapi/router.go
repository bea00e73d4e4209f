package httpapi

import (
	"net/http"

	"jobtracker-engine/internal/catalog"
)

// NewMux wires every handler. main() wraps the result in the middleware
// chain before serving.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: HealthHandler{}.Health,
	}))

	// Jobs: filter/sort pipeline over the static catalog
	jh := JobsHandler{Catalog: d.Catalog, Prefs: d.Prefs, Saved: d.Saved}
	mux.HandleFunc("/jobs", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.List,
	}))
	mux.HandleFunc("/jobs/options", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: jh.Options,
	}))

	// Preferences
	ph := PrefsHandler{Prefs: d.Prefs, Hub: d.Hub}
	mux.HandleFunc("/preferences", methodMux(map[string]http.HandlerFunc{
		http.MethodGet:    ph.Get,
		http.MethodPut:    ph.Put,
		http.MethodDelete: ph.Delete,
	}))

	// Saved jobs
	sh := SavedHandler{Catalog: catalog.ByID(d.Catalog), Saved: d.Saved, Hub: d.Hub}
	mux.HandleFunc("/saved", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.List,
	}))
	mux.HandleFunc("/saved/", methodMux(map[string]http.HandlerFunc{
		http.MethodPut:    sh.SaveByPath,
		http.MethodDelete: sh.UnsaveByPath,
	}))

	// Digest
	dh := DigestHandler{Catalog: d.Catalog, Prefs: d.Prefs, Generator: d.Digests, Hub: d.Hub}
	mux.HandleFunc("/digest", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: dh.Get,
	}))
	mux.HandleFunc("/digest/generate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: dh.Generate,
	}))

	// Config
	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
