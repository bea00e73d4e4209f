package filtering

import (
	"sort"

	"jobtracker-engine/internal/domain"
)

// Options lists the distinct values present in a catalog, for the UI's
// filter dropdowns. Empty fields contribute nothing.
type Options struct {
	Locations   []string `json:"locations"`
	Modes       []string `json:"modes"`
	Experiences []string `json:"experiences"`
	Sources     []string `json:"sources"`
}

// CollectOptions walks the catalog once and returns each field's sorted
// distinct values.
func CollectOptions(jobs []domain.Job) Options {
	locs := map[string]bool{}
	modes := map[string]bool{}
	exps := map[string]bool{}
	srcs := map[string]bool{}

	for _, j := range jobs {
		if j.Location != "" {
			locs[j.Location] = true
		}
		if j.Mode != "" {
			modes[j.Mode] = true
		}
		if j.Experience != "" {
			exps[j.Experience] = true
		}
		if j.Source != "" {
			srcs[j.Source] = true
		}
	}

	return Options{
		Locations:   sortedKeys(locs),
		Modes:       sortedKeys(modes),
		Experiences: sortedKeys(exps),
		Sources:     sortedKeys(srcs),
	}
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
