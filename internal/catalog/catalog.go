// Package catalog supplies the static, read-only job collection. Jobs
// ship as a JSON file that is bootstrapped into the data dir on first
// run; a built-in seed list covers a missing file.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"jobtracker-engine/internal/domain"
)

// Ensure copies the default catalog file into the data dir unless one
// is already there, and returns the path to load.
func Ensure(dataDir, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, "catalog.json")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	src, err := os.Open(defaultPath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(userPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return userPath, nil
}

// Load reads and normalizes the catalog file.
func Load(path string) ([]domain.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jobs []domain.Job
	if err := json.Unmarshal(b, &jobs); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return Normalize(jobs), nil
}

// Normalize cleans whitespace, canonicalizes work modes, and drops
// entries with missing or duplicate ids (first occurrence wins).
func Normalize(jobs []domain.Job) []domain.Job {
	seen := map[string]bool{}
	out := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		if j.ID == "" || seen[j.ID] {
			continue
		}
		seen[j.ID] = true
		j.Title = CleanText(j.Title)
		j.Company = CleanText(j.Company)
		j.Location = CleanText(j.Location)
		j.Mode = NormalizeMode(j.Mode)
		out = append(out, j)
	}
	return out
}

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeMode lowercases a work mode and folds on-site spellings.
func NormalizeMode(m string) string {
	m = strings.ToLower(strings.TrimSpace(m))
	switch m {
	case "on-site", "on site":
		return "onsite"
	}
	return m
}

// PostedLabel renders a posting age the way the cards show it.
func PostedLabel(j domain.Job) string {
	if j.PostedDaysAgo == nil {
		return ""
	}
	switch d := *j.PostedDaysAgo; d {
	case 0:
		return "Today"
	case 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", d)
	}
}

// ByID indexes a catalog for membership checks. The returned map shares
// the catalog's Job values and must be treated as read-only.
func ByID(jobs []domain.Job) map[string]domain.Job {
	m := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		m[j.ID] = j
	}
	return m
}
