package store

import (
	"context"
	"encoding/json"

	"jobtracker-engine/internal/domain"
)

const prefsKey = "preferences"

// Prefs persists the user's single preference profile.
type Prefs struct {
	DB *DB
}

// Get returns the stored preferences, or nil when none were saved.
// A stored value that does not parse also reads as nil.
func (s Prefs) Get(ctx context.Context) (*domain.Preferences, error) {
	raw, ok, err := s.DB.getRaw(ctx, prefsKey)
	if err != nil || !ok {
		return nil, err
	}
	var p domain.Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, nil
	}
	return &p, nil
}

func (s Prefs) Set(ctx context.Context, p domain.Preferences) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.DB.putRaw(ctx, prefsKey, string(b))
}

func (s Prefs) Clear(ctx context.Context) error {
	return s.DB.deleteRaw(ctx, prefsKey)
}
