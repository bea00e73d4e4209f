package store

import (
	"context"
	"encoding/json"

	"jobtracker-engine/internal/domain"
)

// Digests persists one digest record per calendar date.
type Digests struct {
	DB *DB
}

func digestKey(date string) string {
	return "digest:" + date
}

// Get returns the record stored for date (YYYY-MM-DD), or nil when the
// digest has not been generated for that date. Malformed stored state
// reads as not generated.
func (s Digests) Get(ctx context.Context, date string) (*domain.DigestRecord, error) {
	raw, ok, err := s.DB.getRaw(ctx, digestKey(date))
	if err != nil || !ok {
		return nil, err
	}
	var rec domain.DigestRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, nil
	}
	return &rec, nil
}

// Put stores rec under its date, overwriting any earlier record.
func (s Digests) Put(ctx context.Context, rec domain.DigestRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.DB.putRaw(ctx, digestKey(rec.Date), string(b))
}
