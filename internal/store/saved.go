package store

import (
	"context"
	"encoding/json"
)

const savedKey = "saved_job_ids"

// Saved persists the set of bookmarked job ids in insertion order.
type Saved struct {
	DB *DB
}

// List returns the saved ids in the order they were saved. Malformed
// stored state resets to an empty list.
func (s Saved) List(ctx context.Context) ([]string, error) {
	raw, ok, err := s.DB.getRaw(ctx, savedKey)
	if err != nil || !ok {
		return nil, err
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, nil
	}
	return ids, nil
}

func (s Saved) IsSaved(ctx context.Context, id string) (bool, error) {
	ids, err := s.List(ctx)
	if err != nil {
		return false, err
	}
	for _, v := range ids {
		if v == id {
			return true, nil
		}
	}
	return false, nil
}

// Save appends id to the set. Saving an already-saved id is a no-op.
func (s Saved) Save(ctx context.Context, id string) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, v := range ids {
		if v == id {
			return nil
		}
	}
	return s.put(ctx, append(ids, id))
}

// Unsave removes id from the set. Removing an absent id is a no-op.
func (s Saved) Unsave(ctx context.Context, id string) error {
	ids, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return s.put(ctx, kept)
}

func (s Saved) put(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	return s.DB.putRaw(ctx, savedKey, string(b))
}
