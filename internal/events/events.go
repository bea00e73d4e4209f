package events

import (
	"encoding/json"
	"time"
)

// Event types published over the SSE stream so the UI can refresh the
// affected view without polling.
const (
	TypePing               = "ping"
	TypePreferencesUpdated = "preferences_updated"
	TypePreferencesCleared = "preferences_cleared"
	TypeJobSaved           = "job_saved"
	TypeJobUnsaved         = "job_unsaved"
	TypeDigestGenerated    = "digest_generated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
