package note

import (
	"encoding/json"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"github.com/marcus/jot/internal/storage"
)

// StorageKey is the single key the full note list is persisted under.
const StorageKey = "notes"

// Adapter moves full note-list snapshots through an opaque key-value store.
// Failures are swallowed: a failed load reads as "no stored data" and a
// failed save leaves the in-memory collection authoritative for the session.
type Adapter struct {
	kv     storage.KV
	logger *slog.Logger

	// Hash of the last snapshot written, to skip redundant saves.
	lastHash uint64
}

// NewAdapter wraps a key-value store. A nil logger discards debug output.
func NewAdapter(kv storage.KV, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{kv: kv, logger: logger}
}

// Load returns the stored collection, or ok=false when nothing usable is
// stored. Any structurally compatible array is accepted verbatim.
func (a *Adapter) Load() ([]Note, bool) {
	data, ok, err := a.kv.Get(StorageKey)
	if err != nil {
		a.logger.Debug("notes: load failed", "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var notes []Note
	if err := json.Unmarshal(data, &notes); err != nil {
		a.logger.Debug("notes: stored data unreadable", "error", err)
		return nil, false
	}
	return notes, true
}

// Save persists the full snapshot. A snapshot identical to the last one
// written is skipped. Errors are logged at debug level and dropped.
func (a *Adapter) Save(notes []Note) {
	if notes == nil {
		notes = []Note{}
	}
	data, err := json.Marshal(notes)
	if err != nil {
		a.logger.Debug("notes: encode failed", "error", err)
		return
	}
	h := xxhash.Sum64(data)
	if h == a.lastHash {
		return
	}
	if err := a.kv.Set(StorageKey, data); err != nil {
		a.logger.Debug("notes: save failed", "error", err)
		return
	}
	a.lastHash = h
}
