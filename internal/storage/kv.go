// Package storage provides the opaque key-value byte stores the note list
// is persisted through, plus a change watcher for the file backend.
package storage

// KV is an opaque key-value byte store. Values are full snapshots owned by
// the caller; the store never interprets them.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; err reports store-level failures only.
	Get(key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error
	// Clear removes every key the store owns.
	Clear() error
	// Close releases store resources.
	Close() error
}
