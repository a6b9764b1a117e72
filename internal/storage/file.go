package storage

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps each key as a JSON document file in a directory. It is the
// default backend: human-inspectable and trivially portable.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed and returns a store over it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// Path returns the file path a key is stored at. Used by the change watcher.
func (f *FileStore) Path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

// Get reads the document for key. A missing file is absence, not an error.
func (f *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.Path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set writes the document for key.
func (f *FileStore) Set(key string, value []byte) error {
	return os.WriteFile(f.Path(key), value, 0644)
}

// Clear removes every document file in the directory. Files the store does
// not own (other extensions) are left alone.
func (f *FileStore) Clear() error {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		if err := os.Remove(filepath.Join(f.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileStore) Close() error { return nil }
