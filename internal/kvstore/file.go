package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// File is a Store persisted as a YAML map on disk. The full map is held in
// memory and rewritten on every mutation via an atomic temp-file rename, so
// a crash mid-write never leaves a truncated state file behind.
type File struct {
	mu     sync.Mutex
	path   string
	values map[string]string
}

// OpenFile loads the state file at path, creating parent directories as
// needed. A missing file yields an empty store.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return f, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	if err := yaml.Unmarshal(data, &f.values); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	f.flush()
}

func (f *File) Delete(key string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.values, key)
	f.flush()
}

// flush rewrites the state file. Write failures are swallowed: the in-memory
// view stays authoritative for the process lifetime, matching the
// localStorage contract this store stands in for. Caller must hold f.mu.
func (f *File) flush() {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return
	}

	data, err := yaml.Marshal(f.values)
	if err != nil {
		return
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
	}
}
