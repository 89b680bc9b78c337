// Package kvstore provides the key-value persistence collaborator used for
// local client state. It deliberately mirrors browser localStorage semantics:
// reads are synchronous, writes are best-effort, and absence of a key is not
// an error. Durability concerns live entirely inside each backend.
package kvstore

import "sync"

// Store is a minimal synchronous key-value store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)
}

// Memory is an in-process Store, used in tests and as the cache layer
// backing the durable stores.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}

// snapshot returns a copy of the current contents.
func (m *Memory) snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out
}
