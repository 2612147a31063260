package storage

import "path"

// Memory is a map-backed Storage implementation, primarily used in tests
// and for small ad hoc corpora.
type Memory struct {
	blobs map[string][]byte
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Add inserts or replaces the blob stored under key.
func (m *Memory) Add(key string, value []byte) {
	m.blobs[key] = value
}

// Get implements Storage.
func (m *Memory) Get(key string) ([]byte, bool) {
	v, ok := m.blobs[key]
	return v, ok
}

// List implements Storage, matching key names against pattern using
// shell-glob semantics.
func (m *Memory) List(pattern string) ([]string, error) {
	var names []string
	for key := range m.blobs {
		ok, err := path.Match(pattern, key)
		if err != nil {
			return nil, err
		}
		if ok {
			names = append(names, key)
		}
	}
	return names, nil
}
