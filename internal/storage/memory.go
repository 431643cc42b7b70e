package storage

import (
	"strings"
	"sync"
)

// MemoryDB implements DB using an in-memory map.
type MemoryDB struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates a new in-memory database.
func NewMemory() *MemoryDB {
	return &MemoryDB{
		data: make(map[string][]byte),
	}
}

// Get retrieves a value by key.
func (m *MemoryDB) Get(key []byte) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return copyBytes(v), nil
}

// Put stores a key-value pair.
func (m *MemoryDB) Put(key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[string(key)] = copyBytes(value)
	return nil
}

// Delete removes a key.
func (m *MemoryDB) Delete(key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, string(key))
	return nil
}

// Has checks if a key exists.
func (m *MemoryDB) Has(key []byte) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.data[string(key)]
	return ok, nil
}

// ForEach iterates over all keys with the given prefix.
// Matching entries are snapshotted first so fn may write to the DB.
func (m *MemoryDB) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	p := string(prefix)

	type kv struct {
		key   []byte
		value []byte
	}
	m.mu.RLock()
	var matched []kv
	for k, v := range m.data {
		if strings.HasPrefix(k, p) {
			matched = append(matched, kv{key: []byte(k), value: copyBytes(v)})
		}
	}
	m.mu.RUnlock()

	for _, e := range matched {
		if err := fn(e.key, e.value); err != nil {
			return err
		}
	}
	return nil
}

// Write applies the batch under a single lock.
func (m *MemoryDB) Write(b *Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, op := range b.ops {
		if op.del {
			delete(m.data, string(op.key))
		} else {
			m.data[string(op.key)] = copyBytes(op.value)
		}
	}
	return nil
}

// Close closes the database.
func (m *MemoryDB) Close() error {
	return nil
}

func copyBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
