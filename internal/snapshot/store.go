// Package snapshot persists lightweight point-in-time summaries of the
// routing graph (version, node count, edge count) so operators can inspect
// growth over time without walking the live graph. It is a declared-but-
// optional side service: nothing in core depends on it.
package snapshot

import (
	"bytes"
	"sync"
)

// Store is the key-value contract snapshot.Manager persists through,
// generalized from the teacher's single global app store into an
// injectable interface so callers can swap in a durable backend later
// without touching Manager.
type Store interface {
	Set(key, value []byte) error
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	Iterator(start, end []byte) Iterator
}

// Iterator walks a Store's keys that have start as a prefix and sort
// before end (no upper bound when end is nil).
type Iterator interface {
	Next() bool
	Key() []byte
	Value() []byte
	Error() error
	Close() error
}

// InMemoryStore is a process-local Store, sufficient for a single
// polypathserver instance; it is not shared across replicas.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewInMemoryStore constructs an empty InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{data: make(map[string][]byte)}
}

func (s *InMemoryStore) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[string(key)] = cp
	return nil
}

func (s *InMemoryStore) Get(key []byte) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[string(key)]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

func (s *InMemoryStore) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, string(key))
	return nil
}

// Iterator returns keys with the given prefix (start) whose byte value is
// less than end, or all matching-prefix keys when end is nil. Mirrors the
// teacher's InMemoryStore.Iterator prefix-scan semantics.
func (s *InMemoryStore) Iterator(start, end []byte) Iterator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys, values [][]byte
	for k, v := range s.data {
		key := []byte(k)
		if !bytes.HasPrefix(key, start) {
			continue
		}
		if end != nil && bytes.Compare(key, end) >= 0 {
			continue
		}
		keys = append(keys, key)
		values = append(values, v)
	}
	return &memIterator{keys: keys, values: values, index: -1}
}

type memIterator struct {
	keys   [][]byte
	values [][]byte
	index  int
}

func (it *memIterator) Next() bool {
	it.index++
	return it.index < len(it.keys)
}

func (it *memIterator) Key() []byte   { return it.keys[it.index] }
func (it *memIterator) Value() []byte { return it.values[it.index] }
func (it *memIterator) Error() error  { return nil }
func (it *memIterator) Close() error  { return nil }
