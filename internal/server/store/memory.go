package store

import (
	"context"
	"sync"
)

// MemoryStore keeps a JSON-like tree in memory. It records every Remove call
// and can be told to fail, which makes it a convenient stand-in for Firebase.
type MemoryStore struct {
	mu      sync.Mutex
	root    map[string]any
	removed []string
	err     error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{root: map[string]any{}}
}

// Set stores value at path, creating intermediate nodes and replacing any
// leaf found on the way.
func (m *MemoryStore) Set(path string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts := splitPath(path)
	if len(parts) == 0 {
		return
	}
	node := m.root
	for _, p := range parts[:len(parts)-1] {
		next, ok := node[p].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[p] = next
		}
		node = next
	}
	node[parts[len(parts)-1]] = value
}

// Get returns the value at path.
func (m *MemoryStore) Get(path string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var cur any = m.root
	for _, p := range splitPath(path) {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = node[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// FailWith makes every following Remove return err. Pass nil to recover.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Removed lists the paths passed to Remove, in call order.
func (m *MemoryStore) Removed() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.removed...)
}

func (m *MemoryStore) Remove(ctx context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.removed = append(m.removed, path)
	if err := ctx.Err(); err != nil {
		return err
	}
	if m.err != nil {
		return m.err
	}

	parts := splitPath(path)
	if len(parts) == 0 {
		m.root = map[string]any{}
		return nil
	}
	node := m.root
	for _, p := range parts[:len(parts)-1] {
		next, ok := node[p].(map[string]any)
		if !ok {
			return nil
		}
		node = next
	}
	delete(node, parts[len(parts)-1])
	return nil
}
