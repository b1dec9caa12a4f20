// Package store provides Storage implementations.
package store

import (
	"context"
	"sync"
)

// =============================================================================
// MEMORY STORAGE - In-memory implementation (for testing/dev)
// =============================================================================

// Memory holds the snapshot in process memory. Nothing survives restart.
type Memory struct {
	mu      sync.RWMutex
	data    []byte
	written bool
}

func NewMemory() *Memory {
	return &Memory{}
}

// Read returns a copy of the snapshot so callers cannot mutate it in place.
func (m *Memory) Read(_ context.Context) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.written {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

func (m *Memory) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.written = true
	return nil
}
