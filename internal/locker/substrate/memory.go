package substrate

import (
	"context"
	"sync"
)

// Memory keeps the snapshot in process memory only. Always available; data
// is gone when the process exits. The store surfaces this as the
// unavailable-persistence state.
type Memory struct {
	mu   sync.Mutex
	data []byte
	set  bool
}

// NewMemory creates an in-memory substrate.
func NewMemory() *Memory { return &Memory{} }

func (m *Memory) Name() string { return "memory" }

func (m *Memory) Load(_ context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

func (m *Memory) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.set = true
	return nil
}

func (m *Memory) Drop(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	m.set = false
	return nil
}
