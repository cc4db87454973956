package sink

import (
	"context"
	"sync"
)

// InMemorySink keeps applied statements in memory
type InMemorySink struct {
	mu         sync.Mutex
	statements []string
}

func NewInMemorySink() *InMemorySink {
	return &InMemorySink{}
}

func (m *InMemorySink) Apply(ctx context.Context, statement string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statements = append(m.statements, statement)
	return nil
}

// Statements returns a copy of everything applied so far, in order
func (m *InMemorySink) Statements() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.statements...)
}

func (m *InMemorySink) Close() error {
	return nil
}
