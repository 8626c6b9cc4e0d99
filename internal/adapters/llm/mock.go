package llm

import "context"

// MockCompleter is a deterministic domain.Completer for dev mode and
// tests. With an empty Reply it behaves like a disabled gateway and
// echoes the fallback.
type MockCompleter struct {
	Reply string
	Calls int
}

func NewMockCompleter(reply string) *MockCompleter {
	return &MockCompleter{Reply: reply}
}

func (m *MockCompleter) Complete(ctx context.Context, system, user, fallback string) string {
	m.Calls++
	if m.Reply == "" {
		return fallback
	}
	return m.Reply
}
