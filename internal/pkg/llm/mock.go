package llm

import (
	"context"
	"errors"
	"sync"
)

var ErrMockExhausted = errors.New("mock provider has no responses left")

type MockResponse struct {
	Reply string
	Err   error
}

type MockCall struct {
	System  string
	History []Message
}

// MockProvider returns canned responses in FIFO order and records every call.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []MockCall
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) GenerateChatResponse(_ context.Context, system string, history []Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recorded := make([]Message, len(history))
	copy(recorded, history)
	m.Calls = append(m.Calls, MockCall{System: system, History: recorded})

	if len(m.responses) == 0 {
		return "", ErrMockExhausted
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]
	if resp.Err != nil {
		return "", resp.Err
	}
	return resp.Reply, nil
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
