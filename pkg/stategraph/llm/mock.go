package llm

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MockClient is a Client for tests and offline runs.
// It returns canned responses and records every request it receives.
// Safe for concurrent use; parallel workflow branches share one mock.
type MockClient struct {
	mu sync.Mutex

	// Calls records every request, in arrival order. Guard reads with
	// the same care as any shared test fixture: read after the run.
	Calls []Request

	response     string
	responses    []string
	next         int
	err          error
	completeFunc func(ctx context.Context, req Request) (*Response, error)
}

// Compile-time interface check.
var _ Client = (*MockClient)(nil)

// NewMockClient creates a mock that always returns the given content.
func NewMockClient(response string) *MockClient {
	return &MockClient{response: response}
}

// WithResponses makes the mock cycle through the given responses.
func (m *MockClient) WithResponses(responses ...string) *MockClient {
	m.responses = responses
	return m
}

// WithError makes every call fail with err.
func (m *MockClient) WithError(err error) *MockClient {
	m.err = err
	return m
}

// WithCompleteFunc replaces the canned behavior entirely.
func (m *MockClient) WithCompleteFunc(fn func(ctx context.Context, req Request) (*Response, error)) *MockClient {
	m.completeFunc = fn
	return m
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	if m.err != nil {
		err := m.err
		m.mu.Unlock()
		return nil, err
	}
	if m.completeFunc != nil {
		fn := m.completeFunc
		m.mu.Unlock()
		return fn(ctx, req)
	}

	content := m.response
	if len(m.responses) > 0 {
		content = m.responses[m.next%len(m.responses)]
		m.next++
	}
	m.mu.Unlock()

	inputTokens := approxTokens(req.System) + approxTokens(req.User)
	if inputTokens == 0 {
		inputTokens = 1
	}
	outputTokens := approxTokens(content)
	if outputTokens == 0 {
		outputTokens = 1
	}

	return &Response{
		Content:      content,
		Model:        "mock",
		FinishReason: "stop",
		Usage: Usage{
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
			TotalTokens:  inputTokens + outputTokens,
		},
		Duration: time.Millisecond,
	}, nil
}

// CallCount returns the number of completed calls.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastCall returns the most recent request, or nil if none were made.
func (m *MockClient) LastCall() *Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return nil
	}
	req := m.Calls[len(m.Calls)-1]
	return &req
}

// Reset clears recorded calls and restarts the response cycle.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = nil
	m.next = 0
}

// approxTokens estimates a token count at roughly one per word.
func approxTokens(s string) int {
	return len(strings.Fields(s))
}
