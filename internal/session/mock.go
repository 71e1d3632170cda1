package session

import (
	"context"
	"sync"
	"time"

	"github.com/diogo/agentchat/internal/models"
)

// MockExchanger is a scripted Exchanger for testing controllers and
// UIs without a running agent service.
type MockExchanger struct {
	mu sync.Mutex

	// Reply is returned on every call unless Replies is non-empty, in
	// which case replies are consumed in order.
	Reply   string
	Replies []string

	// Err, when set, makes every call fail.
	Err error

	// Delay is waited before responding, to exercise in-flight states.
	Delay time.Duration

	// Call recorders
	Calls            int
	LastConversation models.Conversation
}

// Ensure MockExchanger implements Exchanger
var _ Exchanger = (*MockExchanger)(nil)

func (m *MockExchanger) Exchange(ctx context.Context, conv models.Conversation) (string, error) {
	m.mu.Lock()
	m.Calls++
	m.LastConversation = conv
	reply := m.Reply
	if len(m.Replies) > 0 {
		reply = m.Replies[0]
		m.Replies = m.Replies[1:]
	}
	err := m.Err
	delay := m.Delay
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	if err != nil {
		return "", err
	}
	return reply, nil
}

// CallCount returns the number of exchanges performed.
func (m *MockExchanger) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Calls
}
