package log

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
)

// NewMockEntry returns an entry whose output is recorded by the returned hook.
func NewMockEntry() (*logrus.Entry, *MockLoggerHook) {
	logger, _ := test.NewNullLogger()
	logger.Level = logrus.TraceLevel

	entry := logrus.Entry{Logger: logger}
	hook := MockLoggerHook{}

	entry.Logger.AddHook(&hook)

	hook.On("Fire", mock.Anything).Return(nil)

	return &entry, &hook
}

// NewMockCapability returns a `Capability` backed by a mock entry.
func NewMockCapability() (*Capability, *MockLoggerHook) {
	entry, hook := NewMockEntry()

	return NewCapability(entry), hook
}

type MockLoggerHook struct {
	mock.Mock

	Messages []string
	levels   []logrus.Level
	mu       sync.Mutex
}

// Levels implements `logrus.Hook`.
func (h *MockLoggerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements `logrus.Hook`.
func (h *MockLoggerHook) Fire(entry *logrus.Entry) error {
	_ = h.Called(entry.Level)

	h.mu.Lock()
	defer h.mu.Unlock()

	h.Messages = append(h.Messages, entry.Message)
	h.levels = append(h.levels, entry.Level)

	return nil
}

// MessagesAt returns the messages logged with `level`.
func (h *MockLoggerHook) MessagesAt(level logrus.Level) []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	var res []string

	for i, l := range h.levels {
		if l == level {
			res = append(res, h.Messages[i])
		}
	}

	return res
}

// Reset clears all recorded messages.
func (h *MockLoggerHook) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.Messages = nil
	h.levels = nil
}
