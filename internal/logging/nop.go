package logging

import "github.com/InzamanCareem/TeamMate-System/types"

// NopLogger discards all log messages. Useful for tests or when logging is
// not needed.
type NopLogger struct{}

var _ types.Logger = (*NopLogger)(nil)

// NewNop creates a new no-op logger that discards all messages.
func NewNop() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(_ string, _ ...any) {}

// Info discards the message.
func (n *NopLogger) Info(_ string, _ ...any) {}

// Warn discards the message.
func (n *NopLogger) Warn(_ string, _ ...any) {}

// Error discards the message.
func (n *NopLogger) Error(_ string, _ ...any) {}

// Fatal discards the message and does not exit; the no-op logger is for
// tests where terminating the process would be wrong.
func (n *NopLogger) Fatal(_ string, _ ...any) {}
