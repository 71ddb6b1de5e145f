// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package flash stores one-shot messages between a form submission and the page
rendered after its redirect.

Messages are keyed by the visitor's session id. [Store.Pop] reads and clears
them atomically, so each message is shown exactly once.

Implementations:

  - [RedisStore]: a Redis list per session with a TTL; shared by all instances.
  - [MemoryStore]: process-local fallback for development and tests.
*/
package flash

import (
	"context"
	"fmt"
)

// Level classifies a message for styling.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "danger"
)

// Message is a single flash entry.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Success builds a success message.
func Success(format string, args ...any) Message {
	return Message{Level: LevelSuccess, Text: fmt.Sprintf(format, args...)}
}

// Error builds an error message.
func Error(format string, args ...any) Message {
	return Message{Level: LevelError, Text: fmt.Sprintf(format, args...)}
}

// Store persists flash messages per session.
type Store interface {
	// Push appends messages for the session.
	Push(ctx context.Context, sessionID string, messages ...Message) error

	// Pop returns and removes every pending message for the session, oldest first.
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}
