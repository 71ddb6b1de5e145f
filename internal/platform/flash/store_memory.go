// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flash

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements [Store] in process memory.
//
// Messages are lost on restart and are not shared between instances. Like the
// Redis store, a session's pending messages expire ttl after its last Push.
type MemoryStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*pending
}

type pending struct {
	messages  []Message
	expiresAt time.Time
}

// NewMemoryStore creates an empty in-memory flash store. A ttl of zero or
// less keeps messages until they are read.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*pending),
	}
}

// Push appends messages for the session and refreshes its expiry. Sessions
// that were never read back are swept here, so the map cannot grow without
// bound.
func (store *MemoryStore) Push(_ context.Context, sessionID string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	currentTime := store.now()
	store.sweep(currentTime)

	entry, ok := store.sessions[sessionID]
	if !ok {
		entry = &pending{}
		store.sessions[sessionID] = entry
	}
	entry.messages = append(entry.messages, messages...)
	if store.ttl > 0 {
		entry.expiresAt = currentTime.Add(store.ttl)
	}
	return nil
}

// Pop returns and clears the pending messages for the session.
func (store *MemoryStore) Pop(_ context.Context, sessionID string) ([]Message, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	entry, ok := store.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	delete(store.sessions, sessionID)

	if store.expired(entry, store.now()) {
		return nil, nil
	}
	return entry.messages, nil
}

// sweep drops expired sessions. The caller holds the lock.
func (store *MemoryStore) sweep(currentTime time.Time) {
	for sessionID, entry := range store.sessions {
		if store.expired(entry, currentTime) {
			delete(store.sessions, sessionID)
		}
	}
}

func (store *MemoryStore) expired(entry *pending, currentTime time.Time) bool {
	return store.ttl > 0 && !currentTime.Before(entry.expiresAt)
}
