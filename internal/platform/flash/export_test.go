// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flash

import "time"

// SetClock replaces the store's time source.
func (store *MemoryStore) SetClock(now func() time.Time) {
	store.now = now
}

// Sessions reports how many sessions the store still holds.
func (store *MemoryStore) Sessions() int {
	store.mu.Lock()
	defer store.mu.Unlock()
	return len(store.sessions)
}
