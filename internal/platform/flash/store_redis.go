// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/fyyur/internal/platform/constants"
)

// RedisStore implements [Store] with one Redis list per session.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed flash store. Unread messages expire after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

/*
Push appends messages to the session list and refreshes its TTL.

Parameters:
  - context: context.Context
  - sessionID: string
  - messages: ...Message

Returns:
  - error: Encoding or connectivity errors
*/
func (store *RedisStore) Push(context context.Context, sessionID string, messages ...Message) error {
	if len(messages) == 0 {
		return nil
	}

	values := make([]any, 0, len(messages))
	for _, message := range messages {
		encoded, err := json.Marshal(message)
		if err != nil {
			return fmt.Errorf("flash: encode message: %w", err)
		}
		values = append(values, string(encoded))
	}

	key := flashKey(sessionID)

	// RPUSH and EXPIRE travel together so a list never outlives its TTL.
	_, err := store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.RPush(context, key, values...)
		pipe.Expire(context, key, store.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_flash_push_failed: %w", err)
	}

	return nil
}

/*
Pop reads every pending message for the session and deletes the list in the
same MULTI/EXEC block.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - []Message: Pending messages, oldest first (nil when none)
  - error: Decoding or connectivity errors
*/
func (store *RedisStore) Pop(context context.Context, sessionID string) ([]Message, error) {
	key := flashKey(sessionID)

	var rangeCmd *redis.StringSliceCmd
	_, err := store.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		rangeCmd = pipe.LRange(context, key, 0, -1)
		pipe.Del(context, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis_flash_pop_failed: %w", err)
	}

	raw := rangeCmd.Val()
	if len(raw) == 0 {
		return nil, nil
	}

	messages := make([]Message, 0, len(raw))
	for _, entry := range raw {
		var message Message
		if err := json.Unmarshal([]byte(entry), &message); err != nil {
			return nil, fmt.Errorf("flash: decode message: %w", err)
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func flashKey(sessionID string) string {
	return constants.RedisPrefixFlash + sessionID
}
