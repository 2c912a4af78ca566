package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"furniture-shop/cart"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// RedisCartStore keeps each session cart as a JSON list of lines. Every
// read or write pushes the expiry out by ttl.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*cart.Ledger, error) {
	raw, err := s.client.GetEx(ctx, cartKey(sessionID), s.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.GetEx: %w", err)
	}

	var lines []cart.Line
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}
	return cart.FromLines(lines), nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, ledger *cart.Ledger) error {
	if ledger.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}

	raw, err := json.Marshal(ledger.Lines())
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}
	return nil
}

type memoryCart struct {
	lines     []cart.Line
	expiresAt time.Time
}

// MemoryCartStore is the in-process fallback used when Redis is down.
// Carts do not survive a restart and are not shared between instances.
type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]memoryCart
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	return &MemoryCartStore{
		carts: make(map[string]memoryCart),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryCartStore) Load(_ context.Context, sessionID string) (*cart.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.carts[sessionID]
	if !ok {
		return cart.New(), nil
	}
	if now.After(entry.expiresAt) {
		delete(s.carts, sessionID)
		return cart.New(), nil
	}

	entry.expiresAt = now.Add(s.ttl)
	s.carts[sessionID] = entry
	return cart.FromLines(entry.lines), nil
}

func (s *MemoryCartStore) Save(_ context.Context, sessionID string, ledger *cart.Ledger) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ledger.IsEmpty() {
		delete(s.carts, sessionID)
		return nil
	}
	s.carts[sessionID] = memoryCart{lines: ledger.Lines(), expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// Sweep drops expired carts and reports how many went.
func (s *MemoryCartStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	n := 0
	for id, entry := range s.carts {
		if now.After(entry.expiresAt) {
			delete(s.carts, id)
			n++
		}
	}
	return n
}
