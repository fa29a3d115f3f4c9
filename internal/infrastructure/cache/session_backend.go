package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionMissing = errors.New("session not found")

// SessionBackend persists encoded session values by id.
type SessionBackend interface {
	Get(ctx context.Context, id string) ([]byte, error)
	Set(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type RedisSessionBackend struct {
	client *redis.Client
}

func NewRedisSessionBackend(client *redis.Client) *RedisSessionBackend {
	return &RedisSessionBackend{client: client}
}

func (b *RedisSessionBackend) Get(ctx context.Context, id string) ([]byte, error) {
	val, err := b.client.Get(ctx, "session:"+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionMissing
	}
	return val, err
}

func (b *RedisSessionBackend) Set(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	return b.client.Set(ctx, "session:"+id, data, ttl).Err()
}

func (b *RedisSessionBackend) Delete(ctx context.Context, id string) error {
	return b.client.Del(ctx, "session:"+id).Err()
}

// MemorySessionBackend keeps sessions in process. Used when Redis is not
// reachable at startup and in tests.
type MemorySessionBackend struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

func NewMemorySessionBackend() *MemorySessionBackend {
	return &MemorySessionBackend{items: make(map[string]memoryEntry), now: time.Now}
}

func (b *MemorySessionBackend) Get(_ context.Context, id string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.items[id]
	if !ok {
		return nil, ErrSessionMissing
	}
	if b.now().After(e.expiresAt) {
		delete(b.items, id)
		return nil, ErrSessionMissing
	}
	return e.data, nil
}

func (b *MemorySessionBackend) Set(_ context.Context, id string, data []byte, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items[id] = memoryEntry{data: data, expiresAt: b.now().Add(ttl)}
	return nil
}

func (b *MemorySessionBackend) Delete(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.items, id)
	return nil
}
