package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists the cart lines between sessions
type Store interface {
	Load(ctx context.Context) ([]Item, error)
	Save(ctx context.Context, items []Item) error
}

// StorageKey is the key the cart is kept under in a FileStore document
const StorageKey = "cart"

// FileStore keeps a JSON object on disk and owns its "cart" entry.
// Other keys in the document are preserved.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load(_ context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return nil, err
	}
	raw, ok := doc[StorageKey]
	if !ok {
		return []Item{}, nil
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", StorageKey, err)
	}
	return items, nil
}

func (s *FileStore) Save(_ context.Context, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	doc[StorageKey] = raw

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(data) == 0) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return doc, nil
}

type redisKV interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore keeps one cart per session under "cart:<session>"
type RedisStore struct {
	client redisKV
	key    string
	ttl    time.Duration
}

// NewRedisStore expires an idle cart after ttl; zero keeps it forever
func NewRedisStore(client redis.Cmdable, session string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, key: StorageKey + ":" + session, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context) ([]Item, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []Item{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return items, nil
}

// Save drops the key for an empty cart
func (s *RedisStore) Save(ctx context.Context, items []Item) error {
	if len(items) == 0 {
		return s.client.Del(ctx, s.key).Err()
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key, data, s.ttl).Err()
}

// MemoryStore is a Store without persistence
type MemoryStore struct {
	mu    sync.Mutex
	items []Item
	// Err, when set, is returned by every Save
	Err error
}

func (s *MemoryStore) Load(context.Context) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *MemoryStore) Save(_ context.Context, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.items = make([]Item, len(items))
	copy(s.items, items)
	return nil
}
