package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"cineplex/pkg/logger"
)

// entry mirrors the {value, timestamp, expiresAt} envelope the storefront
// keeps in browser storage.
type entry struct {
	Value     []byte
	Timestamp time.Time
	ExpiresAt time.Time // zero means no expiry
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// MemoryService is an in-process Service used when Redis is disabled and in tests.
type MemoryService struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
	log     *logger.Logger
}

// NewMemoryService creates an empty in-process cache
func NewMemoryService() *MemoryService {
	return &MemoryService{
		entries: make(map[string]entry),
		now:     time.Now,
		log:     logger.GetDefault(),
	}
}

// WithClock replaces the time source, used by tests to drive expiry
func (m *MemoryService) WithClock(now func() time.Time) *MemoryService {
	m.now = now
	return m
}

func (m *MemoryService) Get(_ context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return ErrCacheMiss
	}
	if e.expired(m.now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return ErrCacheMiss
	}

	if err := json.Unmarshal(e.Value, dest); err != nil {
		return fmt.Errorf("cache unmarshal error: %w", err)
	}
	return nil
}

func (m *MemoryService) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache marshal error: %w", err)
	}

	now := m.now()
	e := entry{Value: data, Timestamp: now}
	if ttl > 0 {
		e.ExpiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *MemoryService) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// DeletePattern removes keys matching a Redis-style glob
func (m *MemoryService) DeletePattern(_ context.Context, pattern string) error {
	re, err := globRegexp(pattern)
	if err != nil {
		return fmt.Errorf("cache delete pattern error: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.entries {
		if re.MatchString(key) {
			delete(m.entries, key)
		}
	}
	return nil
}

// globRegexp compiles a Redis MATCH glob. Unlike path.Match, * and ? also
// match '/', since list keys embed the caller's free-text query.
func globRegexp(pattern string) (*regexp.Regexp, error) {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '\\':
			if i+1 < len(pattern) {
				i++
			}
			b.WriteString(regexp.QuoteMeta(string(pattern[i])))
		case '[':
			end := strings.IndexByte(pattern[i+1:], ']')
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			class := strings.ReplaceAll(pattern[i+1:i+1+end], `\`, `\\`)
			b.WriteString("[" + class + "]")
			i += end + 1
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.Compile(b.String())
}

func (m *MemoryService) Exists(ctx context.Context, key string) bool {
	var raw json.RawMessage
	return m.Get(ctx, key, &raw) == nil
}

func (m *MemoryService) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	return getOrSet(ctx, m, m.log, key, ttl, fetcher, dest)
}

func (m *MemoryService) Ping(context.Context) error {
	return nil
}
