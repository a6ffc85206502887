package cache

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type Namespace string

const (
	QuoteNamespace    Namespace = "quote"
	EarningsNamespace Namespace = "earnings"
)

const (
	DefaultTTL             = 15 * time.Minute
	DefaultCleanupInterval = 5 * time.Minute
)

// Key builds the composite cache key for a namespace and symbol.
func Key(ns Namespace, symbol string) string {
	return string(ns) + ":" + strings.ToUpper(strings.TrimSpace(symbol))
}

// Store is a TTL cache shared by all in-flight fetches. Values go in and come
// out as deep copies, so no caller ever holds a reference to a cached entry.
type Store struct {
	items    *cache.Cache
	ttl      time.Duration
	maxItems int

	// serializes writers so the size bound is checked and applied atomically
	mu sync.Mutex
}

// New creates a Store. A maxItems of zero leaves the store unbounded.
func New(ttl, cleanupInterval time.Duration, maxItems int) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		items:    cache.New(ttl, cleanupInterval),
		ttl:      ttl,
		maxItems: maxItems,
	}
}

func (s *Store) Len() int {
	return s.items.ItemCount()
}

// Flush drops every entry.
func (s *Store) Flush() {
	s.items.Flush()
}

// Get returns the live value stored under (ns, symbol). Expired entries are
// reported as absent whether or not the janitor has swept them yet.
func Get[T any](s *Store, ns Namespace, symbol string) (T, bool) {
	var zero T
	raw, found := s.items.Get(Key(ns, symbol))
	if !found {
		return zero, false
	}
	v, ok := raw.(T)
	if !ok {
		return zero, false
	}
	out, err := deepCopy(v)
	if err != nil {
		log.Warn().Err(err).Str("key", Key(ns, symbol)).Msg("cache copy failed")
		return zero, false
	}
	return out, true
}

// Set stores value under (ns, symbol) with the store's TTL, replacing any
// previous entry and its timestamp.
func Set[T any](s *Store, ns Namespace, symbol string, value T) {
	SetWithTTL(s, ns, symbol, value, s.ttl)
}

// SetWithTTL is Set with a per-entry lifetime. A non-positive ttl stores nothing.
func SetWithTTL[T any](s *Store, ns Namespace, symbol string, value T, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	stored, err := deepCopy(value)
	if err != nil {
		log.Warn().Err(err).Str("key", Key(ns, symbol)).Msg("cache copy failed, entry not stored")
		return
	}

	key := Key(ns, symbol)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxItems > 0 {
		if _, exists := s.items.Get(key); !exists && s.items.ItemCount() >= s.maxItems {
			s.evictLocked()
		}
	}
	s.items.Set(key, stored, ttl)
}

// evictLocked makes room for one entry: expired entries go first, then the
// entries closest to expiry.
func (s *Store) evictLocked() {
	s.items.DeleteExpired()
	excess := s.items.ItemCount() - s.maxItems + 1
	if excess <= 0 {
		return
	}

	type aged struct {
		key       string
		expiresAt int64
	}
	live := s.items.Items()
	entries := make([]aged, 0, len(live))
	for k, item := range live {
		entries = append(entries, aged{key: k, expiresAt: item.Expiration})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].expiresAt < entries[j].expiresAt
	})
	for i := 0; i < excess && i < len(entries); i++ {
		s.items.Delete(entries[i].key)
	}
	log.Debug().Int("evicted", excess).Int("maxItems", s.maxItems).Msg("cache bound reached")
}

func deepCopy[T any](v T) (T, error) {
	var out T
	if err := copier.CopyWithOption(&out, &v, copier.Option{DeepCopy: true}); err != nil {
		return out, err
	}
	return out, nil
}
