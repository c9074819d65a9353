package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("backoffice/cache")

type entry struct {
	value     any
	fetchedAt time.Time
	stale     bool
}

// Cache is a thread-safe store of query results.
// Uses RWMutex for concurrent reads; concurrent fetches of the same key
// are collapsed into one upstream call.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]*entry
	// epoch advances on every invalidation; a fetch that overlapped one
	// stores its result already stale.
	epoch uint64

	// lastSweep is when expired entries were last dropped.
	lastSweep time.Time

	group   singleflight.Group
	policy  Policy
	now     func() time.Time
	metrics *Metrics
}

// Option configures a Cache.
type Option func(*Cache)

// WithPolicy overrides the staleness windows.
func WithPolicy(p Policy) Option {
	return func(c *Cache) { c.policy = p }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithMetrics enables Prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(c *Cache) { c.metrics = m }
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[Key]*entry),
		policy:  DefaultPolicy(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetcher loads a query result from the inventory API.
type Fetcher[T any] func(ctx context.Context) (T, error)

// Query returns the cached value for key while it is fresh and calls fetch otherwise.
// Errors are returned to the caller and never cached.
func Query[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	if v, ok := c.lookup(key); ok {
		if typed, ok := v.(T); ok {
			c.metrics.hit(key.Kind)
			return typed, nil
		}
	}
	c.metrics.miss(key.Kind)

	res, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Every waiter on key shares this fetch; it outlives the caller that started it.
		ctx, span := tracer.Start(context.WithoutCancel(ctx), "cache.fetch")
		defer span.End()
		span.SetAttributes(
			attribute.String("cache.kind", string(key.Kind)),
			attribute.String("cache.shape", string(key.Shape)),
		)

		epoch := c.currentEpoch()
		started := c.now()
		v, err := fetch(ctx)
		c.metrics.observeFetch(key.Kind, c.now().Sub(started))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		c.store(key, v, epoch)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, _ := res.(T)
	return typed, nil
}

func (c *Cache) lookup(key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.fresh(key.Kind, e) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) fresh(kind Kind, e *entry) bool {
	return !e.stale && c.now().Sub(e.fetchedAt) < c.policy.TTL(kind)
}

func (c *Cache) currentEpoch() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch
}

func (c *Cache) store(key Key, value any, epoch uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = &entry{
		value:     value,
		fetchedAt: now,
		stale:     c.epoch != epoch,
	}

	if now.Sub(c.lastSweep) >= c.policy.FastTTL {
		c.sweepLocked(now)
	}
}

// Sweep drops every entry older than its kind's staleness window and
// returns how many were removed. Store calls it at most once per fast
// window, which bounds the map to the keys queried within the slow window.
func (c *Cache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sweepLocked(c.now())
}

func (c *Cache) sweepLocked(now time.Time) int {
	c.lastSweep = now
	n := 0
	for k, e := range c.entries {
		if now.Sub(e.fetchedAt) >= c.policy.TTL(k.Kind) {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Fresh reports whether key currently holds a fresh entry.
func (c *Cache) Fresh(key Key) bool {
	_, ok := c.lookup(key)
	return ok
}

// Len returns the number of stored entries, fresh or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Clear drops every entry of every scope.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.epoch++
}

// Selector picks the entries an invalidation applies to.
// Empty Shape matches both shapes; empty ID matches every detail entry.
// Warehouses and Products narrow stock lists: a list filtered on a value
// outside the set is left alone, an unfiltered list always matches.
// Only entries scoped to Tenant are considered; every user of that tenant
// sees the invalidation.
type Selector struct {
	Tenant     string
	Kind       Kind
	Shape      Shape
	ID         string
	Warehouses []string
	Products   []string
}

func (s Selector) matches(k Key) bool {
	if k.Scope.Tenant != s.Tenant || k.Kind != s.Kind {
		return false
	}
	if s.Shape != "" && k.Shape != s.Shape {
		return false
	}
	if k.Shape == ShapeDetail {
		return s.ID == "" || k.ID == s.ID
	}
	if len(s.Warehouses) > 0 {
		if w := k.param(ParamWarehouse); w != "" && !slices.Contains(s.Warehouses, w) {
			return false
		}
	}
	if len(s.Products) > 0 {
		if p := k.param(ParamProduct); p != "" && !slices.Contains(s.Products, p) {
			return false
		}
	}
	return true
}

// Invalidate marks matching entries stale and returns how many were touched.
// Stale entries are kept; the next Query for them refetches.
func (c *Cache) Invalidate(sel Selector) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	n := 0
	for k, e := range c.entries {
		if sel.matches(k) {
			e.stale = true
			n++
		}
	}
	c.metrics.invalidated(sel.Kind, sel.Shape, n)
	return n
}
