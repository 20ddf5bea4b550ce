package diag

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// Collector is a slog.Handler that records the distinct canonical keys
// carried by translation-gap records before forwarding them. It answers the
// question "which strings still need translation" for a running process.
// Safe for concurrent use.
type Collector struct {
	next  slog.Handler
	state *collectorState
}

// Records are shared across WithAttrs/WithGroup clones.
type collectorState struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewCollector creates a Collector forwarding to next.
// A nil next discards the records after collection.
func NewCollector(next slog.Handler) *Collector {
	if next == nil {
		next = slog.NewTextHandler(io.Discard, nil)
	}
	return &Collector{
		next:  next,
		state: &collectorState{keys: make(map[string]struct{})},
	}
}

func (c *Collector) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn || c.next.Enabled(ctx, level)
}

// Handle records the "key" attribute of warning records and delegates.
func (c *Collector) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Level >= slog.LevelWarn {
		rec.Attrs(func(attr slog.Attr) bool {
			if attr.Key == "key" {
				c.state.mu.Lock()
				c.state.keys[attr.Value.String()] = struct{}{}
				c.state.mu.Unlock()
				return false
			}
			return true
		})
	}
	if !c.next.Enabled(ctx, rec.Level) {
		return nil
	}
	return c.next.Handle(ctx, rec)
}

func (c *Collector) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Collector{next: c.next.WithAttrs(attrs), state: c.state}
}

func (c *Collector) WithGroup(name string) slog.Handler {
	return &Collector{next: c.next.WithGroup(name), state: c.state}
}

// Keys returns the distinct canonical keys collected so far, sorted.
func (c *Collector) Keys() []string {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	keys := make([]string, 0, len(c.state.keys))
	for key := range c.state.keys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Reset clears the collected keys.
func (c *Collector) Reset() {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()
	c.state.keys = make(map[string]struct{})
}
