// Package dedupe tracks which composite row keys were already seen so that
// "keep first occurrence" deduplication can run in a single ordered pass.
package dedupe

import "strings"

// keySep separates key parts. It never appears in the dataset text, so
// ("a", "bc") and ("ab", "c") produce different keys.
const keySep = "\x1f"

// Deduper records seen keys.
type Deduper interface {
	// SeenAndRecord checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(key string) bool

	// Size returns the number of distinct keys recorded.
	Size() int64
}

// inMemoryDeduper implements Deduper with a plain map. It is owned by a
// single aggregation call and is not safe for concurrent use.
type inMemoryDeduper struct {
	seen     map[string]struct{}
	capacity int
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{}
	for _, opt := range opts {
		opt(d)
	}
	d.seen = make(map[string]struct{}, d.capacity)
	return d
}

// SeenAndRecord returns true if key was already recorded.
func (d *inMemoryDeduper) SeenAndRecord(key string) bool {
	if _, exists := d.seen[key]; exists {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}

// Size returns the current number of entries in the deduper.
func (d *inMemoryDeduper) Size() int64 {
	return int64(len(d.seen))
}

// Key builds a composite key from parts.
func Key(parts ...string) string {
	return strings.Join(parts, keySep)
}
