// SPDX-License-Identifier: MIT
//
// File: ledger.go
// Role: In-memory audit/dedup ledger keyed by digest.
// Concurrency:
//   - All methods are safe for concurrent use (single RWMutex).

package fingerprint

import (
	"sync"

	"github.com/google/uuid"
)

// Entry is one distinct digest recorded in a Ledger.
type Entry struct {
	ID     uuid.UUID
	Label  string // label of the first recording
	Digest string // hex
	Seen   int    // number of Record calls with this digest
}

// Ledger remembers every digest it has been shown. Nothing is persisted.
type Ledger struct {
	mu       sync.RWMutex
	byDigest map[string]*Entry
	order    []string
	newID    func() uuid.UUID
}

// LedgerOption configures a Ledger.
type LedgerOption func(*Ledger)

// WithIDSource replaces uuid.New, e.g. for reproducible tests. Panics on nil.
func WithIDSource(fn func() uuid.UUID) LedgerOption {
	if fn == nil {
		panic("fingerprint: WithIDSource(nil)")
	}
	return func(l *Ledger) { l.newID = fn }
}

// NewLedger returns an empty ledger.
func NewLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{byDigest: make(map[string]*Entry), newID: uuid.New}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Record registers digest under label. For a digest already present it
// returns the existing entry, with Seen incremented, and duplicate == true.
func (l *Ledger) Record(label string, digest []byte) (e Entry, duplicate bool) {
	key := Hex(digest)

	l.mu.Lock()
	defer l.mu.Unlock()

	if existing, ok := l.byDigest[key]; ok {
		existing.Seen++
		return *existing, true
	}
	entry := &Entry{ID: l.newID(), Label: label, Digest: key, Seen: 1}
	l.byDigest[key] = entry
	l.order = append(l.order, key)

	return *entry, false
}

// Lookup returns the entry for digest, if recorded.
func (l *Ledger) Lookup(digest []byte) (Entry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.byDigest[Hex(digest)]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Len returns the number of distinct digests.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.order)
}

// Entries returns a snapshot of all entries in first-recorded order.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Entry, 0, len(l.order))
	for _, key := range l.order {
		out = append(out, *l.byDigest[key])
	}

	return out
}
