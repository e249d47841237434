// Package watch fans out full-collection snapshots to live
// subscribers. It replaces the hosted database's live queries: after
// every successful mutation a handler publishes the fresh collection,
// and each subscriber receives the whole snapshot, never a diff.
package watch

import (
	"sync"
	"sync/atomic"
)

// Snapshot is one delivery: the complete current contents of a
// collection plus a monotonically increasing version per collection.
type Snapshot struct {
	Collection string `json:"collection"`
	Version    uint64 `json:"version"`
	Items      any    `json:"items"`
}

// Subscription is one live listener on a collection. C carries
// snapshots with latest-wins semantics: if the consumer lags, a newer
// snapshot replaces the undelivered one, because each snapshot is the
// entire view and intermediate states are worthless. Cancel is safe
// to call any number of times; after the first call no further
// snapshots are delivered and C is closed.
type Subscription struct {
	C <-chan Snapshot

	ch     chan Snapshot
	hub    *Hub
	name   string
	once   sync.Once
	active atomic.Bool
}

// Cancel tears the subscription down exactly once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.active.Store(false)
		s.hub.drop(s)
		// drop synchronizes with any in-flight Publish, so no send can
		// follow; discard a buffered snapshot so nothing is observable
		// after Cancel returns.
		select {
		case <-s.ch:
		default:
		}
		close(s.ch)
	})
}

// Hub routes snapshots from mutating handlers to subscribers.
// The zero value is not usable; call NewHub.
type Hub struct {
	mu       sync.Mutex
	subs     map[string]map[*Subscription]struct{}
	versions map[string]uint64
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{
		subs:     make(map[string]map[*Subscription]struct{}),
		versions: make(map[string]uint64),
	}
}

// Subscribe registers a listener on one collection. The returned
// subscription must be canceled when the consumer goes away,
// otherwise it is retained by the hub forever.
func (h *Hub) Subscribe(collection string) *Subscription {
	s := &Subscription{
		ch:   make(chan Snapshot, 1),
		hub:  h,
		name: collection,
	}
	s.C = s.ch
	s.active.Store(true)

	h.mu.Lock()
	set := h.subs[collection]
	if set == nil {
		set = make(map[*Subscription]struct{})
		h.subs[collection] = set
	}
	set[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Publish bumps the collection version and delivers a full snapshot
// to every active subscriber. Delivery never blocks: a pending
// undelivered snapshot is discarded in favor of the newer one.
// It returns the version assigned to this snapshot.
func (h *Hub) Publish(collection string, items any) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.versions[collection]++
	snap := Snapshot{Collection: collection, Version: h.versions[collection], Items: items}
	for s := range h.subs[collection] {
		if !s.active.Load() {
			continue
		}
		// Drop the stale pending snapshot, if any, then deliver.
		select {
		case <-s.ch:
		default:
		}
		s.ch <- snap
	}
	return snap.Version
}

// Version returns the current version of a collection (0 when it has
// never been published). The stats cache keys on this value.
func (h *Hub) Version(collection string) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.versions[collection]
}

// drop removes a subscription from the routing table. Called from
// Cancel under its once guard.
func (h *Hub) drop(s *Subscription) {
	h.mu.Lock()
	if set := h.subs[s.name]; set != nil {
		delete(set, s)
		if len(set) == 0 {
			delete(h.subs, s.name)
		}
	}
	h.mu.Unlock()
}
