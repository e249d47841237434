package watch

import (
	"sync"
	"testing"
	"time"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("spaces")
	defer sub.Cancel()

	v := h.Publish("spaces", []string{"a", "b"})
	if v != 1 {
		t.Fatalf("first publish version = %d, want 1", v)
	}

	select {
	case snap := <-sub.C:
		if snap.Collection != "spaces" || snap.Version != 1 {
			t.Errorf("got snapshot %q v%d, want spaces v1", snap.Collection, snap.Version)
		}
		items, ok := snap.Items.([]string)
		if !ok || len(items) != 2 {
			t.Errorf("unexpected items: %#v", snap.Items)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered")
	}
}

func TestPublishIsScopedToCollection(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("spaces")
	defer sub.Cancel()

	h.Publish("assignments", nil)

	select {
	case snap := <-sub.C:
		t.Fatalf("received snapshot for foreign collection: %q", snap.Collection)
	default:
	}
}

func TestLatestWinsWhenConsumerLags(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("spaces")
	defer sub.Cancel()

	// Three publishes with nobody reading: only the newest survives.
	h.Publish("spaces", 1)
	h.Publish("spaces", 2)
	h.Publish("spaces", 3)

	snap := <-sub.C
	if snap.Version != 3 {
		t.Fatalf("lagging consumer saw version %d, want 3", snap.Version)
	}
	if got := snap.Items.(int); got != 3 {
		t.Fatalf("lagging consumer saw items %v, want 3", got)
	}

	select {
	case stale, ok := <-sub.C:
		if ok {
			t.Fatalf("stale snapshot v%d still buffered", stale.Version)
		}
	default:
	}
}

func TestCancelStopsDeliveryAndClosesChannel(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("spaces")

	h.Publish("spaces", "pending")
	sub.Cancel()

	// Nothing published before or after Cancel is observable.
	h.Publish("spaces", "after")
	snap, ok := <-sub.C
	if ok {
		t.Fatalf("read %v from canceled subscription", snap)
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe("spaces")
	sub.Cancel()
	sub.Cancel() // must not panic on double close
}

func TestVersionsAreIndependentPerCollection(t *testing.T) {
	h := NewHub()

	h.Publish("spaces", nil)
	h.Publish("spaces", nil)
	h.Publish("assignments", nil)

	if v := h.Version("spaces"); v != 2 {
		t.Errorf("spaces version = %d, want 2", v)
	}
	if v := h.Version("assignments"); v != 1 {
		t.Errorf("assignments version = %d, want 1", v)
	}
	if v := h.Version("never-published"); v != 0 {
		t.Errorf("unpublished collection version = %d, want 0", v)
	}
}

func TestConcurrentPublishAndCancel(t *testing.T) {
	h := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		sub := h.Subscribe("spaces")
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range sub.C {
			}
		}()
		go func() {
			defer wg.Done()
			sub.Cancel()
		}()
	}
	for i := 0; i < 100; i++ {
		h.Publish("spaces", i)
	}
	wg.Wait()

	if v := h.Version("spaces"); v != 100 {
		t.Fatalf("version = %d after 100 publishes, want 100", v)
	}
}
