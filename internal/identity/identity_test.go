package identity

import (
	"strconv"
	"sync"
	"testing"
)

func TestAllocatorSequence(t *testing.T) {
	a := New()
	for i := 0; i < 5; i++ {
		want := "a11y-" + strconv.Itoa(i)
		if got := a.Allocate(""); got != want {
			t.Fatalf("allocation %d: got %q, want %q", i, got, want)
		}
	}
}

func TestAllocatorSuppliedID(t *testing.T) {
	a := New()

	if got := a.Allocate(""); got != "a11y-0" {
		t.Fatalf("got %q, want a11y-0", got)
	}
	if got := a.Allocate("foo"); got != "foo" {
		t.Fatalf("supplied id must be returned unchanged, got %q", got)
	}
	if got := a.Allocate(""); got != "a11y-1" {
		t.Fatalf("supplied id must not advance the counter, got %q", got)
	}
}

func TestAllocatorIndependentInstances(t *testing.T) {
	a, b := New(), New()
	a.Allocate("")
	a.Allocate("")

	if got := b.Allocate(""); got != "a11y-0" {
		t.Fatalf("fresh allocator must start at 0, got %q", got)
	}
}

func TestAllocatorConcurrentUnique(t *testing.T) {
	const n = 500
	var (
		a    = New()
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[string]struct{}{}
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := a.Allocate("")
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Fatalf("expected %d unique ids, got %d", n, len(seen))
	}
}
