package metrics

import (
	"sync"
	"testing"
)

func TestStoreIncrementAndCounts(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := store.Increment(ModeMCP); err != nil {
			t.Fatalf("Increment: %v", err)
		}
	}
	if err := store.Increment(ModeSearch); err != nil {
		t.Fatalf("Increment: %v", err)
	}

	counts := store.Counts()
	if counts[ModeMCP] != 3 {
		t.Errorf("counts[mcp] = %d, want 3", counts[ModeMCP])
	}
	if counts[ModeSearch] != 1 {
		t.Errorf("counts[search] = %d, want 1", counts[ModeSearch])
	}
}

func TestStoreCountsReturnsCopy(t *testing.T) {
	store, _ := NewStore()
	_ = store.Increment(ModeMCP)

	counts := store.Counts()
	counts[ModeMCP] = 99

	if got := store.Counts()[ModeMCP]; got != 1 {
		t.Errorf("counts[mcp] = %d, external mutation must not leak in", got)
	}
}

func TestStoreConcurrentIncrements(t *testing.T) {
	store, _ := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Increment(ModeMCP)
		}()
	}
	wg.Wait()

	if got := store.Counts()[ModeMCP]; got != 50 {
		t.Errorf("counts[mcp] = %d, want 50", got)
	}
}
