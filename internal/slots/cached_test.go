package slots

import (
	"context"
	"testing"
	"time"

	"github.com/msto63/mdwtime/foundation/utils/timex"
)

func TestCachedStore_ActiveAt(t *testing.T) {
	ctx := context.Background()
	store := NewCachedStore(NewMemoryStore(), time.Minute)
	defer store.Close()

	if _, err := store.Create(ctx, def("night", "22:00", "06:00")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	at := timex.MustParse("23:00")
	for i := 0; i < 3; i++ {
		active, err := store.ActiveAt(ctx, at)
		if err != nil {
			t.Fatalf("ActiveAt() error = %v", err)
		}
		if !equalNames(names(active), []string{"night"}) {
			t.Fatalf("ActiveAt() = %v, want [night]", names(active))
		}
	}

	hits, misses := store.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("Stats() = %d hits, %d misses, want 2, 1", hits, misses)
	}
}

func TestCachedStore_WritesInvalidate(t *testing.T) {
	ctx := context.Background()
	store := NewCachedStore(NewMemoryStore(), time.Minute)
	defer store.Close()

	at := timex.MustParse("23:00")
	active, err := store.ActiveAt(ctx, at)
	if err != nil || len(active) != 0 {
		t.Fatalf("ActiveAt() on empty store = %v, %v", names(active), err)
	}

	slot, err := store.Create(ctx, def("night", "22:00", "06:00"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	active, _ = store.ActiveAt(ctx, at)
	if !equalNames(names(active), []string{"night"}) {
		t.Errorf("ActiveAt() after Create = %v, want [night]", names(active))
	}

	if err := store.Delete(ctx, slot.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	active, _ = store.ActiveAt(ctx, at)
	if len(active) != 0 {
		t.Errorf("ActiveAt() after Delete = %v, want none", names(active))
	}
}

func TestCachedStore_ResultsAreCopies(t *testing.T) {
	ctx := context.Background()
	store := NewCachedStore(NewMemoryStore(), time.Minute)
	defer store.Close()

	if _, err := store.Create(ctx, def("night", "22:00", "06:00")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	at := timex.MustParse("23:00")
	first, err := store.ActiveAt(ctx, at)
	if err != nil || len(first) != 1 {
		t.Fatalf("ActiveAt() = %v, %v", names(first), err)
	}
	first[0].Name = "changed"
	first[0] = nil

	second, err := store.ActiveAt(ctx, at)
	if err != nil {
		t.Fatalf("ActiveAt() error = %v", err)
	}
	if !equalNames(names(second), []string{"night"}) {
		t.Errorf("cached result changed by caller: %v", names(second))
	}
	if hits, _ := store.Stats(); hits != 1 {
		t.Errorf("second lookup was not a cache hit: hits = %d", hits)
	}
}
