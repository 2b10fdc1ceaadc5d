package slots

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/msto63/mdwtime/foundation/utils/timex"
)

// MemoryStore implements Store in memory (for testing and ephemeral use)
type MemoryStore struct {
	slots map[string]*Slot
	mu    sync.RWMutex
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory slot store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		slots: make(map[string]*Slot),
	}
}

// Create stores a new slot
func (s *MemoryStore) Create(ctx context.Context, def Definition) (*Slot, error) {
	const op = "slots.Create"
	if err := validateDefinition(op, def); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.slots {
		if existing.Name == def.Name {
			return nil, duplicateName(op, def.Name)
		}
	}

	slot := &Slot{
		ID:        uuid.New().String(),
		Name:      def.Name,
		Start:     def.Start,
		End:       def.End,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	s.slots[slot.ID] = slot

	copied := *slot
	return &copied, nil
}

// Get returns the slot with the given ID
func (s *MemoryStore) Get(ctx context.Context, id string) (*Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, notFound("slots.Get", "id", id)
	}
	copied := *slot
	return &copied, nil
}

// FindByName returns the slot with the given name
func (s *MemoryStore) FindByName(ctx context.Context, name string) (*Slot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, slot := range s.slots {
		if slot.Name == name {
			copied := *slot
			return &copied, nil
		}
	}
	return nil, notFound("slots.FindByName", "name", name)
}

// List returns all slots ordered by start time and name
func (s *MemoryStore) List(ctx context.Context) ([]*Slot, error) {
	return s.filter(func(*Slot) bool { return true }), nil
}

// ActiveAt returns the slots containing t
func (s *MemoryStore) ActiveAt(ctx context.Context, t timex.TimeOfDay) ([]*Slot, error) {
	return s.filter(func(slot *Slot) bool { return slot.Contains(t) }), nil
}

// Delete removes the slot with the given ID
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[id]; !ok {
		return notFound("slots.Delete", "id", id)
	}
	delete(s.slots, id)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) filter(keep func(*Slot) bool) []*Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Slot
	for _, slot := range s.slots {
		if keep(slot) {
			copied := *slot
			result = append(result, &copied)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if c := result[i].Start.Compare(result[j].Start); c != 0 {
			return c < 0
		}
		return result[i].Name < result[j].Name
	})
	return result
}
