package slots

import (
	"context"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/mdwtime/foundation/core/error"
	"github.com/msto63/mdwtime/foundation/utils/timex"
)

// Store defines the interface for slot persistence
type Store interface {
	// Create stores a new slot and returns it with ID and CreatedAt set
	Create(ctx context.Context, def Definition) (*Slot, error)

	// Get returns the slot with the given ID
	Get(ctx context.Context, id string) (*Slot, error)

	// FindByName returns the slot with the given name
	FindByName(ctx context.Context, name string) (*Slot, error)

	// List returns all slots ordered by start time and name
	List(ctx context.Context) ([]*Slot, error)

	// Delete removes the slot with the given ID
	Delete(ctx context.Context, id string) error

	// ActiveAt returns the slots containing t ordered by start time and name
	ActiveAt(ctx context.Context, t timex.TimeOfDay) ([]*Slot, error)

	Close() error
}

func validateDefinition(op string, def Definition) error {
	if strings.TrimSpace(def.Name) == "" {
		return mdwerror.New("slot name must not be empty").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op)
	}
	if def.Start.Equal(def.End) {
		return mdwerror.New(fmt.Sprintf("slot %q has equal start and end %s", def.Name, def.Start)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(op).
			WithDetail("name", def.Name)
	}
	return nil
}

func notFound(op, key, value string) error {
	return mdwerror.New(fmt.Sprintf("slot not found: %s", value)).
		WithCode(mdwerror.CodeNotFound).
		WithOperation(op).
		WithDetail(key, value)
}

func duplicateName(op, name string) error {
	return mdwerror.New(fmt.Sprintf("slot %q already exists", name)).
		WithCode(mdwerror.CodeDuplicateEntry).
		WithOperation(op).
		WithDetail("name", name)
}

// Seed creates every definition whose name is not in the store yet and
// returns the number of slots created. Existing slots are left unchanged.
func Seed(ctx context.Context, store Store, defs []Definition) (int, error) {
	created := 0
	for _, def := range defs {
		_, err := store.FindByName(ctx, def.Name)
		if err == nil {
			continue
		}
		if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
			return created, err
		}
		if _, err := store.Create(ctx, def); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
