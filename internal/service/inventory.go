package service

import (
	"context"

	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
)

// Inventory is the authority consulted when a booking is confirmed. A
// multi-user deployment would back it with a store that decrements
// capacity atomically in Reserve.
type Inventory interface {
	// Remaining returns the seats left in a slot right now.
	Remaining(ctx context.Context, experienceID string, date models.Date, slot string) (int, error)
	Reserve(ctx context.Context, c *models.Confirmation) error
}

// staticInventory reads the catalog snapshot and never decrements it.
type staticInventory struct {
	store *catalog.Store
}

func NewStaticInventory(store *catalog.Store) Inventory {
	return &staticInventory{store: store}
}

func (i *staticInventory) Remaining(ctx context.Context, experienceID string, date models.Date, slot string) (int, error) {
	exp, err := i.store.FindByID(experienceID)
	if err != nil {
		return 0, err
	}
	for _, a := range exp.Availability {
		if a.Date != date {
			continue
		}
		for _, ts := range a.Slots {
			if ts.Time == slot {
				return ts.Remaining(), nil
			}
		}
	}
	return 0, nil
}

func (i *staticInventory) Reserve(ctx context.Context, c *models.Confirmation) error {
	return nil
}
