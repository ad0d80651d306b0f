package repository

import (
	"context"
	"errors"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"gorm.io/gorm"
)

// SlotInventory answers remaining-seat questions from the live time_slots
// rows instead of the in-memory catalog snapshot. Reserve leaves the rows
// untouched; booked counts are owned by whatever system fills them.
type SlotInventory struct {
	db *gorm.DB
}

func NewSlotInventory(db *gorm.DB) *SlotInventory {
	return &SlotInventory{db: db}
}

func (i *SlotInventory) Remaining(ctx context.Context, experienceID string, date models.Date, slot string) (int, error) {
	var ts models.TimeSlot
	err := i.db.WithContext(ctx).
		Joins("JOIN availabilities ON availabilities.id = time_slots.availability_id").
		Where("availabilities.experience_id = ? AND availabilities.date = ? AND time_slots.time = ?", experienceID, date, slot).
		First(&ts).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return ts.Remaining(), nil
}

func (i *SlotInventory) Reserve(ctx context.Context, c *models.Confirmation) error {
	return nil
}
