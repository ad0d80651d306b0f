// Package selection tracks a shopper's in-progress choice of date, time slot
// and party size for one experience.
//
// Transitions are plain method calls. A rejected transition returns an error
// and leaves the selection exactly as it was; quantity changes never fail
// and are clamped instead.
package selection

import (
	"errors"
	"fmt"

	"github.com/Hshshshsh454/Highway-delight/internal/availability"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/pricing"
)

type State string

const (
	StateEmpty      State = "empty"
	StateDateChosen State = "date_chosen"
	StateSlotChosen State = "slot_chosen"
	StateReady      State = "ready"
)

var (
	ErrDateInPast          = errors.New("please select a date from today onwards")
	ErrDateUnavailable     = errors.New("no availability on the selected date")
	ErrNoDateSelected      = errors.New("select a date first")
	ErrSlotUnknown         = errors.New("time slot is not offered on the selected date")
	ErrSlotSoldOut         = errors.New("time slot is sold out")
	ErrIncompleteSelection = errors.New("select a date and time slot")
	ErrNoAvailability      = errors.New("no availability for this experience")
)

// IncompleteError names the field missing from a selection.
type IncompleteError struct {
	Field string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: %s is missing", ErrIncompleteSelection, e.Field)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncompleteSelection
}

// Selection is owned by a single booking view and is not safe for
// concurrent use.
type Selection struct {
	idx      *availability.Index
	date     models.Date
	slot     string
	quantity int
}

func New(idx *availability.Index) *Selection {
	return &Selection{idx: idx, quantity: 1}
}

func (s *Selection) Index() *availability.Index {
	return s.idx
}

func (s *Selection) Experience() models.Experience {
	return s.idx.Experience()
}

// SelectFirstAvailable pre-selects the earliest bookable date, the way the
// booking view does when it opens.
func (s *Selection) SelectFirstAvailable() error {
	d, ok := s.idx.FirstBookableDate()
	if !ok {
		return ErrNoAvailability
	}
	return s.SelectDate(d)
}

// SelectDate moves to DateChosen and drops any slot and quantity chosen
// for the previous date.
func (s *Selection) SelectDate(d models.Date) error {
	if d.Before(s.idx.Today()) {
		return ErrDateInPast
	}
	if !s.idx.IsBookable(d) {
		return ErrDateUnavailable
	}
	s.date = d
	s.slot = ""
	s.quantity = 1
	return nil
}

// SelectSlot picks a slot on the selected date by its time label.
func (s *Selection) SelectSlot(label string) error {
	if s.date.IsZero() {
		return ErrNoDateSelected
	}
	slot, ok := s.idx.Slot(s.date, label)
	if !ok {
		return ErrSlotUnknown
	}
	if slot.SoldOut {
		return ErrSlotSoldOut
	}
	s.slot = slot.Time
	s.quantity = 1
	return nil
}

// SetQuantity clamps n into [1, remaining] for the selected slot. Without a
// slot the value is only held at a floor of 1.
func (s *Selection) SetQuantity(n int) {
	s.quantity = s.clamp(n)
}

func (s *Selection) Increment() {
	s.SetQuantity(s.quantity + 1)
}

func (s *Selection) Decrement() {
	s.SetQuantity(s.quantity - 1)
}

// Reset returns to Empty.
func (s *Selection) Reset() {
	s.date = models.Date{}
	s.slot = ""
	s.quantity = 1
}

func (s *Selection) clamp(n int) int {
	if n < 1 {
		n = 1
	}
	if slot, ok := s.currentSlot(); ok {
		if n > slot.Remaining {
			n = max(slot.Remaining, 1)
		}
	}
	return n
}

func (s *Selection) currentSlot() (availability.Slot, bool) {
	if s.date.IsZero() || s.slot == "" {
		return availability.Slot{}, false
	}
	return s.idx.Slot(s.date, s.slot)
}

func (s *Selection) State() State {
	switch {
	case s.date.IsZero():
		return StateEmpty
	case s.slot == "":
		return StateDateChosen
	}
	slot, ok := s.currentSlot()
	if !ok || slot.SoldOut || s.quantity < 1 || s.quantity > slot.Remaining {
		return StateSlotChosen
	}
	return StateReady
}

func (s *Selection) Date() (models.Date, bool) {
	return s.date, !s.date.IsZero()
}

// Slot returns the selected slot with remaining capacity read now.
func (s *Selection) Slot() (availability.Slot, bool) {
	return s.currentSlot()
}

func (s *Selection) Quantity() int {
	return s.quantity
}

// MaxQuantity is the upper bound the quantity stepper may reach.
func (s *Selection) MaxQuantity() int {
	slot, ok := s.currentSlot()
	if !ok || slot.Remaining < 1 {
		return 1
	}
	return slot.Remaining
}

// Validate reports whether the selection may be confirmed.
func (s *Selection) Validate() error {
	switch s.State() {
	case StateReady:
		return nil
	case StateEmpty:
		return &IncompleteError{Field: "date"}
	case StateDateChosen:
		return &IncompleteError{Field: "time"}
	}
	if slot, ok := s.currentSlot(); ok && slot.SoldOut {
		return ErrSlotSoldOut
	}
	return &IncompleteError{Field: "quantity"}
}

// Price derives the breakdown for the current quantity. It is only
// meaningful once a slot is chosen.
func (s *Selection) Price(rate pricing.Rate) pricing.Breakdown {
	return pricing.Price(s.Experience().Price, s.quantity, rate)
}

// Snapshot is the read model handed to the presentation layer.
type Snapshot struct {
	ExperienceID string              `json:"experience_id"`
	State        State               `json:"state"`
	Date         models.Date         `json:"date"`
	Slot         *availability.Slot  `json:"slot,omitempty"`
	Quantity     int                 `json:"quantity"`
	MaxQuantity  int                 `json:"max_quantity"`
	Slots        []availability.Slot `json:"slots"`
}

func (s *Selection) Snapshot() Snapshot {
	snap := Snapshot{
		ExperienceID: s.Experience().ID,
		State:        s.State(),
		Date:         s.date,
		Quantity:     s.quantity,
		MaxQuantity:  s.MaxQuantity(),
	}
	if slot, ok := s.currentSlot(); ok {
		snap.Slot = &slot
	}
	if !s.date.IsZero() {
		snap.Slots = s.idx.SlotsFor(s.date)
	}
	return snap
}
