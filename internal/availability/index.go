package availability

import (
	"iter"
	"slices"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
)

// Slot is a TimeSlot annotated with fields derived at read time.
type Slot struct {
	Time      string `json:"time"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Remaining int    `json:"remaining"`
	SoldOut   bool   `json:"sold_out"`
}

func annotate(ts models.TimeSlot) Slot {
	return Slot{
		Time:      ts.Time,
		Capacity:  ts.Capacity,
		Booked:    ts.Booked,
		Remaining: ts.Remaining(),
		SoldOut:   ts.SoldOut(),
	}
}

// Index answers availability questions for one experience relative to a
// reference "today". It holds no state of its own; every call reads the
// experience's availability list.
type Index struct {
	exp   models.Experience
	today models.Date
}

func New(exp models.Experience, today models.Date) *Index {
	return &Index{exp: exp, today: today}
}

func (x *Index) Experience() models.Experience {
	return x.exp
}

func (x *Index) Today() models.Date {
	return x.today
}

// BookableDates yields, in ascending order and without duplicates, every
// listed date that is not strictly before today. Each range over the
// sequence starts again from the source data.
func (x *Index) BookableDates() iter.Seq[models.Date] {
	return func(yield func(models.Date) bool) {
		dates := make([]models.Date, 0, len(x.exp.Availability))
		for _, a := range x.exp.Availability {
			if a.Date.IsZero() || a.Date.Before(x.today) {
				continue
			}
			dates = append(dates, a.Date)
		}
		slices.SortFunc(dates, models.Date.Compare)
		for _, d := range slices.Compact(dates) {
			if !yield(d) {
				return
			}
		}
	}
}

// Dates collects BookableDates.
func (x *Index) Dates() []models.Date {
	return slices.Collect(x.BookableDates())
}

// FirstBookableDate returns the earliest bookable date, if any.
func (x *Index) FirstBookableDate() (models.Date, bool) {
	for d := range x.BookableDates() {
		return d, true
	}
	return models.Date{}, false
}

func (x *Index) HasAvailability() bool {
	_, ok := x.FirstBookableDate()
	return ok
}

func (x *Index) IsBookable(d models.Date) bool {
	if d.Before(x.today) {
		return false
	}
	_, ok := x.entry(d)
	return ok
}

// SlotsFor lists the slots for d, or nil when d has no availability entry.
// Past dates still resolve here; bookability is decided by BookableDates.
func (x *Index) SlotsFor(d models.Date) []Slot {
	a, ok := x.entry(d)
	if !ok {
		return nil
	}
	out := make([]Slot, len(a.Slots))
	for i, ts := range a.Slots {
		out[i] = annotate(ts)
	}
	return out
}

// Slot looks up a single slot by its time-of-day label.
func (x *Index) Slot(d models.Date, label string) (Slot, bool) {
	a, ok := x.entry(d)
	if !ok {
		return Slot{}, false
	}
	for _, ts := range a.Slots {
		if ts.Time == label {
			return annotate(ts), true
		}
	}
	return Slot{}, false
}

func (x *Index) entry(d models.Date) (models.Availability, bool) {
	for _, a := range x.exp.Availability {
		if a.Date == d {
			return a, true
		}
	}
	return models.Availability{}, false
}
