package availability

import (
	"testing"

	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = models.MustParseDate("2026-03-10")

func experience(avail ...models.Availability) models.Experience {
	return models.Experience{ID: "x", Slug: "x", Price: 1200, Availability: avail}
}

func TestBookableDates_NeverBeforeToday(t *testing.T) {
	for _, exp := range catalog.Fixtures(today) {
		idx := New(exp, today)
		for d := range idx.BookableDates() {
			assert.False(t, d.Before(today), "%s offered past date %s", exp.Slug, d)
		}
	}
}

func TestBookableDates_FiltersPastEntry(t *testing.T) {
	var coorg models.Experience
	for _, e := range catalog.Fixtures(today) {
		if e.Slug == "coorg-coffee-plantation-walk" {
			coorg = e
		}
	}
	idx := New(coorg, today)

	assert.Equal(t, []models.Date{today, today.AddDays(1)}, idx.Dates())
	assert.False(t, idx.IsBookable(today.AddDays(-1)))

	// still readable, just not offered
	assert.Len(t, idx.SlotsFor(today.AddDays(-1)), 1)
}

func TestBookableDates_OrderedDeduplicatedRestartable(t *testing.T) {
	idx := New(experience(
		models.Availability{Date: today.AddDays(2)},
		models.Availability{Date: today},
		models.Availability{Date: today.AddDays(2)},
		models.Availability{Date: today.AddDays(-3)},
	), today)

	first := idx.Dates()
	second := idx.Dates()

	assert.Equal(t, []models.Date{today, today.AddDays(2)}, first)
	assert.Equal(t, first, second)
}

func TestBookableDates_EarlyStop(t *testing.T) {
	idx := New(experience(
		models.Availability{Date: today},
		models.Availability{Date: today.AddDays(1)},
	), today)

	var seen []models.Date
	for d := range idx.BookableDates() {
		seen = append(seen, d)
		break
	}

	assert.Equal(t, []models.Date{today}, seen)
}

func TestNoAvailability(t *testing.T) {
	idx := New(experience(), today)

	assert.Empty(t, idx.Dates())
	assert.False(t, idx.HasAvailability())
	_, ok := idx.FirstBookableDate()
	assert.False(t, ok)
}

func TestSlotsFor_Annotated(t *testing.T) {
	idx := New(experience(models.Availability{
		Date: today,
		Slots: []models.TimeSlot{
			{Time: "16:00", Capacity: 10, Booked: 8},
			{Time: "17:00", Capacity: 10, Booked: 10},
		},
	}), today)

	slots := idx.SlotsFor(today)
	require.Len(t, slots, 2)

	assert.Equal(t, Slot{Time: "16:00", Capacity: 10, Booked: 8, Remaining: 2, SoldOut: false}, slots[0])
	assert.Equal(t, Slot{Time: "17:00", Capacity: 10, Booked: 10, Remaining: 0, SoldOut: true}, slots[1])
}

func TestSlotsFor_RemainingAndSoldOutForAllFixtures(t *testing.T) {
	for _, exp := range catalog.Fixtures(today) {
		idx := New(exp, today)
		for _, a := range exp.Availability {
			for _, s := range idx.SlotsFor(a.Date) {
				assert.Equal(t, s.Capacity-s.Booked, s.Remaining)
				assert.Equal(t, s.Remaining <= 0, s.SoldOut)
			}
		}
	}
}

func TestSlotsFor_UnknownDate(t *testing.T) {
	idx := New(experience(models.Availability{Date: today}), today)

	assert.Empty(t, idx.SlotsFor(today.AddDays(9)))
}

func TestSlotsFor_Idempotent(t *testing.T) {
	for _, exp := range catalog.Fixtures(today) {
		idx := New(exp, today)
		for d := range idx.BookableDates() {
			assert.Equal(t, idx.SlotsFor(d), idx.SlotsFor(d))
		}
	}
}

func TestSlot_Lookup(t *testing.T) {
	idx := New(experience(models.Availability{
		Date:  today,
		Slots: []models.TimeSlot{{Time: "09:00", Capacity: 12, Booked: 3}},
	}), today)

	s, ok := idx.Slot(today, "09:00")
	require.True(t, ok)
	assert.Equal(t, 9, s.Remaining)

	_, ok = idx.Slot(today, "10:00")
	assert.False(t, ok)
	_, ok = idx.Slot(today.AddDays(1), "09:00")
	assert.False(t, ok)
}
