package service

import (
	"context"
	"testing"

	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	return NewCatalogService(newStore(t), clock.NewFixedDate(today))
}

func TestCatalog_ListExperiences(t *testing.T) {
	svc := newCatalogService(t)

	all, err := svc.ListExperiences(context.Background(), "", catalog.AllLocations)
	require.NoError(t, err)
	assert.Len(t, all, 15)

	blr, err := svc.ListExperiences(context.Background(), "", "Bangalore")
	require.NoError(t, err)
	assert.Len(t, blr, 2)
}

func TestCatalog_GetExperience_NotFound(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetExperience(context.Background(), "missing")

	assert.ErrorIs(t, err, catalog.ErrExperienceNotFound)
}

func TestCatalog_AvailabilitySkipsPastDates(t *testing.T) {
	svc := newCatalogService(t)

	days, err := svc.Availability(context.Background(), "coorg-coffee-plantation-walk")

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, today, days[0].Date)
	assert.Equal(t, today.AddDays(1), days[1].Date)
	require.Len(t, days[0].Slots, 2)
	assert.Equal(t, 2, days[0].Slots[0].Remaining)
}

func TestCatalog_SlotsFor(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	slots, err := svc.SlotsFor(ctx, "kayaking-in-udupi", today.AddDays(2))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].SoldOut)
	assert.True(t, slots[1].SoldOut)

	past, err := svc.SlotsFor(ctx, "coorg-coffee-plantation-walk", today.AddDays(-1))
	require.NoError(t, err)
	assert.Empty(t, past)

	_, err = svc.SlotsFor(ctx, "missing", today)
	assert.ErrorIs(t, err, catalog.ErrExperienceNotFound)
}

func TestCatalog_Locations(t *testing.T) {
	svc := newCatalogService(t)

	locs, err := svc.Locations(context.Background())

	require.NoError(t, err)
	assert.Contains(t, locs, "Udupi")
	assert.Contains(t, locs, "Bangalore")
}
