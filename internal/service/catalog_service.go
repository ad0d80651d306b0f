package service

import (
	"context"

	"github.com/Hshshshsh454/Highway-delight/internal/availability"
	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/clock"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
)

// DateAvailability is one bookable date with its annotated slots.
type DateAvailability struct {
	Date  models.Date         `json:"date"`
	Slots []availability.Slot `json:"slots"`
}

type CatalogService interface {
	ListExperiences(ctx context.Context, query, location string) ([]models.Experience, error)
	Locations(ctx context.Context) ([]string, error)
	GetExperience(ctx context.Context, slug string) (*models.Experience, error)
	Availability(ctx context.Context, slug string) ([]DateAvailability, error)
	SlotsFor(ctx context.Context, slug string, date models.Date) ([]availability.Slot, error)
}

type catalogService struct {
	store *catalog.Store
	clock clock.Clock
}

func NewCatalogService(store *catalog.Store, clk clock.Clock) CatalogService {
	return &catalogService{store: store, clock: clk}
}

func (s *catalogService) ListExperiences(ctx context.Context, query, location string) ([]models.Experience, error) {
	return s.store.Search(query, location), nil
}

func (s *catalogService) Locations(ctx context.Context) ([]string, error) {
	return s.store.Locations(), nil
}

func (s *catalogService) GetExperience(ctx context.Context, slug string) (*models.Experience, error) {
	exp, err := s.store.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	return &exp, nil
}

// Availability lists only dates that can still be booked.
func (s *catalogService) Availability(ctx context.Context, slug string) ([]DateAvailability, error) {
	idx, err := s.index(slug)
	if err != nil {
		return nil, err
	}
	out := []DateAvailability{}
	for d := range idx.BookableDates() {
		out = append(out, DateAvailability{Date: d, Slots: idx.SlotsFor(d)})
	}
	return out, nil
}

func (s *catalogService) SlotsFor(ctx context.Context, slug string, date models.Date) ([]availability.Slot, error) {
	idx, err := s.index(slug)
	if err != nil {
		return nil, err
	}
	if !idx.IsBookable(date) {
		return []availability.Slot{}, nil
	}
	return idx.SlotsFor(date), nil
}

func (s *catalogService) index(slug string) (*availability.Index, error) {
	exp, err := s.store.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	return availability.New(exp, s.clock.Today()), nil
}
