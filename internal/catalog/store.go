package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
)

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrInvalidCatalog     = errors.New("invalid catalog data")
)

// AllLocations is the location filter value that matches every experience.
const AllLocations = "All"

// Source supplies the experience records the store is built from.
type Source interface {
	Load(ctx context.Context) ([]models.Experience, error)
}

// Store is a read-only snapshot of the catalog, loaded once and then shared
// by reference. Every read hands out deep copies.
type Store struct {
	experiences []models.Experience
	bySlug      map[string]int
	byID        map[string]int
}

// Load reads src once and validates the records before building the store.
func Load(ctx context.Context, src Source) (*Store, error) {
	exps, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s, err := New(exps)
	if err != nil {
		return nil, err
	}
	log.Printf("[Catalog] loaded %d experiences", len(s.experiences))
	return s, nil
}

// New validates exps and builds a store from a private copy of them.
func New(exps []models.Experience) (*Store, error) {
	s := &Store{
		experiences: make([]models.Experience, 0, len(exps)),
		bySlug:      make(map[string]int, len(exps)),
		byID:        make(map[string]int, len(exps)),
	}
	for _, e := range exps {
		if err := validate(e); err != nil {
			return nil, err
		}
		if _, dup := s.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, e.ID)
		}
		if _, dup := s.bySlug[e.Slug]; dup {
			return nil, fmt.Errorf("%w: duplicate slug %q", ErrInvalidCatalog, e.Slug)
		}
		c := e.Clone()
		slices.SortStableFunc(c.Availability, func(a, b models.Availability) int {
			return a.Date.Compare(b.Date)
		})
		s.byID[c.ID] = len(s.experiences)
		s.bySlug[c.Slug] = len(s.experiences)
		s.experiences = append(s.experiences, c)
	}
	return s, nil
}

func validate(e models.Experience) error {
	if e.ID == "" || e.Slug == "" {
		return fmt.Errorf("%w: experience %q needs id and slug", ErrInvalidCatalog, e.Title)
	}
	if e.Price < 0 {
		return fmt.Errorf("%w: %s has negative price", ErrInvalidCatalog, e.Slug)
	}
	seen := make(map[models.Date]struct{}, len(e.Availability))
	for _, a := range e.Availability {
		if a.Date.IsZero() {
			return fmt.Errorf("%w: %s has an availability entry without a date", ErrInvalidCatalog, e.Slug)
		}
		if _, dup := seen[a.Date]; dup {
			return fmt.Errorf("%w: %s lists %s twice", ErrInvalidCatalog, e.Slug, a.Date)
		}
		seen[a.Date] = struct{}{}
		for _, ts := range a.Slots {
			if ts.Capacity <= 0 {
				return fmt.Errorf("%w: %s %s %s has capacity %d", ErrInvalidCatalog, e.Slug, a.Date, ts.Time, ts.Capacity)
			}
			if ts.Booked < 0 || ts.Booked > ts.Capacity {
				return fmt.Errorf("%w: %s %s %s has booked %d of %d", ErrInvalidCatalog, e.Slug, a.Date, ts.Time, ts.Booked, ts.Capacity)
			}
		}
	}
	return nil
}

func (s *Store) Len() int {
	return len(s.experiences)
}

// List returns every experience in catalog order.
func (s *Store) List() []models.Experience {
	out := make([]models.Experience, len(s.experiences))
	for i, e := range s.experiences {
		out[i] = e.Clone()
	}
	return out
}

func (s *Store) FindByID(id string) (models.Experience, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Experience{}, ErrExperienceNotFound
	}
	return s.experiences[i].Clone(), nil
}

func (s *Store) FindBySlug(slug string) (models.Experience, error) {
	i, ok := s.bySlug[slug]
	if !ok {
		return models.Experience{}, ErrExperienceNotFound
	}
	return s.experiences[i].Clone(), nil
}

// Search matches query case-insensitively against the title and short
// description, and location exactly. An empty query or a location of ""
// or AllLocations matches everything.
func (s *Store) Search(query, location string) []models.Experience {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Experience, 0, len(s.experiences))
	for _, e := range s.experiences {
		if location != "" && location != AllLocations && e.Location != location {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(e.Title), q) &&
			!strings.Contains(strings.ToLower(e.ShortDescription), q) {
			continue
		}
		out = append(out, e.Clone())
	}
	return out
}

// Locations returns the distinct locations, sorted.
func (s *Store) Locations() []string {
	locs := make([]string, 0, len(s.experiences))
	for _, e := range s.experiences {
		locs = append(locs, e.Location)
	}
	slices.Sort(locs)
	return slices.Compact(locs)
}
