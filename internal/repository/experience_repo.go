package repository

import (
	"context"
	"fmt"
	"log"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"gorm.io/gorm"
)

// ExperienceRepository reads the catalog from postgres. It satisfies
// catalog.Source through Load.
type ExperienceRepository interface {
	FindAll(ctx context.Context) ([]models.Experience, error)
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, exps []models.Experience) (bool, error)
	Load(ctx context.Context) ([]models.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) FindAll(ctx context.Context) ([]models.Experience, error) {
	var exps []models.Experience
	err := r.db.WithContext(ctx).
		Preload("Availability", func(db *gorm.DB) *gorm.DB {
			return db.Order("date")
		}).
		Preload("Availability.Slots", func(db *gorm.DB) *gorm.DB {
			return db.Order("time")
		}).
		Order("created_at, id").
		Find(&exps).Error
	if err != nil {
		return nil, err
	}
	return exps, nil
}

func (r *experienceRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Experience{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// SeedIfEmpty inserts exps, with their availability and slots, when the
// experiences table has no rows. It reports whether anything was written.
func (r *experienceRepository) SeedIfEmpty(ctx context.Context, exps []models.Experience) (bool, error) {
	seeded := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.Experience{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		for i := range exps {
			exp := exps[i].Clone()
			if err := tx.Create(&exp).Error; err != nil {
				return fmt.Errorf("seed %s: %w", exp.Slug, err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		log.Printf("[Repository] seeded %d experiences", len(exps))
	}
	return seeded, nil
}

func (r *experienceRepository) Load(ctx context.Context) ([]models.Experience, error) {
	return r.FindAll(ctx)
}
