package models

import "time"

// Category is a presentation-neutral marker; the UI maps it to an icon.
type Category string

const (
	CategoryWaves     Category = "waves"
	CategoryTechHub   Category = "tech-hub"
	CategoryCoffee    Category = "coffee"
	CategoryMountain  Category = "mountain"
	CategorySailing   Category = "sailing"
	CategoryNightlife Category = "nightlife"
	CategoryBeach     Category = "beach"
	CategoryCastle    Category = "castle"
	CategoryLandmark  Category = "landmark"
	CategoryCity      Category = "city"
	CategoryRailway   Category = "railway"
	CategoryAdventure Category = "adventure"
)

type Experience struct {
	ID               string         `gorm:"primaryKey;size:64" json:"id"`
	Slug             string         `gorm:"uniqueIndex;not null" json:"slug"`
	Title            string         `gorm:"not null" json:"title"`
	Location         string         `gorm:"index;not null" json:"location"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"short_description"`
	Price            int64          `gorm:"not null" json:"price"`
	ImageIDs         []string       `gorm:"serializer:json" json:"image_ids"`
	Rating           float64        `json:"rating"`
	Reviews          int            `json:"reviews"`
	Category         Category       `gorm:"size:32" json:"category"`
	Availability     []Availability `gorm:"foreignKey:ExperienceID;constraint:OnDelete:CASCADE" json:"availability"`
	CreatedAt        time.Time      `json:"-"`
	UpdatedAt        time.Time      `json:"-"`
}

// Availability is one calendar date's inventory for one experience.
type Availability struct {
	ID           uint       `gorm:"primaryKey" json:"-"`
	ExperienceID string     `gorm:"size:64;not null;uniqueIndex:idx_experience_date" json:"-"`
	Date         Date       `gorm:"type:date;not null;uniqueIndex:idx_experience_date" json:"date"`
	Slots        []TimeSlot `gorm:"foreignKey:AvailabilityID;constraint:OnDelete:CASCADE" json:"slots"`
}

type TimeSlot struct {
	ID             uint   `gorm:"primaryKey" json:"-"`
	AvailabilityID uint   `gorm:"not null;index" json:"-"`
	Time           string `gorm:"size:5;not null" json:"time"`
	Capacity       int    `gorm:"not null" json:"capacity"`
	Booked         int    `gorm:"not null;default:0" json:"booked"`
}

// Remaining is capacity minus booked; it may be negative on bad data.
func (s TimeSlot) Remaining() int {
	return s.Capacity - s.Booked
}

func (s TimeSlot) SoldOut() bool {
	return s.Remaining() <= 0
}

// Clone returns a deep copy so callers cannot mutate a shared snapshot.
func (e Experience) Clone() Experience {
	out := e
	out.ImageIDs = append([]string(nil), e.ImageIDs...)
	out.Availability = make([]Availability, len(e.Availability))
	for i, a := range e.Availability {
		a.Slots = append([]TimeSlot(nil), a.Slots...)
		out.Availability[i] = a
	}
	return out
}
