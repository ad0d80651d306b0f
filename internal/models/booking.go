package models

import "time"

type ConfirmationSource string

const (
	SourceWidget   ConfirmationSource = "widget"
	SourceCheckout ConfirmationSource = "checkout"
)

// Contact is the checkout form payload. Confirmation only checks presence
// and shape; the values are passed through untouched.
type Contact struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	Email      string `json:"email" validate:"required,email"`
	PromoCode  string `json:"promo_code,omitempty"`
	AgreeTerms bool   `json:"agree_terms" validate:"required"`
}

// Confirmation is the terminal acknowledgment of a booking. It is not
// stored; the booked counts of the catalog are left untouched.
type Confirmation struct {
	ReferenceID     string             `json:"reference_id"`
	Source          ConfirmationSource `json:"source"`
	ExperienceID    string             `json:"experience_id"`
	ExperienceSlug  string             `json:"experience_slug"`
	ExperienceTitle string             `json:"experience_title"`
	Date            Date               `json:"date"`
	Time            string             `json:"time"`
	Quantity        int                `json:"quantity"`
	UnitPrice       int64              `json:"unit_price"`
	Subtotal        int64              `json:"subtotal"`
	Taxes           string             `json:"taxes"`
	Total           string             `json:"total"`
	TotalRounded    int64              `json:"total_rounded"`
	Contact         *Contact           `json:"contact,omitempty"`
	ConfirmedAt     time.Time          `json:"confirmed_at"`
}
