package dto

// SelectionRequest carries what the booking widget has picked so far.
// Empty fields are simply not applied.
type SelectionRequest struct {
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time     string `json:"time" validate:"omitempty,datetime=15:04"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

type CheckoutRequest struct {
	ExperienceID string `json:"experience_id"`
	Date         string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         string `json:"time" validate:"omitempty,datetime=15:04"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	PromoCode    string `json:"promo_code"`
	AgreeTerms   bool   `json:"agree_terms"`
}

// CheckoutQuery mirrors the query string the detail page hands to checkout.
type CheckoutQuery struct {
	ExperienceID string `query:"experience_id"`
	Date         string `query:"date" validate:"omitempty,datetime=2006-01-02"`
	Time         string `query:"time" validate:"omitempty,datetime=15:04"`
	Quantity     int    `query:"quantity" validate:"gte=0"`
}
