package dto

import (
	"github.com/Hshshshsh454/Highway-delight/internal/availability"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/pricing"
	"github.com/Hshshshsh454/Highway-delight/internal/selection"
	"github.com/Hshshshsh454/Highway-delight/internal/service"
)

type ExperienceSummaryResponse struct {
	ID               string          `json:"id"`
	Slug             string          `json:"slug"`
	Title            string          `json:"title"`
	Location         string          `json:"location"`
	ShortDescription string          `json:"short_description"`
	Price            int64           `json:"price"`
	ImageIDs         []string        `json:"image_ids"`
	Rating           float64         `json:"rating"`
	Reviews          int             `json:"reviews"`
	Category         models.Category `json:"category"`
}

type ExperienceResponse struct {
	ExperienceSummaryResponse
	Description string `json:"description"`
}

type DateAvailabilityResponse struct {
	Date  models.Date         `json:"date"`
	Slots []availability.Slot `json:"slots"`
}

type PriceResponse struct {
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
	TaxRate      string `json:"tax_rate"`
	TaxPercent   string `json:"tax_percent"`
	Subtotal     int64  `json:"subtotal"`
	Taxes        string `json:"taxes"`
	Total        string `json:"total"`
	TaxesRounded int64  `json:"taxes_rounded"`
	TotalRounded int64  `json:"total_rounded"`
}

type SelectionResponse struct {
	ExperienceID string              `json:"experience_id"`
	Title        string              `json:"title"`
	UnitPrice    int64               `json:"unit_price"`
	State        selection.State     `json:"state"`
	Dates        []models.Date       `json:"dates"`
	Date         models.Date         `json:"date"`
	Slots        []availability.Slot `json:"slots"`
	Slot         *availability.Slot  `json:"slot,omitempty"`
	Quantity     int                 `json:"quantity"`
	MaxQuantity  int                 `json:"max_quantity"`
	Warnings     []string            `json:"warnings"`
	Price        *PriceResponse      `json:"price,omitempty"`
}

type CheckoutSummaryResponse struct {
	Experience ExperienceSummaryResponse `json:"experience"`
	Date       models.Date               `json:"date"`
	Time       string                    `json:"time"`
	Quantity   int                       `json:"quantity"`
	Price      PriceResponse             `json:"price"`
}

type ConfirmationResponse struct {
	Message string `json:"message"`
	models.Confirmation
}

type ErrorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func ToExperienceSummaryResponse(e *models.Experience) ExperienceSummaryResponse {
	return ExperienceSummaryResponse{
		ID:               e.ID,
		Slug:             e.Slug,
		Title:            e.Title,
		Location:         e.Location,
		ShortDescription: e.ShortDescription,
		Price:            e.Price,
		ImageIDs:         e.ImageIDs,
		Rating:           e.Rating,
		Reviews:          e.Reviews,
		Category:         e.Category,
	}
}

func ToExperienceResponse(e *models.Experience) ExperienceResponse {
	return ExperienceResponse{
		ExperienceSummaryResponse: ToExperienceSummaryResponse(e),
		Description:               e.Description,
	}
}

func ToDateAvailabilityResponse(d service.DateAvailability) DateAvailabilityResponse {
	return DateAvailabilityResponse{Date: d.Date, Slots: d.Slots}
}

func ToPriceResponse(b pricing.Breakdown) PriceResponse {
	return PriceResponse{
		UnitPrice:    b.UnitPrice,
		Quantity:     b.Quantity,
		TaxRate:      b.Rate.String(),
		TaxPercent:   b.Rate.Percent(),
		Subtotal:     b.Subtotal,
		Taxes:        b.TaxesText(),
		Total:        b.TotalText(),
		TaxesRounded: b.TaxesRounded(),
		TotalRounded: b.TotalRounded(),
	}
}

func ToSelectionResponse(r *service.SelectionResult) SelectionResponse {
	resp := SelectionResponse{
		ExperienceID: r.Selection.ExperienceID,
		Title:        r.Title,
		UnitPrice:    r.UnitPrice,
		State:        r.Selection.State,
		Dates:        r.Dates,
		Date:         r.Selection.Date,
		Slots:        r.Selection.Slots,
		Slot:         r.Selection.Slot,
		Quantity:     r.Selection.Quantity,
		MaxQuantity:  r.Selection.MaxQuantity,
		Warnings:     r.Warnings,
	}
	if resp.Dates == nil {
		resp.Dates = []models.Date{}
	}
	if resp.Slots == nil {
		resp.Slots = []availability.Slot{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	if r.Price != nil {
		p := ToPriceResponse(*r.Price)
		resp.Price = &p
	}
	return resp
}

func ToCheckoutSummaryResponse(s *service.CheckoutSummary) CheckoutSummaryResponse {
	return CheckoutSummaryResponse{
		Experience: ToExperienceSummaryResponse(&s.Experience),
		Date:       s.Date,
		Time:       s.Time,
		Quantity:   s.Quantity,
		Price:      ToPriceResponse(s.Price),
	}
}

func ToConfirmationResponse(c *models.Confirmation) ConfirmationResponse {
	return ConfirmationResponse{Message: "Booking confirmed", Confirmation: *c}
}
