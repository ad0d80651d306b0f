package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/Hshshshsh454/Highway-delight/internal/availability"
	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/clock"
	"github.com/Hshshshsh454/Highway-delight/internal/idempotency"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/pricing"
	"github.com/Hshshshsh454/Highway-delight/internal/selection"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RoutingKeyBookingConfirmed is published for every confirmation.
const RoutingKeyBookingConfirmed = "booking.confirmed"

var (
	ErrSlotNoLongerAvailable = errors.New("time slot is no longer available")
	ErrInsufficientCapacity  = errors.New("not enough seats left in this time slot")
	ErrInvalidContact        = errors.New("invalid contact details")
	ErrCheckoutNotFound      = errors.New("checkout details not found")
	ErrIdempotencyConflict   = errors.New("idempotency key was used for a different booking")
)

// ValidationError names the request field that failed.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Publisher delivers confirmation signals; pkg/rabbitmq.Publisher satisfies it.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

// SelectionInput is what the booking view has picked so far.
type SelectionInput struct {
	Date     models.Date
	Time     string
	Quantity int
}

// SelectionResult is the widget read model: state, pickers, warnings, price.
type SelectionResult struct {
	Selection selection.Snapshot
	Dates     []models.Date
	Warnings  []string
	Price     *pricing.Breakdown
	Title     string
	UnitPrice int64
}

type CheckoutInput struct {
	ExperienceID   string
	Date           models.Date
	Time           string
	Quantity       int
	Contact        models.Contact
	IdempotencyKey string
}

type CheckoutSummary struct {
	Experience models.Experience
	Date       models.Date
	Time       string
	Quantity   int
	Price      pricing.Breakdown
}

type BookingService interface {
	// Open starts a selection for the experience's booking view.
	Open(ctx context.Context, slug string) (*selection.Selection, error)
	Select(ctx context.Context, slug string, in SelectionInput) (*SelectionResult, error)
	// Confirm is the terminal step. contact is nil for the inline widget.
	Confirm(ctx context.Context, sel *selection.Selection, contact *models.Contact) (*models.Confirmation, error)
	Book(ctx context.Context, slug string, in SelectionInput) (*models.Confirmation, error)
	CheckoutSummary(ctx context.Context, in CheckoutInput) (*CheckoutSummary, error)
	Checkout(ctx context.Context, in CheckoutInput) (*models.Confirmation, error)
	TaxRate() pricing.Rate
}

type bookingService struct {
	store     *catalog.Store
	clock     clock.Clock
	taxRate   pricing.Rate
	inventory Inventory
	publisher Publisher
	replays   idempotency.Store
	validate  *validator.Validate
	newRef    func() string
}

type Option func(*bookingService)

// WithInventory replaces the static, never-decrementing inventory.
func WithInventory(inv Inventory) Option {
	return func(s *bookingService) {
		if inv != nil {
			s.inventory = inv
		}
	}
}

// WithPublisher enables confirmation signals. A nil publisher skips them.
func WithPublisher(p Publisher) Option {
	return func(s *bookingService) {
		s.publisher = p
	}
}

func WithIdempotencyStore(st idempotency.Store) Option {
	return func(s *bookingService) {
		s.replays = st
	}
}

// WithReferenceGenerator overrides uuid reference ids.
func WithReferenceGenerator(fn func() string) Option {
	return func(s *bookingService) {
		if fn != nil {
			s.newRef = fn
		}
	}
}

func NewBookingService(store *catalog.Store, clk clock.Clock, taxRate pricing.Rate, opts ...Option) BookingService {
	s := &bookingService{
		store:     store,
		clock:     clk,
		taxRate:   taxRate,
		inventory: NewStaticInventory(store),
		validate:  NewValidator(),
		newRef:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewValidator reports struct fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func (s *bookingService) TaxRate() pricing.Rate {
	return s.taxRate
}

func (s *bookingService) Open(ctx context.Context, slug string) (*selection.Selection, error) {
	exp, err := s.store.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	return selection.New(availability.New(exp, s.clock.Today())), nil
}

// Select replays the view's interactions on a fresh selection: the first
// bookable date is preselected, then the requested date, slot and quantity
// are applied in order. Rejected steps become warnings and leave the
// selection as it was.
func (s *bookingService) Select(ctx context.Context, slug string, in SelectionInput) (*SelectionResult, error) {
	sel, err := s.Open(ctx, slug)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if err := sel.SelectFirstAvailable(); err != nil {
		warnings = append(warnings, err.Error())
	}
	if !in.Date.IsZero() {
		if err := sel.SelectDate(in.Date); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if in.Time != "" {
		if err := sel.SelectSlot(in.Time); err != nil {
			warnings = append(warnings, err.Error())
		}
	}
	if in.Quantity != 0 {
		sel.SetQuantity(in.Quantity)
	}

	exp := sel.Experience()
	res := &SelectionResult{
		Selection: sel.Snapshot(),
		Dates:     sel.Index().Dates(),
		Warnings:  warnings,
		Title:     exp.Title,
		UnitPrice: exp.Price,
	}
	if _, ok := sel.Slot(); ok {
		b := sel.Price(s.taxRate)
		res.Price = &b
	}
	return res, nil
}

func (s *bookingService) Confirm(ctx context.Context, sel *selection.Selection, contact *models.Contact) (*models.Confirmation, error) {
	c, err := s.prepare(ctx, sel, contact)
	if err != nil {
		return nil, err
	}
	if err := s.commit(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// prepare validates the selection against the inventory and builds the
// confirmation without reserving anything.
func (s *bookingService) prepare(ctx context.Context, sel *selection.Selection, contact *models.Contact) (*models.Confirmation, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	if contact != nil {
		if err := s.validateContact(contact); err != nil {
			return nil, err
		}
	}

	exp := sel.Experience()
	date, _ := sel.Date()
	slot, _ := sel.Slot()
	qty := sel.Quantity()

	// The selection may be stale; ask the inventory again.
	remaining, err := s.inventory.Remaining(ctx, exp.ID, date, slot.Time)
	if err != nil {
		return nil, fmt.Errorf("check inventory: %w", err)
	}
	if remaining <= 0 {
		return nil, ErrSlotNoLongerAvailable
	}
	if remaining < qty {
		return nil, ErrInsufficientCapacity
	}

	b := sel.Price(s.taxRate)
	c := &models.Confirmation{
		ReferenceID:     s.newRef(),
		Source:          models.SourceWidget,
		ExperienceID:    exp.ID,
		ExperienceSlug:  exp.Slug,
		ExperienceTitle: exp.Title,
		Date:            date,
		Time:            slot.Time,
		Quantity:        qty,
		UnitPrice:       exp.Price,
		Subtotal:        b.Subtotal,
		Taxes:           b.TaxesText(),
		Total:           b.TotalText(),
		TotalRounded:    b.TotalRounded(),
		ConfirmedAt:     s.clock.Now(),
	}
	if contact != nil {
		cc := *contact
		c.Contact = &cc
		c.Source = models.SourceCheckout
	}
	return c, nil
}

// commit reserves the seats and announces the confirmation.
func (s *bookingService) commit(ctx context.Context, c *models.Confirmation) error {
	if err := s.inventory.Reserve(ctx, c); err != nil {
		return fmt.Errorf("reserve seats: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(RoutingKeyBookingConfirmed, c); err != nil {
			log.Printf("[Booking] failed to publish confirmation %s: %v", c.ReferenceID, err)
		}
	}
	return nil
}

func (s *bookingService) Book(ctx context.Context, slug string, in SelectionInput) (*models.Confirmation, error) {
	sel, err := s.Open(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := apply(sel, in); err != nil {
		return nil, err
	}
	return s.Confirm(ctx, sel, nil)
}

func (s *bookingService) CheckoutSummary(ctx context.Context, in CheckoutInput) (*CheckoutSummary, error) {
	sel, err := s.checkoutSelection(ctx, in)
	if err != nil {
		return nil, err
	}
	if err := sel.Validate(); err != nil {
		return nil, err
	}
	slot, _ := sel.Slot()
	return &CheckoutSummary{
		Experience: sel.Experience(),
		Date:       in.Date,
		Time:       slot.Time,
		Quantity:   sel.Quantity(),
		Price:      sel.Price(s.taxRate),
	}, nil
}

// Checkout confirms with contact details. With an idempotency key the key
// is claimed before any seat is reserved, so concurrent submits sharing it
// commit at most once and all receive the winning confirmation.
func (s *bookingService) Checkout(ctx context.Context, in CheckoutInput) (*models.Confirmation, error) {
	sel, err := s.checkoutSelection(ctx, in)
	if err != nil {
		return nil, err
	}

	if in.IdempotencyKey == "" || s.replays == nil {
		c, err := s.Confirm(ctx, sel, &in.Contact)
		if err != nil {
			return nil, err
		}
		log.Printf("[Checkout] confirmed %s: %s on %s at %s x%d", c.ReferenceID, c.ExperienceSlug, c.Date, c.Time, c.Quantity)
		return c, nil
	}

	prev, err := s.replays.Get(ctx, in.IdempotencyKey)
	if err != nil {
		return nil, fmt.Errorf("idempotency lookup: %w", err)
	}
	if prev != nil {
		return sameBooking(prev, sel, &in.Contact)
	}

	c, err := s.prepare(ctx, sel, &in.Contact)
	if err != nil {
		return nil, err
	}

	stored, err := s.replays.SaveIfAbsent(ctx, in.IdempotencyKey, c)
	if err != nil {
		return nil, fmt.Errorf("idempotency claim: %w", err)
	}
	if stored.ReferenceID != c.ReferenceID {
		return sameBooking(stored, sel, &in.Contact)
	}

	if err := s.commit(ctx, c); err != nil {
		if derr := s.replays.Delete(ctx, in.IdempotencyKey); derr != nil {
			log.Printf("[Checkout] failed to release idempotency key: %v", derr)
		}
		return nil, err
	}

	log.Printf("[Checkout] confirmed %s: %s on %s at %s x%d", c.ReferenceID, c.ExperienceSlug, c.Date, c.Time, c.Quantity)
	return c, nil
}

func (s *bookingService) checkoutSelection(ctx context.Context, in CheckoutInput) (*selection.Selection, error) {
	if in.ExperienceID == "" || in.Date.IsZero() || in.Time == "" || in.Quantity == 0 {
		return nil, ErrCheckoutNotFound
	}
	exp, err := s.store.FindByID(in.ExperienceID)
	if err != nil {
		return nil, err
	}
	sel := selection.New(availability.New(exp, s.clock.Today()))
	if err := apply(sel, SelectionInput{Date: in.Date, Time: in.Time, Quantity: in.Quantity}); err != nil {
		return nil, err
	}
	return sel, nil
}

// apply runs the transitions strictly: the first rejection is returned.
func apply(sel *selection.Selection, in SelectionInput) error {
	if !in.Date.IsZero() {
		if err := sel.SelectDate(in.Date); err != nil {
			return err
		}
	}
	if in.Time != "" {
		if err := sel.SelectSlot(in.Time); err != nil {
			return err
		}
	}
	if in.Quantity != 0 {
		sel.SetQuantity(in.Quantity)
	}
	return nil
}

// sameBooking replays prev only for the same slot, quantity and customer.
func sameBooking(prev *models.Confirmation, sel *selection.Selection, contact *models.Contact) (*models.Confirmation, error) {
	date, _ := sel.Date()
	slot, _ := sel.Slot()
	if prev.ExperienceID != sel.Experience().ID || prev.Date != date ||
		prev.Time != slot.Time || prev.Quantity != sel.Quantity() {
		return nil, ErrIdempotencyConflict
	}
	if prev.Contact != nil && contact != nil &&
		!strings.EqualFold(strings.TrimSpace(prev.Contact.Email), strings.TrimSpace(contact.Email)) {
		return nil, ErrIdempotencyConflict
	}
	return prev, nil
}

func (s *bookingService) validateContact(c *models.Contact) error {
	err := s.validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &ValidationError{Field: verrs[0].Field(), Err: ErrInvalidContact}
	}
	return fmt.Errorf("%w: %v", ErrInvalidContact, err)
}
