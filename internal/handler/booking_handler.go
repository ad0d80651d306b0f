package handler

import (
	"errors"
	"net/http"

	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/dto"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/selection"
	"github.com/Hshshshsh454/Highway-delight/internal/service"
	"github.com/labstack/echo/v4"
)

const HeaderIdempotencyKey = "Idempotency-Key"

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/experiences/:slug/selection", h.Select)
	g.POST("/experiences/:slug/bookings", h.Book)
	g.GET("/checkout/summary", h.CheckoutSummary)
	g.POST("/checkout", h.Checkout)
}

func (h *BookingHandler) Select(c echo.Context) error {
	in, err := bindSelection(c)
	if err != nil {
		return err
	}

	res, err := h.svc.Select(c.Request().Context(), c.Param("slug"), in)
	if err != nil {
		return bookingError(err)
	}

	return c.JSON(http.StatusOK, dto.ToSelectionResponse(res))
}

func (h *BookingHandler) Book(c echo.Context) error {
	in, err := bindSelection(c)
	if err != nil {
		return err
	}

	conf, err := h.svc.Book(c.Request().Context(), c.Param("slug"), in)
	if err != nil {
		return bookingError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToConfirmationResponse(conf))
}

func (h *BookingHandler) CheckoutSummary(c echo.Context) error {
	var q dto.CheckoutQuery
	if err := c.Bind(&q); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query")
	}
	if err := c.Validate(&q); err != nil {
		return err
	}
	date, err := parseOptionalDate(q.Date)
	if err != nil {
		return err
	}

	sum, err := h.svc.CheckoutSummary(c.Request().Context(), service.CheckoutInput{
		ExperienceID: q.ExperienceID,
		Date:         date,
		Time:         q.Time,
		Quantity:     q.Quantity,
	})
	if err != nil {
		return bookingError(err)
	}

	return c.JSON(http.StatusOK, dto.ToCheckoutSummaryResponse(sum))
}

func (h *BookingHandler) Checkout(c echo.Context) error {
	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return err
	}

	conf, err := h.svc.Checkout(c.Request().Context(), service.CheckoutInput{
		ExperienceID: req.ExperienceID,
		Date:         date,
		Time:         req.Time,
		Quantity:     req.Quantity,
		Contact: models.Contact{
			FullName:   req.FullName,
			Email:      req.Email,
			PromoCode:  req.PromoCode,
			AgreeTerms: req.AgreeTerms,
		},
		IdempotencyKey: c.Request().Header.Get(HeaderIdempotencyKey),
	})
	if err != nil {
		return bookingError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToConfirmationResponse(conf))
}

func bindSelection(c echo.Context) (service.SelectionInput, error) {
	var req dto.SelectionRequest
	if err := c.Bind(&req); err != nil {
		return service.SelectionInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return service.SelectionInput{}, err
	}
	date, err := parseOptionalDate(req.Date)
	if err != nil {
		return service.SelectionInput{}, err
	}
	return service.SelectionInput{Date: date, Time: req.Time, Quantity: req.Quantity}, nil
}

func parseOptionalDate(s string) (models.Date, error) {
	if s == "" {
		return models.Date{}, nil
	}
	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}
	return d, nil
}

func bookingError(err error) error {
	var verr *service.ValidationError
	var incomplete *selection.IncompleteError

	switch {
	case errors.Is(err, catalog.ErrExperienceNotFound),
		errors.Is(err, service.ErrCheckoutNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: err.Error(), Field: verr.Field})
	case errors.As(err, &incomplete):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, dto.ErrorResponse{Message: incomplete.Error(), Field: incomplete.Field})
	case errors.Is(err, selection.ErrDateInPast),
		errors.Is(err, selection.ErrDateUnavailable),
		errors.Is(err, selection.ErrNoDateSelected),
		errors.Is(err, selection.ErrSlotUnknown),
		errors.Is(err, selection.ErrSlotSoldOut),
		errors.Is(err, selection.ErrNoAvailability):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrSlotNoLongerAvailable),
		errors.Is(err, service.ErrInsufficientCapacity),
		errors.Is(err, service.ErrIdempotencyConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
