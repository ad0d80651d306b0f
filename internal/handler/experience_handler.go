package handler

import (
	"errors"
	"net/http"

	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/dto"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/service"
	"github.com/labstack/echo/v4"
)

type ExperienceHandler struct {
	svc service.CatalogService
}

func NewExperienceHandler(svc service.CatalogService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/experiences", h.ListExperiences)
	g.GET("/locations", h.ListLocations)
	g.GET("/experiences/:slug", h.GetExperience)
	g.GET("/experiences/:slug/availability", h.GetAvailability)
	g.GET("/experiences/:slug/availability/:date", h.GetSlots)
}

func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	exps, err := h.svc.ListExperiences(c.Request().Context(), c.QueryParam("q"), c.QueryParam("location"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ExperienceSummaryResponse, len(exps))
	for i, e := range exps {
		resp[i] = dto.ToExperienceSummaryResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) ListLocations(c echo.Context) error {
	locs, err := h.svc.Locations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, append([]string{catalog.AllLocations}, locs...))
}

func (h *ExperienceHandler) GetExperience(c echo.Context) error {
	exp, err := h.svc.GetExperience(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return catalogError(err)
	}
	return c.JSON(http.StatusOK, dto.ToExperienceResponse(exp))
}

func (h *ExperienceHandler) GetAvailability(c echo.Context) error {
	days, err := h.svc.Availability(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return catalogError(err)
	}

	resp := make([]dto.DateAvailabilityResponse, len(days))
	for i, d := range days {
		resp[i] = dto.ToDateAvailabilityResponse(d)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) GetSlots(c echo.Context) error {
	date, err := models.ParseDate(c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	slots, err := h.svc.SlotsFor(c.Request().Context(), c.Param("slug"), date)
	if err != nil {
		return catalogError(err)
	}

	return c.JSON(http.StatusOK, dto.DateAvailabilityResponse{Date: date, Slots: slots})
}

func catalogError(err error) error {
	if errors.Is(err, catalog.ErrExperienceNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}
