package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/clock"
	"github.com/Hshshshsh454/Highway-delight/internal/idempotency"
	"github.com/Hshshshsh454/Highway-delight/internal/middleware"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/pricing"
	"github.com/Hshshshsh454/Highway-delight/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPI(t *testing.T) *echo.Echo {
	t.Helper()
	today := models.MustParseDate("2026-03-10")
	store, err := catalog.New(catalog.Fixtures(today))
	require.NoError(t, err)
	clk := clock.NewFixedDate(today)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator(service.NewValidator())

	api := e.Group("/api/v1")
	NewExperienceHandler(service.NewCatalogService(store, clk)).RegisterRoutes(api)
	NewBookingHandler(service.NewBookingService(store, clk, pricing.MustRate("0.055"),
		service.WithIdempotencyStore(idempotency.NewMemoryStore(time.Hour)),
	)).RegisterRoutes(api)
	return e
}

func serve(e *echo.Echo, method, target, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = jsonRequest(method, target, body)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func TestAPI_FullFlow(t *testing.T) {
	e := newAPI(t)

	t.Run("Step1_SearchExperiences", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/experiences?q=kayak", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]any
		decode(t, rec, &resp)
		require.Len(t, resp, 1)
		assert.Equal(t, "kayaking-in-udupi", resp[0]["slug"])
	})

	t.Run("Step2_Availability", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/experiences/coorg-coffee-plantation-walk/availability", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]any
		decode(t, rec, &resp)
		require.Len(t, resp, 2)
		assert.Equal(t, "2026-03-10", resp[0]["date"])
	})

	t.Run("Step3_SelectClampsQuantity", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/experiences/kayaking-in-udupi/selection", `{"date":"2026-03-10","time":"16:00","quantity":5}`)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		decode(t, rec, &resp)
		assert.Equal(t, "ready", resp["state"])
		assert.Equal(t, float64(2), resp["quantity"])
		price := resp["price"].(map[string]any)
		assert.Equal(t, float64(2400), price["subtotal"])
		assert.Equal(t, float64(132), price["taxes_rounded"])
		assert.Equal(t, float64(2532), price["total_rounded"])
	})

	t.Run("Step4_SoldOutSlotIsRejected", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/experiences/kayaking-in-udupi/bookings", `{"date":"2026-03-12","time":"17:00","quantity":1}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.JSONEq(t, `{"message":"time slot is sold out"}`, rec.Body.String())
	})

	t.Run("Step5_CheckoutSummary", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/checkout/summary?experience_id=1&date=2026-03-10&time=17:00&quantity=2", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp summaryBody
		decode(t, rec, &resp)
		assert.Equal(t, "2532.00", resp.Price.Total)
	})

	t.Run("Step6_CheckoutInvalidEmail", func(t *testing.T) {
		body := `{"experience_id":"1","date":"2026-03-10","time":"17:00","quantity":2,"full_name":"Asha Rao","email":"nope","agree_terms":true}`
		rec := serve(e, http.MethodPost, "/api/v1/checkout", body)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var resp map[string]string
		decode(t, rec, &resp)
		assert.Equal(t, "email", resp["field"])
	})

	var reference string
	body := `{"experience_id":"1","date":"2026-03-10","time":"17:00","quantity":2,"full_name":"Asha Rao","email":"asha@example.com","agree_terms":true}`

	t.Run("Step7_Checkout", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/checkout", body, HeaderIdempotencyKey, "flow-1")
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		decode(t, rec, &resp)
		assert.Equal(t, "checkout", resp["source"])
		assert.Equal(t, "2532.00", resp["total"])
		reference, _ = resp["reference_id"].(string)
		assert.NotEmpty(t, reference)
	})

	t.Run("Step8_CheckoutReplay", func(t *testing.T) {
		rec := serve(e, http.MethodPost, "/api/v1/checkout", body, HeaderIdempotencyKey, "flow-1")
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp map[string]any
		decode(t, rec, &resp)
		assert.Equal(t, reference, resp["reference_id"])
	})

	t.Run("Step9_UnknownExperience", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/experiences/nowhere", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

type summaryBody struct {
	Price struct {
		Total string `json:"total"`
	} `json:"price"`
}
