package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	bc := NewBookingController(nil) // QuoteBooking never touches the DB
	r.POST("/api/bookings/quote", bc.QuoteBooking)
	return r
}

func postQuote(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteBookingComputesBreakdown(t *testing.T) {
	r := quoteRouter()

	w := postQuote(t, r, `{
		"checkInDate": "2026-03-10",
		"checkOutDate": "2026-03-13",
		"rooms": [
			{"roomNumber": "101", "price": 2000},
			{"roomNumber": "201", "price": 3000}
		],
		"extraBedCharge": 500,
		"cgstRate": 2.5,
		"sgstRate": 2.5
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Breakdown struct {
			Nights        int     `json:"nights"`
			RoomCost      float64 `json:"roomCost"`
			TaxableAmount float64 `json:"taxableAmount"`
			CGSTAmount    float64 `json:"cgstAmount"`
			SGSTAmount    float64 `json:"sgstAmount"`
			GrandTotal    float64 `json:"grandTotal"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.Breakdown.Nights)
	assert.Equal(t, 15000.0, resp.Breakdown.RoomCost)
	assert.Equal(t, 375.0, resp.Breakdown.CGSTAmount)
	assert.Equal(t, 375.0, resp.Breakdown.SGSTAmount)
	assert.Equal(t, 15750.0, resp.Breakdown.GrandTotal)
}

func TestQuoteBookingCustomPriceAndExtraBed(t *testing.T) {
	r := quoteRouter()

	w := postQuote(t, r, `{
		"checkInDate": "2026-03-10",
		"checkOutDate": "2026-03-13",
		"rooms": [
			{"roomNumber": "101", "price": 2000, "customPrice": 1500, "extraBed": true, "extraBedStartDate": "2026-03-12"},
			{"roomNumber": "201", "price": 3000}
		],
		"extraBedCharge": 500,
		"cgstRate": 2.5,
		"sgstRate": 2.5
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Breakdown struct {
			RoomCost      float64 `json:"roomCost"`
			ExtraBedCost  float64 `json:"extraBedCost"`
			TaxableAmount float64 `json:"taxableAmount"`
		} `json:"breakdown"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, 13500.0, resp.Breakdown.RoomCost)
	assert.Equal(t, 500.0, resp.Breakdown.ExtraBedCost)
	assert.Equal(t, 14000.0, resp.Breakdown.TaxableAmount)
}

func TestQuoteBookingRejectsBadDates(t *testing.T) {
	r := quoteRouter()

	w := postQuote(t, r, `{
		"checkInDate": "10-03-2026",
		"checkOutDate": "2026-03-13",
		"rooms": []
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
