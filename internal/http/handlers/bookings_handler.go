package handlers

import (
	"net/http"
	"strings"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/services"

	"github.com/gin-gonic/gin"
)

// ListBookings serves the filtered listing: conjunctive equality filters on
// status, vehicle_type and customer_id, then truncation to limit (1-1000,
// default 100).
func ListBookings(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	limit, ok := queryLimit(c, analytics.BookingsLimitDefault)
	if !ok {
		return
	}

	svc := services.BookingsService{Store: activeStore()}
	page, err := svc.List(analytics.BookingFilter{
		Status:      strings.TrimSpace(c.Query("status")),
		VehicleType: strings.TrimSpace(c.Query("vehicle_type")),
		CustomerID:  strings.TrimSpace(c.Query("customer_id")),
		Limit:       limit,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBookingByID serves the single-record lookup; quoted and unquoted ids
// resolve identically.
func GetBookingByID(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	svc := services.BookingsService{Store: activeStore()}
	rec, err := svc.GetByID(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}
