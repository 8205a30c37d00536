package handlers

import (
	"net/http"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/services"

	"github.com/gin-gonic/gin"
)

// BookingStatusBreakdown returns distinct-booking counts per status,
// descending by count.
func BookingStatusBreakdown(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().StatusBreakdown()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// BookingsPerHour returns distinct bookings per hour-of-day, ascending.
func BookingsPerHour(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().BookingsPerHour()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// BookingsPerWeekday returns distinct bookings per day-of-week, 0=Sunday.
func BookingsPerWeekday(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().BookingsPerWeekday()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// BookingsPerMonth returns distinct bookings per YYYY-MM, ascending.
func BookingsPerMonth(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().BookingsPerMonth()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PeakHours returns the busiest hours, limit bounded 1-24 (default 5).
func PeakHours(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	limit, ok := queryLimit(c, analytics.PeakHoursLimitDefault)
	if !ok {
		return
	}
	svc := services.AnalyticsService{Store: activeStore()}
	rows, err := svc.PeakHours(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// VehicleTypeStats returns bookings and unique customers per vehicle type.
func VehicleTypeStats(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().VehicleTypeStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// PaymentMethodStats returns bookings per recorded payment method.
func PaymentMethodStats(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().PaymentMethodStats()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TopCustomers returns the highest-volume customers, limit bounded 1-100
// (default 10).
func TopCustomers(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	limit, ok := queryLimit(c, analytics.TopCustomersLimitDefault)
	if !ok {
		return
	}
	svc := services.AnalyticsService{Store: activeStore()}
	rows, err := svc.TopCustomers(limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// TopCustomerPaymentMethods breaks the single top customer's bookings down by
// payment method.
func TopCustomerPaymentMethods(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	rows, err := activeStore().TopCustomerPaymentMethods()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}
