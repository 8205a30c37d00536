package analytics

import (
	"fmt"

	"github.com/BandBurro/data-analytics-uber/internal/domain"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
)

// Limit bounds per endpoint. Out-of-range values are rejected up front,
// never clamped.
const (
	PeakHoursLimitDefault = 5
	PeakHoursLimitMax     = 24

	TopCustomersLimitDefault = 10
	TopCustomersLimitMax     = 100

	BookingsLimitDefault = 100
	BookingsLimitMax     = 1000
)

// BookingFilter holds the conjunctive equality filters for listings.
// Empty fields mean "no filter". CustomerID is expected quote-stripped.
type BookingFilter struct {
	Status      string
	VehicleType string
	CustomerID  string
	Limit       int
}

// Store is the aggregation contract both backends implement. Every
// "bookings" count is a distinct count over quote-stripped booking ids,
// never a raw row count.
type Store interface {
	TotalBookings() (int64, error)

	StatusBreakdown() ([]models.StatusBreakdown, error)
	BookingsPerHour() ([]models.HourlyBookings, error)
	BookingsPerWeekday() ([]models.WeekdayBookings, error)
	BookingsPerMonth() ([]models.MonthlyBookings, error)
	PeakHours(limit int) ([]models.HourlyBookings, error)
	VehicleTypeStats() ([]models.VehicleTypeStats, error)
	PaymentMethodStats() ([]models.PaymentMethodStats, error)
	TopCustomers(limit int) ([]models.TopCustomer, error)
	TopCustomerPaymentMethods() ([]models.CustomerPaymentMethod, error)

	ListBookings(f BookingFilter) (models.BookingPage, error)
	GetBookingByID(id string) (models.Booking, error)
}

// ValidateLimit checks a caller-supplied limit against [1, max].
func ValidateLimit(field string, limit, max int) error {
	if limit < 1 || limit > max {
		return domain.ValidationError{
			Field: field,
			Msg:   fmt.Sprintf("must be between 1 and %d, got %d", max, limit),
		}
	}
	return nil
}
