package services

import (
	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/domain"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
	"github.com/BandBurro/data-analytics-uber/internal/utils"
)

// BookingsService serves the raw-record listing and single-record lookup.
type BookingsService struct {
	Store analytics.Store
}

func (s BookingsService) List(f analytics.BookingFilter) (models.BookingPage, error) {
	if err := analytics.ValidateLimit("limit", f.Limit, analytics.BookingsLimitMax); err != nil {
		return models.BookingPage{}, err
	}
	page, err := s.Store.ListBookings(f)
	return page, asDomainErr(err)
}

// GetByID resolves a booking after quote-stripping, so `"CNR1"` and `CNR1`
// name the same record.
func (s BookingsService) GetByID(id string) (models.Booking, error) {
	clean := utils.StripQuotes(id)
	if clean == "" {
		return models.Booking{}, domain.ValidationError{Field: "id", Msg: "must not be empty"}
	}
	rec, err := s.Store.GetBookingByID(clean)
	return rec, asDomainErr(err)
}
