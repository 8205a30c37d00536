package services

import (
	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/domain"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
)

// asDomainErr passes typed domain errors through untouched and tags every
// other store failure as internal.
func asDomainErr(err error) error {
	if err == nil || domain.IsValidation(err) || domain.IsNotFound(err) {
		return err
	}
	return domain.InternalError{Err: err}
}

// AnalyticsService fronts the parameterized aggregates: bounds are checked
// here so an out-of-range limit never reaches the store.
type AnalyticsService struct {
	Store analytics.Store
}

func (s AnalyticsService) PeakHours(limit int) ([]models.HourlyBookings, error) {
	if err := analytics.ValidateLimit("limit", limit, analytics.PeakHoursLimitMax); err != nil {
		return nil, err
	}
	out, err := s.Store.PeakHours(limit)
	return out, asDomainErr(err)
}

func (s AnalyticsService) TopCustomers(limit int) ([]models.TopCustomer, error) {
	if err := analytics.ValidateLimit("limit", limit, analytics.TopCustomersLimitMax); err != nil {
		return nil, err
	}
	out, err := s.Store.TopCustomers(limit)
	return out, asDomainErr(err)
}
