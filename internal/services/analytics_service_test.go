package services

import (
	"errors"
	"testing"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/domain"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
)

// fakeStore records the last delegated call so tests can verify what reached
// the backend after validation.
type fakeStore struct {
	peakLimit    int
	topLimit     int
	listFilter   analytics.BookingFilter
	lookupID     string
	lookupResult models.Booking
	failWith     error
}

func (f *fakeStore) TotalBookings() (int64, error) { return 0, nil }

func (f *fakeStore) StatusBreakdown() ([]models.StatusBreakdown, error) {
	return []models.StatusBreakdown{}, nil
}

func (f *fakeStore) BookingsPerHour() ([]models.HourlyBookings, error) {
	return []models.HourlyBookings{}, nil
}

func (f *fakeStore) BookingsPerWeekday() ([]models.WeekdayBookings, error) {
	return []models.WeekdayBookings{}, nil
}

func (f *fakeStore) BookingsPerMonth() ([]models.MonthlyBookings, error) {
	return []models.MonthlyBookings{}, nil
}

func (f *fakeStore) PeakHours(limit int) ([]models.HourlyBookings, error) {
	f.peakLimit = limit
	return []models.HourlyBookings{}, f.failWith
}

func (f *fakeStore) VehicleTypeStats() ([]models.VehicleTypeStats, error) {
	return []models.VehicleTypeStats{}, nil
}

func (f *fakeStore) PaymentMethodStats() ([]models.PaymentMethodStats, error) {
	return []models.PaymentMethodStats{}, nil
}

func (f *fakeStore) TopCustomers(limit int) ([]models.TopCustomer, error) {
	f.topLimit = limit
	return []models.TopCustomer{}, f.failWith
}

func (f *fakeStore) TopCustomerPaymentMethods() ([]models.CustomerPaymentMethod, error) {
	return []models.CustomerPaymentMethod{}, nil
}

func (f *fakeStore) ListBookings(filter analytics.BookingFilter) (models.BookingPage, error) {
	f.listFilter = filter
	return models.BookingPage{Bookings: []models.Booking{}}, f.failWith
}

func (f *fakeStore) GetBookingByID(id string) (models.Booking, error) {
	f.lookupID = id
	return f.lookupResult, f.failWith
}

func TestPeakHoursLimitBounds(t *testing.T) {
	store := &fakeStore{}
	svc := AnalyticsService{Store: store}

	for _, limit := range []int{0, -1, 25} {
		if _, err := svc.PeakHours(limit); !domain.IsValidation(err) {
			t.Fatalf("limit %d: expected validation error, got %v", limit, err)
		}
	}
	if store.peakLimit != 0 {
		t.Fatalf("store reached despite invalid limit: %d", store.peakLimit)
	}

	if _, err := svc.PeakHours(24); err != nil {
		t.Fatalf("limit 24 should pass: %v", err)
	}
	if store.peakLimit != 24 {
		t.Fatalf("limit not delegated, got %d", store.peakLimit)
	}
}

func TestTopCustomersLimitBounds(t *testing.T) {
	store := &fakeStore{}
	svc := AnalyticsService{Store: store}

	if _, err := svc.TopCustomers(101); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for limit 101, got %v", err)
	}
	if _, err := svc.TopCustomers(100); err != nil {
		t.Fatalf("limit 100 should pass: %v", err)
	}
	if store.topLimit != 100 {
		t.Fatalf("limit not delegated, got %d", store.topLimit)
	}
}

func TestListBookingsLimitBounds(t *testing.T) {
	store := &fakeStore{}
	svc := BookingsService{Store: store}

	if _, err := svc.List(analytics.BookingFilter{Limit: 1001}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for limit 1001, got %v", err)
	}
	if _, err := svc.List(analytics.BookingFilter{Limit: 0}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for limit 0, got %v", err)
	}

	if _, err := svc.List(analytics.BookingFilter{Status: "Completed", Limit: 10}); err != nil {
		t.Fatalf("valid filter rejected: %v", err)
	}
	if store.listFilter.Status != "Completed" || store.listFilter.Limit != 10 {
		t.Fatalf("filter not delegated: %+v", store.listFilter)
	}
}

func TestStoreFailuresTaggedInternal(t *testing.T) {
	store := &fakeStore{failWith: errors.New("koneksi terputus")}

	if _, err := (AnalyticsService{Store: store}).PeakHours(5); !domain.IsInternal(err) {
		t.Fatalf("expected internal error from peak hours, got %v", err)
	}
	if _, err := (AnalyticsService{Store: store}).TopCustomers(10); !domain.IsInternal(err) {
		t.Fatalf("expected internal error from top customers, got %v", err)
	}
	if _, err := (BookingsService{Store: store}).List(analytics.BookingFilter{Limit: 10}); !domain.IsInternal(err) {
		t.Fatalf("expected internal error from list, got %v", err)
	}
	if _, err := (BookingsService{Store: store}).GetByID("B001"); !domain.IsInternal(err) {
		t.Fatalf("expected internal error from lookup, got %v", err)
	}

	// typed domain errors pass through untouched
	store.failWith = domain.NotFoundError{Resource: "booking"}
	if _, err := (BookingsService{Store: store}).GetByID("B001"); !domain.IsNotFound(err) || domain.IsInternal(err) {
		t.Fatalf("not-found should pass through unwrapped, got %v", err)
	}
}

func TestGetByIDNormalizesQuotes(t *testing.T) {
	store := &fakeStore{lookupResult: models.Booking{BookingID: "B001"}}
	svc := BookingsService{Store: store}

	if _, err := svc.GetByID(`"B001"`); err != nil {
		t.Fatalf("quoted lookup failed: %v", err)
	}
	if store.lookupID != "B001" {
		t.Fatalf("quotes not stripped before delegation: %q", store.lookupID)
	}

	if _, err := svc.GetByID(`""`); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty id, got %v", err)
	}
}
