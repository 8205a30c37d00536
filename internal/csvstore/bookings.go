package csvstore

import (
	"sort"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/domain"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
	"github.com/BandBurro/data-analytics-uber/internal/utils"
)

// sortKey orders nil dates and times first, like SQL NULLs under ORDER BY ASC
// in MySQL.
func sortKey(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// ListBookings applies the conjunctive equality filters, counts all matches,
// then returns up to f.Limit rows ordered by date, time, booking_id.
func (s *Snapshot) ListBookings(f analytics.BookingFilter) (models.BookingPage, error) {
	customerID := utils.StripQuotes(f.CustomerID)

	matched := []models.Booking{}
	for _, rec := range s.records {
		b := rec.booking
		if f.Status != "" && b.BookingStatus != f.Status {
			continue
		}
		if f.VehicleType != "" && b.VehicleType != f.VehicleType {
			continue
		}
		if customerID != "" && b.CustomerID != customerID {
			continue
		}
		matched = append(matched, b)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if di, dj := sortKey(matched[i].Date), sortKey(matched[j].Date); di != dj {
			return di < dj
		}
		if ti, tj := sortKey(matched[i].Time), sortKey(matched[j].Time); ti != tj {
			return ti < tj
		}
		return matched[i].BookingID < matched[j].BookingID
	})

	page := models.BookingPage{TotalFound: int64(len(matched))}
	if len(matched) > f.Limit {
		matched = matched[:f.Limit]
	}
	page.Bookings = matched
	page.Returned = len(matched)
	return page, nil
}

// GetBookingByID matches after quote-stripping, so quoted and unquoted
// identifiers resolve to the same record. Uniqueness is not enforced by the
// file backend; on a duplicate the first row in file order wins.
func (s *Snapshot) GetBookingByID(id string) (models.Booking, error) {
	want := utils.StripQuotes(id)
	for _, rec := range s.records {
		if rec.booking.BookingID == want {
			return rec.booking, nil
		}
	}
	return models.Booking{}, domain.NotFoundError{Resource: "booking"}
}
