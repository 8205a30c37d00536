package csvstore

import (
	"sort"
	"strconv"
	"time"

	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
)

// distinctSet collects quote-stripped booking ids per group key, so duplicate
// or re-emitted rows for the same logical booking count once.
type distinctSet map[string]map[string]struct{}

func (d distinctSet) add(key, bookingID string) {
	set, ok := d[key]
	if !ok {
		set = map[string]struct{}{}
		d[key] = set
	}
	set[bookingID] = struct{}{}
}

func (d distinctSet) count(key string) int64 {
	return int64(len(d[key]))
}

// StatusBreakdown groups every row by booking_status, descending by distinct
// booking count. Ties order by status name so output stays reproducible.
func (s *Snapshot) StatusBreakdown() ([]models.StatusBreakdown, error) {
	groups := distinctSet{}
	for _, rec := range s.records {
		groups.add(rec.booking.BookingStatus, rec.booking.BookingID)
	}

	out := []models.StatusBreakdown{}
	for status := range groups {
		out = append(out, models.StatusBreakdown{
			BookingStatus: status,
			Bookings:      groups.count(status),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bookings != out[j].Bookings {
			return out[i].Bookings > out[j].Bookings
		}
		return out[i].BookingStatus < out[j].BookingStatus
	})
	return out, nil
}

func (s *Snapshot) hourlyCounts() distinctSet {
	groups := distinctSet{}
	for _, rec := range s.records {
		if !rec.hasTime {
			continue
		}
		groups.add(strconv.Itoa(rec.hour), rec.booking.BookingID)
	}
	return groups
}

// BookingsPerHour reports distinct bookings per hour-of-day, ascending by hour.
// Rows without a parseable time are excluded.
func (s *Snapshot) BookingsPerHour() ([]models.HourlyBookings, error) {
	groups := s.hourlyCounts()

	out := []models.HourlyBookings{}
	for h := 0; h < 24; h++ {
		if n := groups.count(strconv.Itoa(h)); n > 0 {
			out = append(out, models.HourlyBookings{Hour: h, UniqueBookings: n})
		}
	}
	return out, nil
}

// PeakHours reports the busiest hours, descending by distinct booking count,
// truncated to limit. Tied hours order ascending.
func (s *Snapshot) PeakHours(limit int) ([]models.HourlyBookings, error) {
	rows, err := s.BookingsPerHour()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].UniqueBookings > rows[j].UniqueBookings
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// BookingsPerWeekday reports distinct bookings per day-of-week, 0=Sunday,
// ascending. Rows without a parseable date are excluded.
func (s *Snapshot) BookingsPerWeekday() ([]models.WeekdayBookings, error) {
	counts := [7]map[string]struct{}{}
	for _, rec := range s.records {
		if !rec.hasDate {
			continue
		}
		if counts[rec.weekday] == nil {
			counts[rec.weekday] = map[string]struct{}{}
		}
		counts[rec.weekday][rec.booking.BookingID] = struct{}{}
	}

	out := []models.WeekdayBookings{}
	for wd := 0; wd < 7; wd++ {
		if len(counts[wd]) == 0 {
			continue
		}
		out = append(out, models.WeekdayBookings{
			WeekdayNum:     wd,
			WeekdayName:    time.Weekday(wd).String(),
			UniqueBookings: int64(len(counts[wd])),
		})
	}
	return out, nil
}

// BookingsPerMonth reports distinct bookings per YYYY-MM, ascending by month.
func (s *Snapshot) BookingsPerMonth() ([]models.MonthlyBookings, error) {
	groups := distinctSet{}
	for _, rec := range s.records {
		if !rec.hasDate {
			continue
		}
		groups.add(rec.month, rec.booking.BookingID)
	}

	out := []models.MonthlyBookings{}
	for month := range groups {
		out = append(out, models.MonthlyBookings{Month: month, Bookings: groups.count(month)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out, nil
}

// VehicleTypeStats reports distinct bookings and distinct customers per
// vehicle type, descending by booking count.
func (s *Snapshot) VehicleTypeStats() ([]models.VehicleTypeStats, error) {
	bookings := distinctSet{}
	customers := distinctSet{}
	for _, rec := range s.records {
		bookings.add(rec.booking.VehicleType, rec.booking.BookingID)
		customers.add(rec.booking.VehicleType, rec.booking.CustomerID)
	}

	out := []models.VehicleTypeStats{}
	for vt := range bookings {
		out = append(out, models.VehicleTypeStats{
			VehicleType:     vt,
			TotalBookings:   bookings.count(vt),
			UniqueCustomers: customers.count(vt),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].VehicleType < out[j].VehicleType
	})
	return out, nil
}

// PaymentMethodStats reports distinct bookings per payment method, descending.
// Empty methods mean "no payment recorded" and never form a category.
func (s *Snapshot) PaymentMethodStats() ([]models.PaymentMethodStats, error) {
	groups := distinctSet{}
	for _, rec := range s.records {
		if rec.booking.PaymentMethod == nil {
			continue
		}
		groups.add(*rec.booking.PaymentMethod, rec.booking.BookingID)
	}

	out := []models.PaymentMethodStats{}
	for method := range groups {
		out = append(out, models.PaymentMethodStats{
			PaymentMethod: method,
			TotalBookings: groups.count(method),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].PaymentMethod < out[j].PaymentMethod
	})
	return out, nil
}

// TopCustomers reports customers by distinct booking count, descending,
// truncated to limit. Tied counts order by customer id here; the relational
// backend leaves tie order to the engine, so callers must not rely on a
// specific winner among ties.
func (s *Snapshot) TopCustomers(limit int) ([]models.TopCustomer, error) {
	groups := distinctSet{}
	for _, rec := range s.records {
		groups.add(rec.booking.CustomerID, rec.booking.BookingID)
	}

	out := []models.TopCustomer{}
	for cust := range groups {
		out = append(out, models.TopCustomer{CustomerID: cust, TotalBookings: groups.count(cust)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalBookings != out[j].TotalBookings {
			return out[i].TotalBookings > out[j].TotalBookings
		}
		return out[i].CustomerID < out[j].CustomerID
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TopCustomerPaymentMethods breaks down the single highest-volume customer's
// bookings by payment method, descending, excluding unrecorded payments.
func (s *Snapshot) TopCustomerPaymentMethods() ([]models.CustomerPaymentMethod, error) {
	top, err := s.TopCustomers(1)
	if err != nil {
		return nil, err
	}
	out := []models.CustomerPaymentMethod{}
	if len(top) == 0 {
		return out, nil
	}
	topID := top[0].CustomerID

	groups := distinctSet{}
	for _, rec := range s.records {
		if rec.booking.CustomerID != topID || rec.booking.PaymentMethod == nil {
			continue
		}
		groups.add(*rec.booking.PaymentMethod, rec.booking.BookingID)
	}

	for method := range groups {
		out = append(out, models.CustomerPaymentMethod{
			CustomerID:        topID,
			PaymentMethod:     method,
			BookingsForMethod: groups.count(method),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].BookingsForMethod != out[j].BookingsForMethod {
			return out[i].BookingsForMethod > out[j].BookingsForMethod
		}
		return out[i].PaymentMethod < out[j].PaymentMethod
	})
	return out, nil
}
