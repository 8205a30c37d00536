package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/domain"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
	"github.com/BandBurro/data-analytics-uber/internal/utils"
)

// ListBookings builds the WHERE clause from the provided equality filters,
// counts all matches, then fetches up to f.Limit rows ordered by
// date, time, booking_id.
func (r AnalyticsRepository) ListBookings(f analytics.BookingFilter) (models.BookingPage, error) {
	db := r.db()

	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(f.Status); s != "" {
		where = append(where, "booking_status=?")
		args = append(args, s)
	}
	if vt := strings.TrimSpace(f.VehicleType); vt != "" {
		where = append(where, "vehicle_type=?")
		args = append(args, vt)
	}
	if cid := utils.StripQuotes(f.CustomerID); cid != "" {
		where = append(where, "customer_id=?")
		args = append(args, cid)
	}
	whereSQL := strings.Join(where, " AND ")

	var page models.BookingPage
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM uber_bookings WHERE %s`, whereSQL)
	if err := db.QueryRow(countQuery, args...).Scan(&page.TotalFound); err != nil {
		return page, err
	}

	query := fmt.Sprintf(`
		SELECT date, time, booking_id, booking_status, customer_id, vehicle_type, payment_method
		FROM uber_bookings
		WHERE %s
		ORDER BY date, time, booking_id
		LIMIT ?
	`, whereSQL)
	rows, err := db.Query(query, append(args, f.Limit)...)
	if err != nil {
		return page, err
	}
	defer rows.Close()

	page.Bookings = []models.Booking{}
	for rows.Next() {
		rec, err := scanBooking(rows)
		if err != nil {
			return page, err
		}
		page.Bookings = append(page.Bookings, rec)
	}
	page.Returned = len(page.Bookings)
	return page, rows.Err()
}

// GetBookingByID matches after quote-stripping; the table stores bare ids.
func (r AnalyticsRepository) GetBookingByID(id string) (models.Booking, error) {
	row := r.db().QueryRow(`
		SELECT date, time, booking_id, booking_status, customer_id, vehicle_type, payment_method
		FROM uber_bookings
		WHERE booking_id=?
		LIMIT 1
	`, utils.StripQuotes(id))

	rec, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return rec, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanBooking maps one table row into the canonical record. DATE arrives as
// time.Time (DSN has parseTime), TIME as a plain string; NULL columns stay nil
// so responses carry explicit nulls.
func scanBooking(row rowScanner) (models.Booking, error) {
	var (
		rec     models.Booking
		date    sql.NullTime
		clock   sql.NullString
		payment sql.NullString
	)
	err := row.Scan(&date, &clock, &rec.BookingID, &rec.BookingStatus, &rec.CustomerID, &rec.VehicleType, &payment)
	if err != nil {
		return rec, err
	}
	if date.Valid {
		d := utils.FormatDate(date.Time)
		rec.Date = &d
	}
	if clock.Valid {
		t := clock.String
		rec.Time = &t
	}
	if payment.Valid && strings.TrimSpace(payment.String) != "" {
		pm := payment.String
		rec.PaymentMethod = &pm
	}
	return rec, nil
}
