package repositories

import (
	"database/sql"

	intconfig "github.com/BandBurro/data-analytics-uber/internal/config"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
)

// AnalyticsRepository answers every aggregate with one parameterized statement
// against the uber_bookings table. Limits are always bound parameters, never
// spliced into query text.
type AnalyticsRepository struct {
	DB *sql.DB
}

func (r AnalyticsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AnalyticsRepository) TotalBookings() (int64, error) {
	var count int64
	err := r.db().QueryRow(`SELECT COUNT(*) FROM uber_bookings`).Scan(&count)
	return count, err
}

func (r AnalyticsRepository) StatusBreakdown() ([]models.StatusBreakdown, error) {
	rows, err := r.db().Query(`
		SELECT booking_status,
		       COUNT(DISTINCT booking_id) AS bookings
		FROM uber_bookings
		GROUP BY booking_status
		ORDER BY bookings DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.StatusBreakdown{}
	for rows.Next() {
		var rec models.StatusBreakdown
		if err := rows.Scan(&rec.BookingStatus, &rec.Bookings); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r AnalyticsRepository) BookingsPerHour() ([]models.HourlyBookings, error) {
	return r.queryHourly(`
		SELECT HOUR(time) AS hour,
		       COUNT(DISTINCT booking_id) AS unique_bookings
		FROM uber_bookings
		WHERE time IS NOT NULL
		GROUP BY hour
		ORDER BY hour
	`)
}

// PeakHours is the hourly aggregate reordered by volume; limit arrives
// pre-validated and is passed as a bound parameter.
func (r AnalyticsRepository) PeakHours(limit int) ([]models.HourlyBookings, error) {
	return r.queryHourly(`
		SELECT HOUR(time) AS hour,
		       COUNT(DISTINCT booking_id) AS unique_bookings
		FROM uber_bookings
		WHERE time IS NOT NULL
		GROUP BY hour
		ORDER BY unique_bookings DESC
		LIMIT ?
	`, limit)
}

func (r AnalyticsRepository) queryHourly(query string, args ...any) ([]models.HourlyBookings, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.HourlyBookings{}
	for rows.Next() {
		var rec models.HourlyBookings
		if err := rows.Scan(&rec.Hour, &rec.UniqueBookings); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// BookingsPerWeekday maps MySQL DAYOFWEEK (1=Sunday) onto the 0=Sunday
// numbering the contract uses.
func (r AnalyticsRepository) BookingsPerWeekday() ([]models.WeekdayBookings, error) {
	rows, err := r.db().Query(`
		SELECT DAYOFWEEK(date) - 1 AS weekday_num,
		       DAYNAME(date) AS weekday_name,
		       COUNT(DISTINCT booking_id) AS unique_bookings
		FROM uber_bookings
		WHERE date IS NOT NULL
		GROUP BY weekday_num, weekday_name
		ORDER BY weekday_num
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.WeekdayBookings{}
	for rows.Next() {
		var rec models.WeekdayBookings
		if err := rows.Scan(&rec.WeekdayNum, &rec.WeekdayName, &rec.UniqueBookings); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r AnalyticsRepository) BookingsPerMonth() ([]models.MonthlyBookings, error) {
	rows, err := r.db().Query(`
		SELECT DATE_FORMAT(date, '%Y-%m') AS month,
		       COUNT(DISTINCT booking_id) AS bookings
		FROM uber_bookings
		WHERE date IS NOT NULL
		GROUP BY month
		ORDER BY month
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.MonthlyBookings{}
	for rows.Next() {
		var rec models.MonthlyBookings
		if err := rows.Scan(&rec.Month, &rec.Bookings); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r AnalyticsRepository) VehicleTypeStats() ([]models.VehicleTypeStats, error) {
	rows, err := r.db().Query(`
		SELECT vehicle_type,
		       COUNT(DISTINCT booking_id) AS total_bookings,
		       COUNT(DISTINCT customer_id) AS unique_customers
		FROM uber_bookings
		GROUP BY vehicle_type
		ORDER BY total_bookings DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.VehicleTypeStats{}
	for rows.Next() {
		var rec models.VehicleTypeStats
		if err := rows.Scan(&rec.VehicleType, &rec.TotalBookings, &rec.UniqueCustomers); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// PaymentMethodStats excludes NULL and empty methods: both mean the payment
// was never recorded, not a category of its own.
func (r AnalyticsRepository) PaymentMethodStats() ([]models.PaymentMethodStats, error) {
	rows, err := r.db().Query(`
		SELECT payment_method,
		       COUNT(DISTINCT booking_id) AS total_bookings
		FROM uber_bookings
		WHERE payment_method IS NOT NULL AND payment_method <> ''
		GROUP BY payment_method
		ORDER BY total_bookings DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PaymentMethodStats{}
	for rows.Next() {
		var rec models.PaymentMethodStats
		if err := rows.Scan(&rec.PaymentMethod, &rec.TotalBookings); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r AnalyticsRepository) TopCustomers(limit int) ([]models.TopCustomer, error) {
	rows, err := r.db().Query(`
		SELECT customer_id,
		       COUNT(DISTINCT booking_id) AS total_bookings
		FROM uber_bookings
		GROUP BY customer_id
		ORDER BY total_bookings DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TopCustomer{}
	for rows.Next() {
		var rec models.TopCustomer
		if err := rows.Scan(&rec.CustomerID, &rec.TotalBookings); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// TopCustomerPaymentMethods picks the single highest-volume customer and
// breaks their bookings down by recorded payment method. When several
// customers tie for the top count the engine picks one; callers must not
// rely on a particular winner.
func (r AnalyticsRepository) TopCustomerPaymentMethods() ([]models.CustomerPaymentMethod, error) {
	rows, err := r.db().Query(`
		WITH top_customer AS (
			SELECT customer_id
			FROM uber_bookings
			GROUP BY customer_id
			ORDER BY COUNT(DISTINCT booking_id) DESC
			LIMIT 1
		)
		SELECT t.customer_id,
		       v.payment_method,
		       COUNT(DISTINCT v.booking_id) AS bookings_for_method
		FROM uber_bookings v
		JOIN top_customer t ON v.customer_id = t.customer_id
		WHERE v.payment_method IS NOT NULL AND v.payment_method <> ''
		GROUP BY t.customer_id, v.payment_method
		ORDER BY bookings_for_method DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CustomerPaymentMethod{}
	for rows.Next() {
		var rec models.CustomerPaymentMethod
		if err := rows.Scan(&rec.CustomerID, &rec.PaymentMethod, &rec.BookingsForMethod); err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
