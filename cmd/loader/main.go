package main

import (
	"database/sql"
	"log"
	"strings"

	intconfig "github.com/BandBurro/data-analytics-uber/internal/config"
	"github.com/BandBurro/data-analytics-uber/internal/csvstore"
	intdb "github.com/BandBurro/data-analytics-uber/internal/db"
	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
)

const batchSize = 1000

// Indexes live inside the CREATE TABLE because MySQL has no
// CREATE INDEX IF NOT EXISTS.
const createTableSQL = `
CREATE TABLE IF NOT EXISTS uber_bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	date DATE NOT NULL,
	time TIME NOT NULL,
	booking_id VARCHAR(50) NOT NULL,
	booking_status VARCHAR(50) NOT NULL,
	customer_id VARCHAR(50) NOT NULL,
	vehicle_type VARCHAR(50) NOT NULL,
	payment_method VARCHAR(50) NULL,
	UNIQUE KEY uq_booking_id (booking_id),
	KEY idx_booking_date (date),
	KEY idx_booking_status (booking_status),
	KEY idx_vehicle_type (vehicle_type),
	KEY idx_customer_id (customer_id),
	KEY idx_payment_method (payment_method),
	KEY idx_date_time (date, time)
)`

func main() {
	env := intconfig.LoadEnv()

	db := intconfig.ConnectDB(env)
	defer intconfig.CloseDB()

	if intdb.HasTable(db, "uber_bookings") {
		log.Println("Tabel uber_bookings sudah ada, lanjut insert")
	} else if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Gagal membuat tabel: %v", err)
	}

	snapshot, err := csvstore.Load(env.CSVPath)
	if err != nil {
		log.Fatalf("Gagal membaca CSV: %v", err)
	}

	rows := []models.Booking{}
	skipped := 0
	for _, b := range snapshot.Bookings() {
		// date/time are NOT NULL in the table; rows that failed to parse
		// cannot be represented and are skipped, not fatal.
		if b.Date == nil || b.Time == nil || b.BookingID == "" {
			skipped++
			continue
		}
		rows = append(rows, b)
	}

	inserted := int64(0)
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		n, err := insertBatch(db, rows[start:end])
		if err != nil {
			log.Fatalf("Gagal insert batch: %v", err)
		}
		inserted += n
	}

	log.Printf("Selesai: inserted=%d duplicates_skipped=%d unparsable_skipped=%d",
		inserted, int64(len(rows))-inserted, skipped)
}

// insertBatch upserts with conflict-skip semantics: duplicate booking_id rows
// are ignored thanks to the unique key.
func insertBatch(db *sql.DB, batch []models.Booking) (int64, error) {
	placeholders := make([]string, 0, len(batch))
	args := make([]any, 0, len(batch)*7)
	for _, b := range batch {
		placeholders = append(placeholders, "(?,?,?,?,?,?,?)")
		var payment any
		if b.PaymentMethod != nil {
			payment = *b.PaymentMethod
		}
		args = append(args, *b.Date, *b.Time, b.BookingID, b.BookingStatus, b.CustomerID, b.VehicleType, payment)
	}

	query := `INSERT IGNORE INTO uber_bookings
		(date, time, booking_id, booking_status, customer_id, vehicle_type, payment_method)
		VALUES ` + strings.Join(placeholders, ",")

	res, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
