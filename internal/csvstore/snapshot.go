package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/BandBurro/data-analytics-uber/internal/domain/models"
	"github.com/BandBurro/data-analytics-uber/internal/utils"
)

// Raw dataset column names as shipped in the CSV export.
const (
	colDate          = "Date"
	colTime          = "Time"
	colBookingID     = "Booking ID"
	colBookingStatus = "Booking Status"
	colCustomerID    = "Customer ID"
	colVehicleType   = "Vehicle Type"
	colPaymentMethod = "Payment Method"
)

// record pairs the untouched raw CSV fields (for the shutdown write-back)
// with the canonical quote-stripped booking used by every query.
type record struct {
	raw     []string
	booking models.Booking

	weekday int    // 0=Sunday
	month   string // YYYY-MM
	hour    int
	hasDate bool
	hasTime bool
}

// Snapshot is an immutable in-memory copy of the dataset file. It is loaded
// once at startup and only read afterwards, so concurrent requests need no
// locking. Save rewrites the file with the loaded contents unchanged.
type Snapshot struct {
	path    string
	header  []string
	cols    map[string]int
	records []record
}

// Load reads and normalizes the dataset file. Rows whose date or time fail to
// parse stay in the snapshot with a nil date/time, excluded from the
// hourly/daily aggregates;
// an unreadable file is a startup failure, not something to serve around.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s has no header row", path)
	}

	s := &Snapshot{
		path:    path,
		header:  rows[0],
		cols:    map[string]int{},
		records: []record{},
	}
	for i, name := range rows[0] {
		s.cols[strings.TrimSpace(name)] = i
	}

	for _, row := range rows[1:] {
		s.records = append(s.records, s.newRecord(row))
	}
	return s, nil
}

func (s *Snapshot) cell(row []string, col string) string {
	idx, ok := s.cols[col]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (s *Snapshot) newRecord(row []string) record {
	rec := record{raw: row}

	rec.booking = models.Booking{
		BookingID:     utils.StripQuotes(s.cell(row, colBookingID)),
		BookingStatus: utils.TrimOrEmpty(s.cell(row, colBookingStatus)),
		CustomerID:    utils.StripQuotes(s.cell(row, colCustomerID)),
		VehicleType:   utils.TrimOrEmpty(s.cell(row, colVehicleType)),
	}

	if pm := utils.TrimOrEmpty(s.cell(row, colPaymentMethod)); pm != "" {
		rec.booking.PaymentMethod = &pm
	}

	if d, err := utils.ParseDate(s.cell(row, colDate)); err == nil {
		rec.hasDate = true
		rec.weekday = int(d.Weekday())
		rec.month = d.Format("2006-01")
		date := utils.FormatDate(d)
		rec.booking.Date = &date
	}
	if t, err := utils.ParseClock(s.cell(row, colTime)); err == nil {
		rec.hasTime = true
		rec.hour = t.Hour()
		clock := utils.FormatClock(t)
		rec.booking.Time = &clock
	}
	return rec
}

// Bookings returns the canonical records in file order.
func (s *Snapshot) Bookings() []models.Booking {
	out := make([]models.Booking, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, rec.booking)
	}
	return out
}

// TotalBookings reports the raw row count, matching the root endpoint contract.
func (s *Snapshot) TotalBookings() (int64, error) {
	return int64(len(s.records)), nil
}

// Save rewrites the underlying file with the loaded rows untouched.
func (s *Snapshot) Save() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("rewrite dataset %s: %w", s.path, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(s.header); err != nil {
		f.Close()
		return err
	}
	for _, rec := range s.records {
		if err := w.Write(rec.raw); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
