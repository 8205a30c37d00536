package csvstore

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/domain"
)

var sampleHeader = []string{"Date", "Time", "Booking ID", "Booking Status", "Customer ID", "Vehicle Type", "Payment Method"}

// Mirrors the dataset export: ids wrapped in literal quotes, one row without
// a recorded payment.
var sampleRows = [][]string{
	{"2025-09-01", "08:15:00", `"B001"`, "Completed", `"C001"`, "Sedan", "Card"},
	{"2025-09-01", "09:45:00", `"B002"`, "Cancelled", `"C002"`, "SUV", "Cash"},
	{"2025-09-02", "08:30:00", `"B003"`, "Completed", `"C001"`, "Sedan", "Card"},
	{"2025-09-03", "20:00:00", `"B004"`, "Completed", `"C003"`, "Bike", ""},
}

func writeTempCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cleaned_up_pandas.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp csv: %v", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(sampleHeader); err != nil {
		t.Fatalf("write header: %v", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			t.Fatalf("write row: %v", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush csv: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close csv: %v", err)
	}
	return path
}

func loadSample(t *testing.T) *Snapshot {
	t.Helper()
	s, err := Load(writeTempCSV(t, sampleRows))
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	return s
}

func TestLoadNormalizesRecords(t *testing.T) {
	s := loadSample(t)

	total, err := s.TotalBookings()
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 rows, got %d", total)
	}

	bookings := s.Bookings()
	if bookings[0].BookingID != "B001" || bookings[0].CustomerID != "C001" {
		t.Fatalf("ids not quote-stripped: %+v", bookings[0])
	}
	if bookings[0].PaymentMethod == nil || *bookings[0].PaymentMethod != "Card" {
		t.Fatalf("payment method lost: %+v", bookings[0])
	}
	if bookings[3].PaymentMethod != nil {
		t.Fatalf("empty payment should be nil, got %v", *bookings[3].PaymentMethod)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing dataset")
	}
}

func TestSaveIsPassThrough(t *testing.T) {
	path := writeTempCSV(t, sampleRows)
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read before: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after: %v", err)
	}
	if string(before) != string(after) {
		t.Fatalf("write-back changed the file:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestUnparsableRowsExcludedFromTimeAggregates(t *testing.T) {
	rows := append([][]string{}, sampleRows...)
	rows = append(rows, []string{"not-a-date", "bad", `"B005"`, "Completed", `"C009"`, "Sedan", "UPI"})
	s, err := Load(writeTempCSV(t, rows))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	hours, err := s.BookingsPerHour()
	if err != nil {
		t.Fatalf("per hour: %v", err)
	}
	for _, h := range hours {
		if h.Hour != 8 && h.Hour != 9 && h.Hour != 20 {
			t.Fatalf("unexpected hour %d from unparsable row", h.Hour)
		}
	}

	// the malformed row still counts in status aggregates
	statuses, err := s.StatusBreakdown()
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if statuses[0].BookingStatus != "Completed" || statuses[0].Bookings != 4 {
		t.Fatalf("expected Completed=4 including malformed row, got %+v", statuses[0])
	}
}

func TestMissingDateAndTimeStayNull(t *testing.T) {
	rows := append([][]string{}, sampleRows...)
	rows = append(rows, []string{"", "", `"B005"`, "Completed", `"C009"`, "Sedan", "UPI"})
	s, err := Load(writeTempCSV(t, rows))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec, err := s.GetBookingByID("B005")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec.Date != nil || rec.Time != nil {
		t.Fatalf("missing date/time should stay nil: %+v", rec)
	}

	body, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"date":null`) || !strings.Contains(string(body), `"time":null`) {
		t.Fatalf("missing values must serialize as null, got %s", body)
	}
	if strings.Contains(string(body), `"date":""`) || strings.Contains(string(body), `"time":""`) {
		t.Fatalf("missing values coerced to empty string: %s", body)
	}

	// the row is still listed, ordered before every dated row
	page, err := s.ListBookings(analytics.BookingFilter{Limit: 100})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalFound != 5 || page.Bookings[0].BookingID != "B005" {
		t.Fatalf("dateless row lost or misordered: %+v", page)
	}
}

func TestListBookings(t *testing.T) {
	s := loadSample(t)

	page, err := s.ListBookings(analytics.BookingFilter{Status: "Completed", Limit: 100})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalFound != 3 || page.Returned != 3 {
		t.Fatalf("expected 3 completed, got total=%d returned=%d", page.TotalFound, page.Returned)
	}
	for _, b := range page.Bookings {
		if b.BookingStatus != "Completed" {
			t.Fatalf("filter leaked status %q", b.BookingStatus)
		}
	}

	// truncation keeps total_found pre-truncation
	page, err = s.ListBookings(analytics.BookingFilter{Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalFound != 4 || page.Returned != 2 {
		t.Fatalf("expected total=4 returned=2, got total=%d returned=%d", page.TotalFound, page.Returned)
	}
	// default ordering: date, then time, then booking id
	if page.Bookings[0].BookingID != "B001" || page.Bookings[1].BookingID != "B002" {
		t.Fatalf("wrong ordering: %+v", page.Bookings)
	}

	// customer filter accepts quoted and unquoted input
	quoted, err := s.ListBookings(analytics.BookingFilter{CustomerID: `"C001"`, Limit: 100})
	if err != nil {
		t.Fatalf("list quoted: %v", err)
	}
	plain, err := s.ListBookings(analytics.BookingFilter{CustomerID: "C001", Limit: 100})
	if err != nil {
		t.Fatalf("list plain: %v", err)
	}
	if quoted.TotalFound != 2 || plain.TotalFound != 2 {
		t.Fatalf("quote-normalized filter mismatch: quoted=%d plain=%d", quoted.TotalFound, plain.TotalFound)
	}

	// conjunctive filters
	page, err = s.ListBookings(analytics.BookingFilter{Status: "Completed", VehicleType: "Bike", Limit: 100})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalFound != 1 || page.Bookings[0].BookingID != "B004" {
		t.Fatalf("conjunctive filter wrong: %+v", page)
	}
}

func TestGetBookingByID(t *testing.T) {
	s := loadSample(t)

	plain, err := s.GetBookingByID("B001")
	if err != nil {
		t.Fatalf("lookup plain: %v", err)
	}
	quoted, err := s.GetBookingByID(`"B001"`)
	if err != nil {
		t.Fatalf("lookup quoted: %v", err)
	}
	if plain != quoted {
		t.Fatalf("quoted/unquoted lookups differ: %+v vs %+v", plain, quoted)
	}

	if _, err := s.GetBookingByID("B999"); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found signal, got %v", err)
	}
}

func TestGetBookingByIDDuplicateReturnsFirst(t *testing.T) {
	rows := append([][]string{}, sampleRows...)
	rows = append(rows, []string{"2025-09-09", "11:00:00", `"B001"`, "Cancelled", `"C009"`, "SUV", "Cash"})
	s, err := Load(writeTempCSV(t, rows))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	rec, err := s.GetBookingByID("B001")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if rec.BookingStatus != "Completed" {
		t.Fatalf("expected first match in file order, got %+v", rec)
	}
}
