package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/BandBurro/data-analytics-uber/internal/analytics"
	"github.com/BandBurro/data-analytics-uber/internal/utils"
)

// ReportsService renders the dataset summary as a downloadable PDF: status
// breakdown, vehicle-type stats and the top ten customers in one document.
type ReportsService struct {
	Store     analytics.Store
	RequestID string
}

func (s ReportsService) SummaryPDF() ([]byte, string, error) {
	total, err := s.Store.TotalBookings()
	if err != nil {
		return nil, "", err
	}
	statuses, err := s.Store.StatusBreakdown()
	if err != nil {
		return nil, "", err
	}
	vehicles, err := s.Store.VehicleTypeStats()
	if err != nil {
		return nil, "", err
	}
	customers, err := s.Store.TopCustomers(10)
	if err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "reports", "summary_pdf", fmt.Sprintf("total_bookings=%d", total))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Ride Analytics Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "RIDE ANALYTICS SUMMARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Generated : %s", time.Now().Format("2006-01-02 15:04:05")))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Total rows: %d", total))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, title)
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 11)
	}

	section("Booking Status")
	for _, st := range statuses {
		pdf.Cell(0, 6, fmt.Sprintf("%-20s %d", st.BookingStatus, st.Bookings))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section("Vehicle Types")
	for _, vt := range vehicles {
		pdf.Cell(0, 6, fmt.Sprintf("%-20s bookings=%d customers=%d", vt.VehicleType, vt.TotalBookings, vt.UniqueCustomers))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	section("Top Customers")
	for i, tc := range customers {
		pdf.Cell(0, 6, fmt.Sprintf("%2d. %-16s %d", i+1, tc.CustomerID, tc.TotalBookings))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ride_summary_%s.pdf", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
