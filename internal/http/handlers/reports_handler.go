package handlers

import (
	"net/http"

	"github.com/BandBurro/data-analytics-uber/internal/http/middleware"
	"github.com/BandBurro/data-analytics-uber/internal/services"

	"github.com/gin-gonic/gin"
)

// GetSummaryReport returns the one-page dataset summary PDF (inline).
func GetSummaryReport(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	svc := services.ReportsService{
		Store:     activeStore(),
		RequestID: middleware.GetRequestID(c),
	}
	pdfBytes, filename, err := svc.SummaryPDF()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
