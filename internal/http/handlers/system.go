package handlers

import (
	"net/http"

	intconfig "github.com/BandBurro/data-analytics-uber/internal/config"
	intdb "github.com/BandBurro/data-analytics-uber/internal/db"

	"github.com/gin-gonic/gin"
)

// Root reports service status plus the raw dataset row count, mirroring the
// health endpoint shape the frontend polls.
func Root(c *gin.Context) {
	if !requireStore(c) {
		return
	}
	total, err := activeStore().TotalBookings()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"total_bookings": total,
		"description":    "Uber Ride Analytics API - NCR Region Data",
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "analytics backend berjalan"})
}

// DBCheck verifies the relational backend is reachable and schema-loaded.
// On the csv variant there is no pool to check and it reports as such.
func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusOK, gin.H{"message": "variant csv aktif, tanpa koneksi database"})
		return
	}
	if err := intconfig.EnsureDB(); err != nil {
		respondError(c, http.StatusInternalServerError, "db_unreachable", "gagal ping database: "+err.Error(), nil)
		return
	}
	if !intdb.HasTable(intconfig.DB, "uber_bookings") {
		respondError(c, http.StatusInternalServerError, "schema_missing", "tabel uber_bookings belum dibuat, jalankan loader", nil)
		return
	}
	var count int64
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM uber_bookings").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_query_failed", "gagal query ke database: "+err.Error(), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "koneksi database OK", "bookings_in_db": count})
}
