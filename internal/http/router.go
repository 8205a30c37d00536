package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "github.com/BandBurro/data-analytics-uber/internal/config"
	h "github.com/BandBurro/data-analytics-uber/internal/http/handlers"
	"github.com/BandBurro/data-analytics-uber/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", h.Root)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		analytics := api.Group("/analytics")
		analytics.GET("/booking-status-breakdown", h.BookingStatusBreakdown)
		analytics.GET("/bookings-per-hour", h.BookingsPerHour)
		analytics.GET("/bookings-per-weekday", h.BookingsPerWeekday)
		analytics.GET("/bookings-per-month", h.BookingsPerMonth)
		analytics.GET("/peak-hours", h.PeakHours)
		analytics.GET("/vehicle-types", h.VehicleTypeStats)
		analytics.GET("/payment-methods", h.PaymentMethodStats)
		analytics.GET("/top-customers", h.TopCustomers)
		analytics.GET("/top-customer-payment-methods", h.TopCustomerPaymentMethods)

		bookings := api.Group("/bookings")
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBookingByID)

		reports := api.Group("/reports")
		reports.GET("/summary", h.GetSummaryReport)
	}

	return r
}
