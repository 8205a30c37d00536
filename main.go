package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	intconfig "github.com/BandBurro/data-analytics-uber/internal/config"
	"github.com/BandBurro/data-analytics-uber/internal/csvstore"
	router "github.com/BandBurro/data-analytics-uber/internal/http"
	"github.com/BandBurro/data-analytics-uber/internal/http/handlers"
	"github.com/BandBurro/data-analytics-uber/internal/repositories"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	// Storage variant wiring. Both backends serve the identical contract; an
	// unreachable store at startup is fatal.
	var snapshot *csvstore.Snapshot
	switch env.Backend {
	case intconfig.BackendCSV:
		s, err := csvstore.Load(env.CSVPath)
		if err != nil {
			log.Fatalf("Gagal load dataset CSV: %v", err)
		}
		snapshot = s
		handlers.SetStore(snapshot)
		log.Printf("Variant csv aktif, dataset %s", env.CSVPath)
	case intconfig.BackendMySQL:
		intconfig.ConnectDB(env)
		defer intconfig.CloseDB()
		handlers.SetStore(repositories.AnalyticsRepository{})
		log.Printf("Variant mysql aktif, database %s@%s:%s", env.DBName, env.DBHost, env.DBPort)
	default:
		log.Fatalf("ANALYTICS_BACKEND tidak dikenal: %q (pakai csv atau mysql)", env.Backend)
	}

	r := router.NewRouter(env)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server berjalan di http://localhost%s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Gagal menjalankan server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Mematikan server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown server gagal: %v", err)
	}

	// csv variant writes the snapshot back unchanged, mirroring the load.
	if snapshot != nil {
		if err := snapshot.Save(); err != nil {
			log.Printf("Gagal menulis balik dataset: %v", err)
		}
	}

	log.Println("Server berhenti dengan aman.")
}
