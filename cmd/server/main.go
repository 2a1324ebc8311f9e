package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	candidatehandler "leaders/internal/candidate/handler"
	candidatemetrics "leaders/internal/candidate/metrics"
	candidateservice "leaders/internal/candidate/service"
	candidatestore "leaders/internal/candidate/store"
	"leaders/internal/notify"
	"leaders/internal/platform/config"
	"leaders/internal/platform/httpserver"
	"leaders/internal/platform/logger"
	"leaders/internal/platform/metrics"
	"leaders/internal/platform/middleware"
	platformredis "leaders/internal/platform/redis"
	subscriberhandler "leaders/internal/subscriber/handler"
	subscribermetrics "leaders/internal/subscriber/metrics"
	subscriberservice "leaders/internal/subscriber/service"
	subscriberstore "leaders/internal/subscriber/store"
	httptransport "leaders/internal/transport/http"
	"leaders/internal/web"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	httpMetrics := metrics.New()
	candMetrics := candidatemetrics.New()
	subMetrics := subscribermetrics.New()

	var candStore candidatestore.Store
	var subStore subscriberstore.Store
	if cfg.DatabaseURL != "" {
		db, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("failed to open database", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			cancel()
			log.Error("failed to reach database", "error", err.Error())
			os.Exit(1)
		}
		cancel()
		candStore = candidatestore.NewPostgres(db)
		subStore = subscriberstore.NewPostgres(db)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory stores")
		candStore = candidatestore.NewMemory()
		subStore = subscriberstore.NewMemory()
	}

	candOpts := []candidateservice.Option{
		candidateservice.WithLogger(log),
		candidateservice.WithMetrics(candMetrics),
	}
	cache, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("failed to connect to redis", "error", err.Error())
		os.Exit(1)
	}
	if cache != nil {
		defer cache.Close()
		candOpts = append(candOpts, candidateservice.WithCache(cache, config.CandidateCacheTTL))
	}
	candService := candidateservice.New(candStore, candOpts...)

	subOpts := []subscriberservice.Option{
		subscriberservice.WithLogger(log),
		subscriberservice.WithMetrics(subMetrics),
	}
	if cfg.ResendAPIKey != "" {
		mailer := notify.NewMailer(cfg.ResendAPIKey, cfg.EmailFrom, cfg.SiteName, cfg.SiteURL)
		subOpts = append(subOpts, subscriberservice.WithHook(mailer.SendWelcome))
	} else {
		log.Warn("RESEND_API_KEY not set, welcome email disabled")
	}
	subService := subscriberservice.New(subStore, subOpts...)

	router := httptransport.NewRouter(httptransport.Deps{
		Candidates:  candidatehandler.New(candService, log),
		Subscribers: subscriberhandler.New(subService, log),
		Pages:       web.New(candService, cfg.SiteName, log),
		Middleware: []func(http.Handler) http.Handler{
			middleware.Recovery(log),
			middleware.RequestID,
			middleware.Logger(log),
			middleware.Latency(httpMetrics),
		},
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting server", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
	}
}
