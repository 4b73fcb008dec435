package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	pkgdb "github.com/Skotchmaster/hotel_ordering/pkg/db"
	"github.com/Skotchmaster/hotel_ordering/pkg/events"
	"github.com/Skotchmaster/hotel_ordering/pkg/logging"
	"github.com/Skotchmaster/hotel_ordering/pkg/middleware/csrf"
	loggingmw "github.com/Skotchmaster/hotel_ordering/pkg/middleware/logging"
	"github.com/Skotchmaster/hotel_ordering/pkg/middleware/session"

	orderingcfg "github.com/Skotchmaster/hotel_ordering/services/ordering/internal/config"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/httpserver"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/repo"
	"github.com/Skotchmaster/hotel_ordering/services/ordering/internal/service"
)

func main() {
	if err := godotenv.Load("services/ordering/.env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := orderingcfg.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		cancel()
		log.Fatalf("db open: %v", err)
	}

	catalog := &repo.GormRepo{DB: db}
	if err := catalog.Migrate(ctx); err != nil {
		cancel()
		log.Fatalf("db migrate: %v", err)
	}
	if err := catalog.SeedMenu(ctx, repo.DefaultMenu()); err != nil {
		cancel()
		log.Fatalf("seed menu: %v", err)
	}
	cancel()

	sessions, err := repo.NewSessionStore(cfg.SessionCapacity)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}

	producer, err := events.New(cfg.KafkaBrokers)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}

	svc := &service.OrderingService{
		Repo:     catalog,
		Sessions: sessions,
		Events:   producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	deps := &httpserver.Deps{
		Handler: &httpserver.OrderingHTTP{Svc: svc},
		Session: session.New(cfg.SessionSecret, cfg.SessionTTL),
	}
	if cfg.CSRFEnabled {
		csrfCfg := csrf.DefaultConfig()
		deps.CSRF = &csrfCfg
	}
	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("ordering listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	if err := pkgdb.Close(db); err != nil {
		log.Printf("db close error: %v", err)
	}

	log.Println("ordering stopped")
}
