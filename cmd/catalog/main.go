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
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/product_catalog/internal/config"
	"github.com/Skotchmaster/product_catalog/internal/events"
	"github.com/Skotchmaster/product_catalog/internal/httpserver"
	authmw "github.com/Skotchmaster/product_catalog/internal/middleware"
	"github.com/Skotchmaster/product_catalog/internal/models"
	"github.com/Skotchmaster/product_catalog/internal/repo"
	"github.com/Skotchmaster/product_catalog/internal/seed"
	"github.com/Skotchmaster/product_catalog/internal/service"
	pkgdb "github.com/Skotchmaster/product_catalog/pkg/db"
	"github.com/Skotchmaster/product_catalog/pkg/logging"
	loggingmw "github.com/Skotchmaster/product_catalog/pkg/middleware/logging"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	// prices are rendered as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := pkgdb.Migrate(db, models.All()...); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	if cfg.SeedData {
		seedCtx := logging.IntoContext(context.Background(), logger)
		if err := seed.Run(seedCtx, db); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	var publisher events.Publisher = events.Nop{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers)
	}

	r := repo.New(db)
	deps := &httpserver.Deps{
		DB: db,
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Repo:      r,
			JWTSecret: cfg.JWTSecret,
			TokenTTL:  cfg.TokenTTL,
			Events:    publisher,
		}},
		CategoryHandler: &httpserver.CategoryHTTP{Svc: &service.CategoryService{Repo: r, Events: publisher}},
		SupplierHandler: &httpserver.SupplierHTTP{Svc: &service.SupplierService{Repo: r, Events: publisher}},
		ProductHandler:  &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: r, Events: publisher}},
		JWTSecret:       cfg.JWTSecret,
		WriteRoles:      cfg.WriteRoles,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger, authmw.ContextKeyUserID, authmw.ContextKeyUsername))
	e.Use(echomw.CORS())

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
		logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}

	if err := publisher.Close(); err != nil {
		logger.Error("publisher_close_failed", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("shutdown_complete")
}
