package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelAppointmentHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/get_available_slots"
	getBuildingAppointmentsHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/get_building_appointments"
	getUserAppointmentsHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/get_user_appointments"
	updateAppointmentStatusHandler "github.com/Tsolgiun/office-plus-booking/internal/api/handlers/update_appointment_status"
	"github.com/Tsolgiun/office-plus-booking/internal/api/middleware"
	"github.com/Tsolgiun/office-plus-booking/internal/config"
	appointmentRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/appointment"
	buildingRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/building"
	appointmentsService "github.com/Tsolgiun/office-plus-booking/internal/service/appointments"
	createAppointmentUC "github.com/Tsolgiun/office-plus-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Tsolgiun/office-plus-booking/internal/usecase/get_available_slots"
	"github.com/Tsolgiun/office-plus-booking/pkg/dbmetrics"
	"github.com/Tsolgiun/office-plus-booking/pkg/logger"
	"github.com/Tsolgiun/office-plus-booking/pkg/metrics"
	"github.com/Tsolgiun/office-plus-booking/pkg/simpletxmanager"
	"github.com/Tsolgiun/office-plus-booking/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting office-plus booking service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories and the transaction manager, metered or plain
	var (
		appointmentRepository *appointmentRepo.Repository
		buildingRepository    *buildingRepo.Repository
		txMgr                 createAppointmentUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		buildingRepository = buildingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		buildingRepository = buildingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	appointmentSvc := appointmentsService.NewService(
		appointmentRepository,
		buildingRepository,
		log,
	)

	// Use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		buildingRepository,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		buildingRepository,
		cfg.Booking.OperatingHours(),
		log,
	)

	// Handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentSvc, log)
	getBuildingAppointments := getBuildingAppointmentsHandler.NewHandler(appointmentSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: the availability view backs the booking form and
	// needs no authentication
	api.HandleFunc("/buildings/{buildingId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected routes require a Bearer token
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/buildings/{buildingId}/appointments", getBuildingAppointments.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
