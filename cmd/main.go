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

	getOnDutyStaffHandler "github.com/m04kA/SMC-StaffAvailabilityService/internal/api/handlers/get_on_duty_staff"
	rankAvailableStaffHandler "github.com/m04kA/SMC-StaffAvailabilityService/internal/api/handlers/rank_available_staff"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/config"
	"github.com/m04kA/SMC-StaffAvailabilityService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-StaffAvailabilityService/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/SMC-StaffAvailabilityService/internal/infra/storage/schedule"
	staffmappingRepo "github.com/m04kA/SMC-StaffAvailabilityService/internal/infra/storage/staffmapping"
	staffServiceClient "github.com/m04kA/SMC-StaffAvailabilityService/internal/integrations/staffservice"
	rosterService "github.com/m04kA/SMC-StaffAvailabilityService/internal/service/roster"
	rankAvailableStaffUC "github.com/m04kA/SMC-StaffAvailabilityService/internal/usecase/rank_available_staff"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/metrics"
	"github.com/m04kA/SMC-StaffAvailabilityService/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-StaffAvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиента StaffService
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (StaffService=%s timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	appointments := appointmentRepo.NewRepository(executor)
	schedules := scheduleRepo.NewRepository(executor)
	mappings := staffmappingRepo.NewRepository(executor)

	// Окно рабочего дня: из конфига или дефолты
	dayWindow, minGap, err := resolveAvailabilityConfig(cfg)
	if err != nil {
		log.Fatal("Failed to resolve availability config: %v", err)
	}
	log.Info("Day window: %s-%s, min usable gap: %d minutes",
		dayWindow.Start, dayWindow.End, minGap)

	// Инициализируем сервисы и use cases
	roster := rosterService.NewService(schedules, mappings, staffClient, log)

	rankAvailableStaffUseCase := rankAvailableStaffUC.NewUseCase(
		schedules,
		mappings,
		appointments,
		staffClient,
		dayWindow,
		minGap,
		log,
	)

	// Инициализируем handlers
	rankAvailableStaff := rankAvailableStaffHandler.NewHandler(rankAvailableStaffUseCase, log)
	getOnDutyStaff := getOnDutyStaffHandler.NewHandler(roster, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Ранжирование доступных мастеров локации
	api.HandleFunc("/locations/{locationId}/available-staff",
		rankAvailableStaff.HandleByLocation).Methods(http.MethodGet)

	// Fallback по всем локациям
	api.HandleFunc("/available-staff",
		rankAvailableStaff.HandleAllLocations).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Список мастеров на смене (для UI расписания)
	protected.HandleFunc("/locations/{locationId}/on-duty", getOnDutyStaff.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
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

// resolveAvailabilityConfig собирает окно рабочего дня и порог минимального
// зазора из конфига, подставляя дефолты для пустых значений
func resolveAvailabilityConfig(cfg *config.Config) (domain.DayWindow, int, error) {
	window := domain.DefaultDayWindow()

	if cfg.Availability.DayStart != "" {
		start, err := types.NewTimeStringFromString(cfg.Availability.DayStart)
		if err != nil {
			return domain.DayWindow{}, 0, fmt.Errorf("invalid availability.day_start: %w", err)
		}
		window.Start = start
	}

	if cfg.Availability.DayEnd != "" {
		end, err := types.NewTimeStringFromString(cfg.Availability.DayEnd)
		if err != nil {
			return domain.DayWindow{}, 0, fmt.Errorf("invalid availability.day_end: %w", err)
		}
		window.End = end
	}

	if !window.Start.IsBefore(window.End) {
		return domain.DayWindow{}, 0, fmt.Errorf("availability day window is empty: %s-%s", window.Start, window.End)
	}

	minGap := cfg.Availability.MinUsableGapMinutes
	if minGap <= 0 {
		minGap = domain.MinUsableGapMinutes
	}

	return window, minGap, nil
}
