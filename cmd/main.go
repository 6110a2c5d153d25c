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

	getTimeSlotsHandler "github.com/feldwerk/scheduling-service/internal/api/handlers/get_time_slots"
	suggestLocationSlotsHandler "github.com/feldwerk/scheduling-service/internal/api/handlers/suggest_location_slots"
	"github.com/feldwerk/scheduling-service/internal/api/middleware"
	"github.com/feldwerk/scheduling-service/internal/config"
	appointmentRepo "github.com/feldwerk/scheduling-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/feldwerk/scheduling-service/internal/infra/storage/schedule"
	catalogClient "github.com/feldwerk/scheduling-service/internal/integrations/catalog"
	geocodingClient "github.com/feldwerk/scheduling-service/internal/integrations/geocoding"
	getTimeSlotsUC "github.com/feldwerk/scheduling-service/internal/usecase/get_time_slots"
	suggestLocationSlotsUC "github.com/feldwerk/scheduling-service/internal/usecase/suggest_location_slots"
	"github.com/feldwerk/scheduling-service/pkg/dbmetrics"
	"github.com/feldwerk/scheduling-service/pkg/logger"
	"github.com/feldwerk/scheduling-service/pkg/metrics"
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

	log.Info("Starting scheduling-service...")
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

	// Инициализируем интеграционных клиентов
	geocoder := geocodingClient.NewClient(
		cfg.Geocoding.APIKey,
		cfg.Geocoding.Region,
		time.Duration(cfg.Geocoding.Timeout)*time.Second,
		log,
	)
	catalog := catalogClient.NewClient(
		cfg.Catalog.URL,
		time.Duration(cfg.Catalog.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (geocoding configured=%t, catalog=%s timeout=%ds)",
		cfg.Geocoding.APIKey != "", cfg.Catalog.URL, cfg.Catalog.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository    *scheduleRepo.Repository
		appointmentRepository *appointmentRepo.Repository
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		appointmentRepository = appointmentRepo.NewRepository(db)
	}

	// Инициализируем use cases
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		catalog,
		log,
	)

	suggestLocationSlotsUseCase := suggestLocationSlotsUC.NewUseCase(
		scheduleRepository,
		appointmentRepository,
		geocoder,
		log,
	)

	// Инициализируем handlers
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	suggestLocationSlots := suggestLocationSlotsHandler.NewHandler(suggestLocationSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступные слоты на дату (по всем календарям)
	api.HandleFunc("/timeslots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Слоты календаря с оценкой близости к записям дня
	api.HandleFunc("/appointments/suggest-location-timeslots",
		suggestLocationSlots.Handle).Methods(http.MethodGet)

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
