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

	approveRequestHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/approve_request"
	cancelRequestHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/cancel_request"
	checkAvailabilityHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/check_availability"
	createRequestHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/create_request"
	editRequestHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/edit_request"
	getIncomingRequestsHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/get_incoming_requests"
	getLocationsHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/get_locations"
	getMyRequestsHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/get_my_requests"
	rejectRequestHandler "github.com/m04kA/SAC-BookingService/internal/api/handlers/reject_request"
	"github.com/m04kA/SAC-BookingService/internal/api/middleware"
	"github.com/m04kA/SAC-BookingService/internal/app"
	"github.com/m04kA/SAC-BookingService/internal/config"
	requestRepo "github.com/m04kA/SAC-BookingService/internal/infra/storage/requests"
	requestsService "github.com/m04kA/SAC-BookingService/internal/service/requests"
	"github.com/m04kA/SAC-BookingService/pkg/logger"
	"github.com/m04kA/SAC-BookingService/pkg/metrics"
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

	log.Info("Starting SAC-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Собираем политику занятости слотов
	policy, err := cfg.Booking.OccupancyPolicy()
	if err != nil {
		log.Fatal("Failed to build occupancy policy: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Применяем миграции
	migrator, err := app.NewMigrator(db, cfg.Database.MigrationsDir)
	if err != nil {
		log.Fatal("Failed to create migrator: %v", err)
	}
	if err := migrator.Run(context.Background()); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Инициализируем шлюз персистентности
	requestRepository := requestRepo.NewRepository(db)

	// Инициализируем сервис заявок; ошибка загрузки трактуется как
	// холодный старт с пустой коллекцией
	var conflictMetrics requestsService.ConflictMetrics = requestsService.NopMetrics{}
	if cfg.Metrics.Enabled {
		conflictMetrics = metricsCollector
	}
	requestSvc := requestsService.NewService(
		context.Background(),
		requestRepository,
		policy,
		conflictMetrics,
		log,
	)

	// Инициализируем handlers
	createRequest := createRequestHandler.NewHandler(requestSvc, log)
	editRequest := editRequestHandler.NewHandler(requestSvc, log)
	cancelRequest := cancelRequestHandler.NewHandler(requestSvc, log)
	approveRequest := approveRequestHandler.NewHandler(requestSvc, log)
	rejectRequest := rejectRequestHandler.NewHandler(requestSvc, log)
	getMyRequests := getMyRequestsHandler.NewHandler(requestSvc, log)
	getIncomingRequests := getIncomingRequestsHandler.NewHandler(requestSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(requestSvc, log)
	getLocations := getLocationsHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог площадок
	api.HandleFunc("/locations", getLocations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (личность из заголовков сессионного сервиса)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Заявки ---
	// Создание заявки
	protected.HandleFunc("/requests", createRequest.Handle).Methods(http.MethodPost)

	// История заявок текущего пользователя
	protected.HandleFunc("/requests/my", getMyRequests.Handle).Methods(http.MethodGet)

	// Отмена заявки
	protected.HandleFunc("/requests/{requestId}", cancelRequest.Handle).Methods(http.MethodDelete)

	// Проверка доступности слота с подсказкой следующего свободного начала
	protected.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Операции ревьюера ---
	reviewer := protected.PathPrefix("").Subrouter()
	reviewer.Use(middleware.RequireReviewer)

	// Входящие заявки (вся коллекция)
	reviewer.HandleFunc("/requests", getIncomingRequests.Handle).Methods(http.MethodGet)

	// Решения по заявке
	reviewer.HandleFunc("/requests/{requestId}/approve", approveRequest.Handle).Methods(http.MethodPost)
	reviewer.HandleFunc("/requests/{requestId}/reject", rejectRequest.Handle).Methods(http.MethodPost)

	// Редактирование заявки
	reviewer.HandleFunc("/requests/{requestId}", editRequest.Handle).Methods(http.MethodPut)

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
