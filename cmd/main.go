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
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/create_reservation"
	getCarHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_car"
	getReservationHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_reservation"
	getStatsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/get_stats"
	healthHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/health"
	listCarsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/list_cars"
	listReservationsHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/list_reservations"
	transitionReservationHandler "github.com/m04kA/SMC-CarRentalService/internal/api/handlers/transition_reservation"
	"github.com/m04kA/SMC-CarRentalService/internal/api/middleware"
	"github.com/m04kA/SMC-CarRentalService/internal/config"
	carRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/car"
	reservationRepo "github.com/m04kA/SMC-CarRentalService/internal/infra/storage/reservation"
	userServiceClient "github.com/m04kA/SMC-CarRentalService/internal/integrations/userservice"
	carsService "github.com/m04kA/SMC-CarRentalService/internal/service/cars"
	reservationsService "github.com/m04kA/SMC-CarRentalService/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/create_reservation"
	transitionReservationUC "github.com/m04kA/SMC-CarRentalService/internal/usecase/transition_reservation"
	"github.com/m04kA/SMC-CarRentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/logger"
	"github.com/m04kA/SMC-CarRentalService/pkg/metrics"
	"github.com/m04kA/SMC-CarRentalService/pkg/txmanager"
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

	log.Info("Starting SMC-CarRentalService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	// При выключенных метриках collector остается nil, все Record* становятся no-op
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	if cfg.Metrics.Enabled {
		log.Info("Database metrics collection started")
	}

	// Каталог автомобилей читается через sqlx поверх того же пула, с теми же метриками запросов
	catalogDB := dbmetrics.WrapQueryer(sqlx.NewDb(db, "postgres"), metricsCollector)

	// Инициализируем интеграционных клиентов
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозитории и менеджер транзакций
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	carRepository := carRepo.NewRepository(catalogDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Инициализируем сервисы
	carSvc := carsService.NewService(carRepository, log)
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		carRepository,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		carRepository,
		txMgr,
		metricsCollector,
		log,
	)
	transitionReservationUseCase := transitionReservationUC.NewUseCase(
		reservationRepository,
		txMgr,
		metricsCollector,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		carRepository,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler(db, log)
	listCars := listCarsHandler.NewHandler(carSvc, log)
	getCar := getCarHandler.NewHandler(carSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationSvc, log)
	transitionReservation := transitionReservationHandler.NewHandler(transitionReservationUseCase, log)
	getStats := getStatsHandler.NewHandler(reservationSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		// Metrics endpoint (публичный, без аутентификации)
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Каталог автомобилей
	api.HandleFunc("/cars", listCars.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cars/{carId}", getCar.Handle).Methods(http.MethodGet)

	// Проверка доступности и расчет стоимости
	api.HandleFunc("/cars/{carId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(userClient, log))

	// --- Бронирования ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{reservationId}/status", transitionReservation.Handle).Methods(http.MethodPatch)

	// --- Администрирование ---
	protected.HandleFunc("/admin/stats", getStats.Handle).Methods(http.MethodGet)

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
	close(stopMetricsCh)

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
