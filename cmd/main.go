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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	getRevenueHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_revenue"
	listAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_available_slots"
	listDetailsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_details"
	listReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/list_reservations"
	searchDetailsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/search_details"
	searchReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/search_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	detailRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/detail"
	dinerRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/diner"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/room"
	reportsService "github.com/m04kA/SMC-ReservationService/internal/service/reports"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	listAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/list_available_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func main() {
	// Загружаем .env (если есть) до чтения конфигурации:
	// оттуда приходят RESERVATION_DB_* переопределения
	_ = godotenv.Load()

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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(db)
	dinerRepository := dinerRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	detailRepository := detailRepo.NewRepository(db)

	// Менеджер транзакций: создание брони выполняет резолв имён, проверку
	// пересечений и вставку в одной сериализуемой транзакции
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		roomRepository,
		log,
	)
	reportsSvc := reportsService.NewService(
		detailRepository,
		reservationRepository,
		roomRepository,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		detailRepository,
		roomRepository,
		dinerRepository,
		txMgr,
		log,
	)
	listAvailableSlotsUseCase := listAvailableSlotsUC.NewUseCase(
		reservationRepository,
		roomRepository,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	searchReservation := searchReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	listAvailableSlots := listAvailableSlotsHandler.NewHandler(listAvailableSlotsUseCase, log)
	listDetails := listDetailsHandler.NewHandler(reportsSvc, log)
	searchDetails := searchDetailsHandler.NewHandler(reportsSvc, log)
	getRevenue := getRevenueHandler.NewHandler(reportsSvc, log)

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

	// Поиск брони по времени и залу
	api.HandleFunc("/reservations/search", searchReservation.Handle).Methods(http.MethodGet)

	// Список броней с фильтрацией по залу и гостю
	api.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)

	// Доступные слоты рассадки на дату
	api.HandleFunc("/rooms/{room}/available-slots", listAvailableSlots.Handle).Methods(http.MethodGet)

	// Плоское представление броней с деталями
	api.HandleFunc("/details", listDetails.Handle).Methods(http.MethodGet)

	// Поиск по представлению деталей
	api.HandleFunc("/details/search", searchDetails.Handle).Methods(http.MethodGet)

	// Выручка по классам меню
	api.HandleFunc("/revenue", getRevenue.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Staff-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание брони
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Отмена брони
	protected.HandleFunc("/reservations/cancel", cancelReservation.Handle).Methods(http.MethodPost)

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
