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

	cancelBookingHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/check_availability"
	createBookingHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/get_user_bookings"
	listTimeSlotsHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/list_time_slots"
	updateBookingStatusHandler "github.com/TheMidnightCodeGuild/turfujn/internal/api/handlers/update_booking_status"
	"github.com/TheMidnightCodeGuild/turfujn/internal/api/middleware"
	"github.com/TheMidnightCodeGuild/turfujn/internal/config"
	"github.com/TheMidnightCodeGuild/turfujn/internal/domain"
	bookingRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/booking"
	turfRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/turf"
	userRepo "github.com/TheMidnightCodeGuild/turfujn/internal/infra/storage/user"
	bookingsService "github.com/TheMidnightCodeGuild/turfujn/internal/service/bookings"
	checkAvailabilityUC "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/check_availability"
	createBookingUC "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/TheMidnightCodeGuild/turfujn/internal/usecase/get_available_slots"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/dbmetrics"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/logger"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/metrics"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/simpletxmanager"
	"github.com/TheMidnightCodeGuild/turfujn/pkg/txmanager"
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

	log.Info("Starting turfujn booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Каталог слотов статичен и общий для всех площадок
	catalog := domain.DefaultSlotCatalog()
	log.Info("Slot catalog initialized: %d slots", catalog.Len())

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		userRepository    *userRepo.Repository
		turfRepository    *turfRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		turfRepository = turfRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		turfRepository = turfRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		catalog,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		turfRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		userRepository,
		turfRepository,
		catalog,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		turfRepository,
		catalog,
		log,
	)

	// Инициализируем handlers
	listTimeSlots := listTimeSlotsHandler.NewHandler(catalog, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, catalog, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

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

	// Каталог временных слотов
	api.HandleFunc("/slots", listTimeSlots.Handle).Methods(http.MethodGet)

	// Проверка доступности слотов на дату
	api.HandleFunc("/turfs/{turfId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Слоты дня с признаками доступности (для сетки бронирования)
	api.HandleFunc("/turfs/{turfId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования (административная операция)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Бронирования пользователя через денормализованный индекс
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
