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

	calculateMealAllowanceHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/calculate_meal_allowance"
	cancelRoomBookingHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/cancel_room_booking"
	createBookHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/create_book"
	createRoomBookingHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/create_room_booking"
	createTravelRequestHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/create_travel_request"
	getBookQRHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/get_book_qr"
	getRoomBookingHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/get_room_booking"
	getRoomGridHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/get_room_grid"
	getTravelRequestHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/get_travel_request"
	getUserRoomBookingsHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/get_user_room_bookings"
	libraryCheckinHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/library_checkin"
	libraryCheckoutHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/library_checkout"
	listRoomBookingsHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/list_room_bookings"
	listRoomsHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/list_rooms"
	selectRoomIntervalHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/select_room_interval"
	updateRoomBookingStatusHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/update_room_booking_status"
	updateTravelRequestStatusHandler "github.com/m04kA/SMC-StaffPortal/internal/api/handlers/update_travel_request_status"
	"github.com/m04kA/SMC-StaffPortal/internal/api/middleware"
	"github.com/m04kA/SMC-StaffPortal/internal/config"
	libraryRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/library"
	roomRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/room"
	roomBookingRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/roombooking"
	travelRepo "github.com/m04kA/SMC-StaffPortal/internal/infra/storage/travel"
	"github.com/m04kA/SMC-StaffPortal/internal/service/allowance"
	bookingsService "github.com/m04kA/SMC-StaffPortal/internal/service/bookings"
	libraryService "github.com/m04kA/SMC-StaffPortal/internal/service/library"
	travelService "github.com/m04kA/SMC-StaffPortal/internal/service/travel"
	calculateMealAllowanceUC "github.com/m04kA/SMC-StaffPortal/internal/usecase/calculate_meal_allowance"
	createRoomBookingUC "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_room_booking"
	createTravelRequestUC "github.com/m04kA/SMC-StaffPortal/internal/usecase/create_travel_request"
	getRoomGridUC "github.com/m04kA/SMC-StaffPortal/internal/usecase/get_room_grid"
	selectRoomIntervalUC "github.com/m04kA/SMC-StaffPortal/internal/usecase/select_room_interval"
	"github.com/m04kA/SMC-StaffPortal/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffPortal/pkg/logger"
	"github.com/m04kA/SMC-StaffPortal/pkg/metrics"
	"github.com/m04kA/SMC-StaffPortal/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-StaffPortal...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Portal.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Portal.Timezone, err)
	}

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

	// Обёртка считает запросы только при включённых метриках, nil коллектор ничего не пишет
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(wrappedDB)
	roomBookingRepository := roomBookingRepo.NewRepository(wrappedDB)
	travelRepository := travelRepo.NewRepository(wrappedDB)
	libraryRepository := libraryRepo.NewRepository(wrappedDB)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	var conflictCounter createRoomBookingUC.ConflictCounter
	if metricsCollector != nil {
		conflictCounter = metricsCollector.BookingConflictsTotal
	}

	calculator := allowance.NewCalculator(loc)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(roomBookingRepository, txMgr, log)
	travelSvc := travelService.NewService(travelRepository, txMgr, log)
	librarySvc := libraryService.NewService(
		libraryRepository,
		txMgr,
		cfg.Portal.LoanDays,
		cfg.Portal.QRSize,
		log,
	)

	// Инициализируем use cases
	createRoomBookingUseCase := createRoomBookingUC.NewUseCase(
		roomBookingRepository,
		roomRepository,
		txMgr,
		conflictCounter,
		loc,
		log,
	)
	getRoomGridUseCase := getRoomGridUC.NewUseCase(roomRepository, roomBookingRepository, log)
	selectRoomIntervalUseCase := selectRoomIntervalUC.NewUseCase(roomRepository, roomBookingRepository, log)
	calculateMealAllowanceUseCase := calculateMealAllowanceUC.NewUseCase(calculator, log)
	createTravelRequestUseCase := createTravelRequestUC.NewUseCase(travelRepository, calculator, log)

	// Инициализируем handlers
	listRooms := listRoomsHandler.NewHandler(roomRepository, log)
	getRoomGrid := getRoomGridHandler.NewHandler(getRoomGridUseCase, log)
	selectRoomInterval := selectRoomIntervalHandler.NewHandler(selectRoomIntervalUseCase, log)
	calculateMealAllowance := calculateMealAllowanceHandler.NewHandler(calculateMealAllowanceUseCase, log)

	createRoomBooking := createRoomBookingHandler.NewHandler(createRoomBookingUseCase, log)
	getRoomBooking := getRoomBookingHandler.NewHandler(bookingSvc, log)
	listRoomBookings := listRoomBookingsHandler.NewHandler(bookingSvc, log)
	getUserRoomBookings := getUserRoomBookingsHandler.NewHandler(bookingSvc, log)
	cancelRoomBooking := cancelRoomBookingHandler.NewHandler(bookingSvc, log)
	updateRoomBookingStatus := updateRoomBookingStatusHandler.NewHandler(bookingSvc, log)

	createTravelRequest := createTravelRequestHandler.NewHandler(createTravelRequestUseCase, log)
	getTravelRequest := getTravelRequestHandler.NewHandler(travelSvc, log)
	updateTravelRequestStatus := updateTravelRequestStatusHandler.NewHandler(travelSvc, log)

	createBook := createBookHandler.NewHandler(librarySvc, log)
	getBookQR := getBookQRHandler.NewHandler(librarySvc, log)
	libraryCheckout := libraryCheckoutHandler.NewHandler(librarySvc, log)
	libraryCheckin := libraryCheckinHandler.NewHandler(librarySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

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

	// Справочник комнат
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)

	// Сетка занятости комнат на день
	api.HandleFunc("/rooms/grid", getRoomGrid.Handle).Methods(http.MethodGet)

	// Выбор интервала двумя кликами по сетке
	api.HandleFunc("/rooms/grid/select", selectRoomInterval.Handle).Methods(http.MethodPost)

	// Калькулятор суточных на питание
	api.HandleFunc("/travel/meal-allowance", calculateMealAllowance.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования комнат ---
	protected.HandleFunc("/room-bookings", createRoomBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/room-bookings", listRoomBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/room-bookings/{bookingId}", getRoomBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/room-bookings/{bookingId}/cancel", cancelRoomBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/{userId}/room-bookings", getUserRoomBookings.Handle).Methods(http.MethodGet)

	// Экран согласования
	protected.HandleFunc("/room-bookings/{bookingId}/status", updateRoomBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Командировки ---
	protected.HandleFunc("/travel-requests", createTravelRequest.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/travel-requests/{requestId}", getTravelRequest.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/travel-requests/{requestId}/status", updateTravelRequestStatus.Handle).Methods(http.MethodPatch)

	// --- Библиотека ---
	protected.HandleFunc("/books", createBook.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/books/{bookId}/qr", getBookQR.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/library/checkout", libraryCheckout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/library/checkin", libraryCheckin.Handle).Methods(http.MethodPost)

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
