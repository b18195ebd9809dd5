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

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAssignmentHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/check_assignment"
	createAssignmentHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/create_assignment"
	deleteAssignmentHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/delete_assignment"
	deleteReservationHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/delete_reservation"
	getAssignmentHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/get_assignment"
	getAvailabilityGridHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/get_availability_grid"
	getReservationSummaryHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/get_reservation_summary"
	getRoomsHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/get_rooms"
	updateAssignmentHandler "github.com/m04kA/SMC-RoomAssignmentService/internal/api/handlers/update_assignment"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/availability"
	"github.com/m04kA/SMC-RoomAssignmentService/internal/config"
	roomsCache "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/cache/rooms"
	assignmentRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/assignment"
	reservationRepo "github.com/m04kA/SMC-RoomAssignmentService/internal/infra/storage/reservation"
	roomCatalogClient "github.com/m04kA/SMC-RoomAssignmentService/internal/integrations/roomcatalog"
	assignmentsService "github.com/m04kA/SMC-RoomAssignmentService/internal/service/assignments"
	catalogService "github.com/m04kA/SMC-RoomAssignmentService/internal/service/catalog"
	checkAssignmentUC "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/check_assignment"
	createAssignmentUC "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/create_assignment"
	deleteReservationUC "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/delete_reservation"
	getAvailabilityGridUC "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/get_availability_grid"
	updateAssignmentUC "github.com/m04kA/SMC-RoomAssignmentService/internal/usecase/update_assignment"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/logger"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/metrics"
	"github.com/m04kA/SMC-RoomAssignmentService/pkg/txmanager"
)

const defaultConfigPath = "config.toml"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load(defaultConfigPath)
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

	log.Info("Starting SMC-RoomAssignmentService...")

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

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)

	// Репозитории и менеджер транзакций
	assignmentRepository := assignmentRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Клиент каталога номеров
	catalogClient := roomCatalogClient.NewClient(
		cfg.RoomCatalog.URL,
		time.Duration(cfg.RoomCatalog.Timeout)*time.Second,
		cfg.RoomCatalog.RetryCount,
		log,
	)
	log.Info("Room catalog client initialized (url=%s, timeout=%ds, retries=%d)",
		cfg.RoomCatalog.URL, cfg.RoomCatalog.Timeout, cfg.RoomCatalog.RetryCount)

	// Кеш каталога (если включен); интерфейсная переменная остается nil при выключенном кеше
	var roomCache catalogService.RoomCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unreachable at %s, room cache will fall back to catalog on every miss: %v",
				cfg.Redis.Addr, err)
		}
		cancelPing()

		roomCache = roomsCache.NewCache(redisClient, time.Duration(cfg.Redis.RoomsTTL)*time.Second)
		log.Info("Room catalog cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.RoomsTTL)
	}

	calculator := availability.NewCalculator(cfg.Pricing.OverflowRatePerPerson)
	log.Info("Pricing: overflow rate per person per night = %d", calculator.OverflowRate())

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(catalogClient, roomCache, log)
	assignmentsSvc := assignmentsService.NewService(assignmentRepository, reservationRepository, catalogSvc, log)

	// Инициализируем use cases
	checkAssignmentUseCase := checkAssignmentUC.NewUseCase(assignmentRepository, catalogSvc, calculator, log)
	createAssignmentUseCase := createAssignmentUC.NewUseCase(assignmentRepository, catalogSvc, calculator, txMgr, log)
	updateAssignmentUseCase := updateAssignmentUC.NewUseCase(assignmentRepository, catalogSvc, calculator, txMgr, log)
	getAvailabilityGridUseCase := getAvailabilityGridUC.NewUseCase(assignmentRepository, catalogSvc, cfg.Grid.MaxWindowDays, log)
	deleteReservationUseCase := deleteReservationUC.NewUseCase(assignmentRepository, reservationRepository, log)

	// Инициализируем handlers
	getRooms := getRoomsHandler.NewHandler(catalogSvc, log)
	getAvailabilityGrid := getAvailabilityGridHandler.NewHandler(getAvailabilityGridUseCase, log)
	checkAssignment := checkAssignmentHandler.NewHandler(checkAssignmentUseCase, log)
	createAssignment := createAssignmentHandler.NewHandler(createAssignmentUseCase, log)
	getAssignment := getAssignmentHandler.NewHandler(assignmentsSvc, log)
	updateAssignment := updateAssignmentHandler.NewHandler(updateAssignmentUseCase, log)
	deleteAssignment := deleteAssignmentHandler.NewHandler(assignmentsSvc, log)
	getReservationSummary := getReservationSummaryHandler.NewHandler(assignmentsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(deleteReservationUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Каталог и сетка ---
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailabilityGrid.Handle).Methods(http.MethodGet)

	// --- Назначения ---
	api.HandleFunc("/assignments/check", checkAssignment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/assignments", createAssignment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/assignments/{assignmentId}", getAssignment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/assignments/{assignmentId}", updateAssignment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/assignments/{assignmentId}", deleteAssignment.Handle).Methods(http.MethodDelete)

	// --- Брони ---
	api.HandleFunc("/reservations/{reservationId}/summary", getReservationSummary.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
