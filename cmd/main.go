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
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	cancelReservationHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/cancel_reservation"
	createReservationHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/create_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_availability"
	getAvailabilityRulesHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_availability_rules"
	getReservationHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/get_reservation"
	listReservationsHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/list_reservations"
	updateAvailabilityRuleHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_availability_rule"
	updateReservationHandler "github.com/m04kA/SMC-VenueBooking/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/config"
	reservationsCache "github.com/m04kA/SMC-VenueBooking/internal/infra/cache/reservations"
	"github.com/m04kA/SMC-VenueBooking/internal/infra/events"
	availabilityRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/availability"
	facilityRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/reservation"
	availabilityService "github.com/m04kA/SMC-VenueBooking/internal/service/availability"
	"github.com/m04kA/SMC-VenueBooking/internal/service/conflicts"
	"github.com/m04kA/SMC-VenueBooking/internal/service/dispatch"
	reservationsService "github.com/m04kA/SMC-VenueBooking/internal/service/reservations"
	createReservationUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_availability"
	updateReservationUC "github.com/m04kA/SMC-VenueBooking/internal/usecase/update_reservation"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/jwtauth"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/metrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueBooking...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	// Методы *metrics.Metrics безопасны для nil, поэтому коллектор можно передавать всегда
	var (
		metricsCollector *metrics.Metrics
		dbCollector      dbmetrics.MetricsCollector
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
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

	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	facilityRepository := facilityRepo.NewRepository(wrappedDB)
	ruleRepository := availabilityRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)

	// Кэш снимков бронирований (без Redis работает как всегда пустой)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = reservationsCache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis: %v", err)
		}
		log.Info("Redis snapshot cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}
	snapshotCache := reservationsCache.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second, metricsCollector)
	defer snapshotCache.Close()

	// Публикация событий
	var publisher dispatch.EventPublisher = events.NoopPublisher{}
	if cfg.RabbitMQ.Enabled {
		amqpPublisher, err := events.NewPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			log.Fatal("Failed to connect to rabbitmq: %v", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
		log.Info("Reservation events are published to queue %q", cfg.RabbitMQ.Queue)
	}

	// Инициализируем сервисы
	dispatcher := dispatch.NewDispatcher(snapshotCache, publisher, metricsCollector, loc, log)
	conflictChecker := conflicts.NewChecker(reservationRepository, log)
	availabilitySvc := availabilityService.NewService(
		ruleRepository,
		facilityRepository,
		cfg.Scheduling.DefaultHours(),
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		dispatcher,
		metricsCollector,
		loc,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		facilityRepository,
		availabilitySvc,
		reservationRepository,
		snapshotCache,
		getAvailabilityUC.SlotParams{
			SlotDuration: cfg.Scheduling.SlotDuration(),
			LeadTime:     cfg.Scheduling.LeadTime(),
		},
		loc,
		log,
	)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		conflictChecker,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)
	updateReservationUseCase := updateReservationUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		conflictChecker,
		txMgr,
		dispatcher,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	updateReservation := updateReservationHandler.NewHandler(updateReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	getAvailabilityRules := getAvailabilityRulesHandler.NewHandler(availabilitySvc, log)
	updateAvailabilityRule := updateAvailabilityRuleHandler.NewHandler(availabilitySvc, log)

	verifier := jwtauth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := wrappedDB.PingContext(r.Context()); err != nil {
			log.Warn("GET /health - Database is unavailable: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты площадки на дату
	api.HandleFunc("/facilities/{facilityId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен с ролью администратора)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(verifier, cfg.Auth.AdminRole, log))

	// --- Бронирования ---
	admin.HandleFunc("/reservations", listReservations.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{reservationId}", cancelReservation.Handle).Methods(http.MethodDelete)

	// --- Расписание площадки ---
	admin.HandleFunc("/facilities/{facilityId}/availability-rules", getAvailabilityRules.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/facilities/{facilityId}/availability-rules/{dayOfWeek}", updateAvailabilityRule.Handle).
		Methods(http.MethodPut)

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
