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

	cancelAppointmentHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/create_appointment"
	createUnregisteredClientHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/create_unregistered_client"
	getAppointmentHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/get_appointment"
	getClientAppointmentsHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/get_client_appointments"
	getDayScheduleHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/get_day_schedule"
	getFreeIntervalsHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/get_free_intervals"
	getMonthAvailabilityHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/get_month_availability"
	getWorkingHoursHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/get_working_hours"
	listServicesHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/list_services"
	updateAppointmentHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/update_appointment"
	updateWorkingHoursHandler "github.com/salonik/SLN-BookingService/internal/api/handlers/update_working_hours"
	"github.com/salonik/SLN-BookingService/internal/api/middleware"
	"github.com/salonik/SLN-BookingService/internal/config"
	"github.com/salonik/SLN-BookingService/internal/domain"
	appointmentRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/appointment"
	clientRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/client"
	notificationRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/notification"
	salonRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/salon"
	serviceRepo "github.com/salonik/SLN-BookingService/internal/infra/storage/service"
	accountsClient "github.com/salonik/SLN-BookingService/internal/integrations/accounts"
	appointmentsService "github.com/salonik/SLN-BookingService/internal/service/appointments"
	notificationsService "github.com/salonik/SLN-BookingService/internal/service/notifications"
	salonService "github.com/salonik/SLN-BookingService/internal/service/salon"
	createAppointmentUC "github.com/salonik/SLN-BookingService/internal/usecase/create_appointment"
	getDayGridUC "github.com/salonik/SLN-BookingService/internal/usecase/get_day_grid"
	getFreeIntervalsUC "github.com/salonik/SLN-BookingService/internal/usecase/get_free_intervals"
	getMonthAvailabilityUC "github.com/salonik/SLN-BookingService/internal/usecase/get_month_availability"
	updateAppointmentUC "github.com/salonik/SLN-BookingService/internal/usecase/update_appointment"
	"github.com/salonik/SLN-BookingService/pkg/dbmetrics"
	"github.com/salonik/SLN-BookingService/pkg/logger"
	"github.com/salonik/SLN-BookingService/pkg/metrics"
	"github.com/salonik/SLN-BookingService/pkg/simpletxmanager"
	"github.com/salonik/SLN-BookingService/pkg/txmanager"
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

	log.Info("Starting SLN-BookingService...")
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

	// Клиент accounts-service (данные зарегистрированных клиентов)
	accounts := accountsClient.NewClient(
		cfg.Accounts.URL,
		time.Duration(cfg.Accounts.Timeout)*time.Second,
		log,
	)
	log.Info("Accounts client initialized (url=%s, timeout=%ds)", cfg.Accounts.URL, cfg.Accounts.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		clientRepository       *clientRepo.Repository
		salonRepository        *salonRepo.Repository
		serviceRepository      *serviceRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	notifier := notificationsService.New(notificationRepository)
	appointmentsSvc := appointmentsService.New(appointmentRepository, notifier, log)
	salonSvc := salonService.New(salonRepository, log)

	durationPolicy := domain.DurationPolicy(cfg.Booking.DurationPolicy)

	var blockedWeekday *time.Weekday
	if cfg.Booking.BlockedWeekday != "" {
		if wd, ok := parseWeekday(cfg.Booking.BlockedWeekday); ok {
			blockedWeekday = &wd
			log.Info("Month availability: weekday %s is blocked for booking", cfg.Booking.BlockedWeekday)
		}
	}

	// Инициализируем use cases
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		clientRepository,
		serviceRepository,
		salonRepository,
		accounts,
		notifier,
		txMgr,
		durationPolicy,
		log,
	)

	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		salonRepository,
		notifier,
		txMgr,
		durationPolicy,
		log,
	)

	getFreeIntervalsUseCase := getFreeIntervalsUC.NewUseCase(appointmentRepository, salonRepository, log)
	getDayGridUseCase := getDayGridUC.NewUseCase(appointmentRepository, salonRepository, log)
	getMonthAvailabilityUseCase := getMonthAvailabilityUC.NewUseCase(
		appointmentRepository,
		salonRepository,
		blockedWeekday,
		log,
	)

	// Инициализируем handlers
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayGridUseCase, log)
	getFreeIntervals := getFreeIntervalsHandler.NewHandler(getFreeIntervalsUseCase, log)
	getMonthAvailability := getMonthAvailabilityHandler.NewHandler(getMonthAvailabilityUseCase, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(salonSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(salonSvc, log)
	listServices := listServicesHandler.NewHandler(serviceRepository, log)
	createUnregisteredClient := createUnregisteredClientHandler.NewHandler(clientRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка дня, свободные интервалы и доступность месяца
	api.HandleFunc("/schedule/day", getDaySchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/free-intervals", getFreeIntervals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/month", getMonthAvailability.Handle).Methods(http.MethodGet)

	// График работы салона и прайс
	api.HandleFunc("/salon/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/clients/unregistered", createUnregisteredClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{clientId}/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Настройки салона ---
	protected.HandleFunc("/salon/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

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

func parseWeekday(name string) (time.Weekday, bool) {
	weekdays := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	wd, ok := weekdays[name]
	return wd, ok
}
