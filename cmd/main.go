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

	blockSlotHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/block_slot"
	cancelVisitsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/cancel_visits"
	confirmVisitsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/confirm_visits"
	createSlotHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/create_slot"
	getAgentAgendaHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_agent_agenda"
	getAgentSlotsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_agent_slots"
	getAvailableSlotsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_available_slots"
	getCustomerVisitsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_customer_visits"
	getPropertySlotsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_property_slots"
	getPropertyVisitsHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_property_visits"
	getVisitHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/get_visit"
	markVisitsDoneHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/mark_visits_done"
	requestVisitHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/request_visit"
	unblockSlotHandler "github.com/sgasoft/SGA-VisitService/internal/api/handlers/unblock_slot"
	"github.com/sgasoft/SGA-VisitService/internal/api/middleware"
	"github.com/sgasoft/SGA-VisitService/internal/config"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
	contactServiceClient "github.com/sgasoft/SGA-VisitService/internal/integrations/contactservice"
	slotsService "github.com/sgasoft/SGA-VisitService/internal/service/slots"
	visitsService "github.com/sgasoft/SGA-VisitService/internal/service/visits"
	cancelVisitUC "github.com/sgasoft/SGA-VisitService/internal/usecase/cancel_visit"
	confirmVisitUC "github.com/sgasoft/SGA-VisitService/internal/usecase/confirm_visit"
	createVisitUC "github.com/sgasoft/SGA-VisitService/internal/usecase/create_visit"
	getAvailableSlotsUC "github.com/sgasoft/SGA-VisitService/internal/usecase/get_available_slots"
	markVisitDoneUC "github.com/sgasoft/SGA-VisitService/internal/usecase/mark_visit_done"
	"github.com/sgasoft/SGA-VisitService/pkg/dbmetrics"
	"github.com/sgasoft/SGA-VisitService/pkg/logger"
	"github.com/sgasoft/SGA-VisitService/pkg/metrics"
	"github.com/sgasoft/SGA-VisitService/pkg/simpletxmanager"
	"github.com/sgasoft/SGA-VisitService/pkg/txmanager"
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

	log.Info("Starting SGA-VisitService...")
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

	// Инициализируем клиент ContactService
	contactClient := contactServiceClient.NewClient(
		cfg.ContactService.URL,
		time.Duration(cfg.ContactService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (ContactService=%s timeout=%ds)",
		cfg.ContactService.URL, cfg.ContactService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		slotRepository  *slotRepo.Repository
		visitRepository *visitRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		visitRepository = visitRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		visitRepository = visitRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, log)
	visitSvc := visitsService.NewService(visitRepository, log)

	// Инициализируем use cases
	createVisitUseCase := createVisitUC.NewUseCase(
		slotRepository,
		visitRepository,
		contactClient,
		txMgr,
		cfg.Scheduling.DefaultTimezone,
		log,
	)
	confirmVisitUseCase := confirmVisitUC.NewUseCase(visitRepository, slotRepository, txMgr, log)
	cancelVisitUseCase := cancelVisitUC.NewUseCase(visitRepository, slotRepository, txMgr, log)
	markVisitDoneUseCase := markVisitDoneUC.NewUseCase(visitRepository, txMgr, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		slotRepository,
		cfg.Scheduling.DefaultTimezone,
		log,
	)

	// Инициализируем handlers
	requestVisit := requestVisitHandler.NewHandler(createVisitUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getVisit := getVisitHandler.NewHandler(visitSvc, log)
	getAgentAgenda := getAgentAgendaHandler.NewHandler(visitSvc, log)
	getPropertyVisits := getPropertyVisitsHandler.NewHandler(visitSvc, log)
	getCustomerVisits := getCustomerVisitsHandler.NewHandler(visitSvc, log)
	confirmVisits := confirmVisitsHandler.NewHandler(confirmVisitUseCase, log)
	cancelVisits := cancelVisitsHandler.NewHandler(cancelVisitUseCase, log)
	markVisitsDone := markVisitsDoneHandler.NewHandler(markVisitDoneUseCase, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	blockSlot := blockSlotHandler.NewHandler(slotSvc, log)
	unblockSlot := unblockSlotHandler.NewHandler(slotSvc, log)
	getAgentSlots := getAgentSlotsHandler.NewHandler(slotSvc, log)
	getPropertySlots := getPropertySlotsHandler.NewHandler(slotSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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
	// PUBLIC ROUTES (портал, без аутентификации)
	// ============================================================

	// Доступные слоты недвижимости
	api.HandleFunc("/properties/{propertyId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Заявка на визит с портала
	api.HandleFunc("/properties/{propertyId}/visit-requests",
		requestVisit.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (back-office, требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Визиты ---
	// Получение визита по ID
	protected.HandleFunc("/visits/{visitId:[0-9]+}", getVisit.Handle).Methods(http.MethodGet)

	// Пакетные операции над визитами
	protected.HandleFunc("/visits/confirm", confirmVisits.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits/cancel", cancelVisits.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/visits/done", markVisitsDone.Handle).Methods(http.MethodPost)

	// Расписание агента и истории визитов
	protected.HandleFunc("/agents/{agentId}/visits", getAgentAgenda.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/properties/{propertyId}/visits", getPropertyVisits.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{customerId}/visits", getCustomerVisits.Handle).Methods(http.MethodGet)

	// --- Слоты доступности ---
	protected.HandleFunc("/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}/block", blockSlot.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/unblock", unblockSlot.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/agents/{agentId}/slots", getAgentSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/properties/{propertyId}/slots", getPropertySlots.Handle).Methods(http.MethodGet)

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
