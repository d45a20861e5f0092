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

	createVisitHandler "github.com/m04kA/VetClinic-VisitService/internal/api/handlers/create_visit"
	deleteVisitHandler "github.com/m04kA/VetClinic-VisitService/internal/api/handlers/delete_visit"
	finalizeVisitHandler "github.com/m04kA/VetClinic-VisitService/internal/api/handlers/finalize_visit"
	getAvailableVisitsHandler "github.com/m04kA/VetClinic-VisitService/internal/api/handlers/get_available_visits"
	getVisitHandler "github.com/m04kA/VetClinic-VisitService/internal/api/handlers/get_visit"
	listVisitsHandler "github.com/m04kA/VetClinic-VisitService/internal/api/handlers/list_visits"
	"github.com/m04kA/VetClinic-VisitService/internal/api/middleware"
	"github.com/m04kA/VetClinic-VisitService/internal/config"
	visitRepo "github.com/m04kA/VetClinic-VisitService/internal/infra/storage/visit"
	clinicServiceClient "github.com/m04kA/VetClinic-VisitService/internal/integrations/clinicservice"
	visitsService "github.com/m04kA/VetClinic-VisitService/internal/service/visits"
	createVisitUC "github.com/m04kA/VetClinic-VisitService/internal/usecase/create_visit"
	getAvailableVisitsUC "github.com/m04kA/VetClinic-VisitService/internal/usecase/get_available_visits"
	"github.com/m04kA/VetClinic-VisitService/pkg/dbmetrics"
	"github.com/m04kA/VetClinic-VisitService/pkg/logger"
	"github.com/m04kA/VetClinic-VisitService/pkg/metrics"
	"github.com/m04kA/VetClinic-VisitService/pkg/simpletxmanager"
	"github.com/m04kA/VetClinic-VisitService/pkg/txmanager"
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

	log.Info("Starting VetClinic-VisitService...")
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
	log.Debug("Connection pool configured (max_open=%d, max_idle=%d, lifetime=%ds)",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент CatalogService (ветеринары, питомцы, кабинеты)
	clinicClient := clinicServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий (с метриками или без)
	var (
		visitRepository *visitRepo.Repository
		txMgr           TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		visitRepository = visitRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		visitRepository = visitRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	visitsSvc := visitsService.NewService(visitRepository, log)

	// Инициализируем use cases
	createVisitUseCase := createVisitUC.NewUseCase(
		visitRepository,
		clinicClient,
		txMgr,
		log,
	)

	getAvailableVisitsUseCase := getAvailableVisitsUC.NewUseCase(
		visitRepository,
		clinicClient,
		log,
	)

	// Инициализируем handlers
	createVisit := createVisitHandler.NewHandler(createVisitUseCase, log)
	getAvailableVisits := getAvailableVisitsHandler.NewHandler(getAvailableVisitsUseCase, log)
	getVisit := getVisitHandler.NewHandler(visitsSvc, log)
	listVisits := listVisitsHandler.NewHandler(visitsSvc, log)
	finalizeVisit := finalizeVisitHandler.NewHandler(visitsSvc, log)
	deleteVisit := deleteVisitHandler.NewHandler(visitsSvc, log)

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
	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Поиск свободных интервалов (регистрируется до /visits/{id},
	// иначе "available" матчится как visitId)
	api.HandleFunc("/visits/available", getAvailableVisits.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание визита
	protected.HandleFunc("/visits", createVisit.Handle).Methods(http.MethodPost)

	// Список визитов
	protected.HandleFunc("/visits", listVisits.Handle).Methods(http.MethodGet)

	// Финализация визита (completed / cancelled)
	protected.HandleFunc("/visits", finalizeVisit.Handle).Methods(http.MethodPatch)

	// Получение визита по ID
	protected.HandleFunc("/visits/{id}", getVisit.Handle).Methods(http.MethodGet)

	// Удаление визита
	protected.HandleFunc("/visits/{id}", deleteVisit.Handle).Methods(http.MethodDelete)

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
