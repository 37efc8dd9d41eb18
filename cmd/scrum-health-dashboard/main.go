package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// Application
	applicationPort "github.com/dreschagin/scrum-health-dashboard/internal/application/port"
	"github.com/dreschagin/scrum-health-dashboard/internal/application/usecase"

	// Domain
	"github.com/dreschagin/scrum-health-dashboard/internal/domain/service"

	// Infrastructure
	redisCache "github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/cache/redis"
	"github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/export"
	natsInfra "github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/messaging/nats"
	wsInfra "github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/notification/websocket"
	"github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/persistence/postgres"
	s3storage "github.com/dreschagin/scrum-health-dashboard/internal/infrastructure/storage/s3"

	// Interfaces
	httpInterface "github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/handler"
	"github.com/dreschagin/scrum-health-dashboard/internal/interfaces/http/middleware"

	// Shared
	"github.com/dreschagin/scrum-health-dashboard/pkg/config"
	"github.com/dreschagin/scrum-health-dashboard/pkg/logger"

	_ "github.com/lib/pq"
)

func main() {
	// 1. Загружаем конфигурацию
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. Инициализируем logger
	log := logger.New(os.Getenv("LOG_LEVEL"))
	log.Info("Starting Scrum Health Dashboard")

	// 3. Подключаемся к БД
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Error("Failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	// Проверяем подключение
	if err := db.Ping(); err != nil {
		log.Error("Failed to ping database", err)
		os.Exit(1)
	}
	log.Info("Database connected successfully")

	if err := postgres.EnsureSchema(context.Background(), db); err != nil {
		log.Error("Failed to ensure database schema", err)
		os.Exit(1)
	}

	// 4. Dependency Injection - Infrastructure Layer

	// Repositories
	teamRepository := postgres.NewPostgresTeamRepository(db)
	metricRepository := postgres.NewPostgresHealthMetricRepository(db)
	configRepository := postgres.NewPostgresMetricConfigRepository(db)
	retroRepository := postgres.NewPostgresRetroRepository(db)
	calculationRepository := postgres.NewPostgresSprintCalculationRepository(db)

	// WebSocket Hub
	hub := wsInfra.NewHub(log)

	// 5. Dependency Injection - Domain Layer

	classifier := service.NewThresholdClassifier()
	projector := service.NewVelocityProjector()

	// 5.5. Redis Cache
	var cache applicationPort.Cache
	if cfg.Redis.Enabled {
		cacheImpl, initErr := redisCache.NewRedisCache(
			cfg.Redis.Host,
			cfg.Redis.Port,
			cfg.Redis.Password,
			cfg.Redis.DB,
			cfg.Redis.TTL,
			cfg.Redis.PoolSize,
			cfg.Redis.MinIdleConns,
			cfg.Redis.DialTimeout,
			cfg.Redis.ReadTimeout,
			cfg.Redis.WriteTimeout,
		)
		if initErr != nil {
			log.Warn("Failed to connect to Redis, continuing without cache", "error", initErr.Error())
		} else {
			cache = cacheImpl
			defer cache.Close()
			log.Info("Redis cache initialized", "host", cfg.Redis.Host, "ttl", cfg.Redis.TTL.String())
		}
	} else {
		log.Warn("Redis cache is disabled")
	}

	// 5.6. NATS Event Publisher
	var eventPublisher applicationPort.EventPublisher
	if cfg.NATS.Enabled {
		publisherImpl, initErr := natsInfra.NewNATSPublisher(cfg.NATS.URL, log)
		if initErr != nil {
			log.Warn("Failed to connect to NATS, continuing without event publishing", "error", initErr.Error())
		} else {
			eventPublisher = publisherImpl
			defer eventPublisher.Close()
			log.Info("NATS event publisher initialized", "url", cfg.NATS.URL)
		}
	} else {
		log.Warn("NATS event publishing is disabled")
	}

	// 5.7. S3 Export Archive
	var exportArchive applicationPort.ExportArchive
	if cfg.Export.ArchiveEnabled {
		archiveImpl, initErr := s3storage.NewExportArchive(context.Background(), s3storage.Config{
			Bucket:          cfg.Export.Bucket,
			Region:          cfg.Export.Region,
			Endpoint:        cfg.Export.Endpoint,
			AccessKeyID:     cfg.Export.AccessKeyID,
			SecretAccessKey: cfg.Export.SecretAccessKey,
			UsePathStyle:    cfg.Export.UsePathStyle,
			KeyPrefix:       cfg.Export.KeyPrefix,
			PresignedTTL:    cfg.Export.PresignedTTL,
		})
		if initErr != nil {
			log.Error("Failed to initialize export archive", initErr)
			os.Exit(1)
		}
		exportArchive = archiveImpl
		log.Info("Export archive initialized", "bucket", cfg.Export.Bucket)
	} else {
		log.Warn("Export archiving is disabled, exports are download-only")
	}

	// 6. Dependency Injection - Application Layer (Use Cases)

	createTeamUC := usecase.NewCreateTeamUseCase(teamRepository, configRepository, log)
	updateTeamUC := usecase.NewUpdateTeamUseCase(teamRepository, log)
	listTeamsUC := usecase.NewListTeamsUseCase(teamRepository, log)

	configureThresholdsUC := usecase.NewConfigureThresholdsUseCase(
		teamRepository,
		configRepository,
		cache, // Can be nil if Redis disabled
		log,
	)

	recordMetricUC := usecase.NewRecordHealthMetricUseCase(
		metricRepository,
		configRepository,
		teamRepository,
		classifier,
		cache,          // Can be nil if Redis disabled
		eventPublisher, // Can be nil if NATS disabled
		hub,
		log,
	)

	approveMetricUC := usecase.NewApproveHealthMetricUseCase(
		metricRepository,
		configRepository,
		classifier,
		cache,
		eventPublisher,
		hub,
		log,
	)

	teamHealthUC := usecase.NewGetTeamHealthUseCase(
		teamRepository,
		metricRepository,
		configRepository,
		classifier,
		cache,
		log,
	)

	redMetricsUC := usecase.NewListRedMetricsUseCase(
		teamRepository,
		metricRepository,
		configRepository,
		classifier,
		log,
	)

	projectVelocityUC := usecase.NewProjectVelocityUseCase(projector, calculationRepository, teamRepository, log)
	retroUC := usecase.NewRetrospectiveUseCase(retroRepository, teamRepository, log)

	exportUC := usecase.NewExportHealthMetricsUseCase(
		teamRepository,
		metricRepository,
		configRepository,
		classifier,
		map[string]applicationPort.ExportEncoder{
			"csv":  export.NewCSVEncoder(),
			"json": export.NewJSONEncoder(),
		},
		exportArchive, // Can be nil if archiving disabled
		log,
	)

	// 7. Dependency Injection - Interfaces Layer (HTTP Handlers)

	authConfig := middleware.AuthConfig{
		Enabled:     cfg.Security.AuthEnabled,
		BearerToken: cfg.Security.AuthToken,
	}

	teamHandler := handler.NewTeamHandler(createTeamUC, updateTeamUC, listTeamsUC, log)
	metricConfigHandler := handler.NewMetricConfigHandler(configureThresholdsUC, log)
	healthMetricHandler := handler.NewHealthMetricHandler(recordMetricUC, approveMetricUC, teamHealthUC, redMetricsUC, log)
	velocityHandler := handler.NewVelocityHandler(projectVelocityUC, log)
	retroHandler := handler.NewRetroHandler(retroUC, log)
	exportHandler := handler.NewExportHandler(exportUC, log)
	websocketHandler := handler.NewWebSocketHandler(hub, cfg.Security.AllowedOrigins, authConfig, log)
	authAPIHandler := handler.NewAuthAPIHandler(authConfig, log)

	// Router
	router := httpInterface.NewRouter(
		teamHandler,
		metricConfigHandler,
		healthMetricHandler,
		velocityHandler,
		retroHandler,
		exportHandler,
		websocketHandler,
		authAPIHandler,
		cfg.Security,
		log,
	)

	// 8. Запускаем фоновые процессы

	// Запускаем WebSocket hub
	go hub.Run()
	log.Info("WebSocket hub started")

	// 9. Настраиваем HTTP сервер

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Канал для получения сигналов ОС
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Запускаем сервер в отдельной goroutine
	go func() {
		log.Info("HTTP server starting", "port", cfg.Server.Port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server failed", err)
			os.Exit(1)
		}
	}()

	// 10. Ожидаем сигнал для graceful shutdown

	<-sigChan
	log.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped gracefully")
}
