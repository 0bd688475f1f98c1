package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/NITHEESH-14/CrisisSync/internal/config"
	"github.com/NITHEESH-14/CrisisSync/internal/feed"
	v1 "github.com/NITHEESH-14/CrisisSync/internal/handler/http/v1"
	"github.com/NITHEESH-14/CrisisSync/internal/location"
	"github.com/NITHEESH-14/CrisisSync/internal/metrics"
	"github.com/NITHEESH-14/CrisisSync/internal/repository"
	"github.com/NITHEESH-14/CrisisSync/internal/service"
	"github.com/NITHEESH-14/CrisisSync/internal/webhook"
	"github.com/NITHEESH-14/CrisisSync/pkg/clock"
	"github.com/NITHEESH-14/CrisisSync/pkg/logger"
	"github.com/NITHEESH-14/CrisisSync/pkg/postgres"
	redisclient "github.com/NITHEESH-14/CrisisSync/pkg/redis"

	_ "github.com/NITHEESH-14/CrisisSync/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		return err
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, redisclient.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	clk := clock.Real()
	m := metrics.New()

	// Лента: локальный хаб и мост через Redis между экземплярами
	hub := feed.NewHub(log, cfg.FeedBufferSize, m)
	bridge := feed.NewRedisBridge(redisClient, hub, log)
	go bridge.Listen(ctx, clk)

	// Инициализация издателя и воркера вебхуков
	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg, m)
	webhookWorker.Start(ctx)

	// Геолокация по сигналам устройства, без ключа только ручной ввод
	var positionSource location.PositionSource
	if cfg.GoogleMapsAPIKey != "" {
		googleSource, err := location.NewGoogleSource(cfg.GoogleMapsAPIKey, cfg.GeolocationRatePerSecond)
		if err != nil {
			return fmt.Errorf("failed to create geolocation client: %w", err)
		}
		positionSource = googleSource
	} else {
		log.Warn("GOOGLE_MAPS_API_KEY is not set, location acquisition will ask for manual entry")
	}
	acquirer := location.NewAcquirer(positionSource, log, m)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient, cfg.IncidentCacheTTL)
	resolutionRepo := repository.NewResolutionLogRepository(dbpool)
	profileRepo := repository.NewProfileRepository(dbpool)
	joinHistory := repository.NewJoinHistory(redisClient)
	wizardStore := repository.NewWizardStore(redisClient, cfg.WizardTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(incidentRepo, bridge, webhookPublisher, clk, log, m)
	pledgeService := service.NewPledgeService(incidentRepo, profileRepo, joinHistory, bridge, clk, log)
	resolutionService := service.NewResolutionService(incidentRepo, resolutionRepo, bridge, clk, log)
	profileService := service.NewProfileService(profileRepo, log)
	wizardService := service.NewWizardService(wizardStore, incidentService, acquirer, clk, log)

	synchronizer := feed.NewSynchronizer(hub, incidentService, clk, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(v1.Services{
		Incidents:   incidentService,
		Pledges:     pledgeService,
		Resolutions: resolutionService,
		Wizard:      wizardService,
		Profiles:    profileService,
		Location:    acquirer,
		Feed:        synchronizer,
		Alerts:      m,
		Clock:       clk,
	}, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return fmt.Errorf("invalid trusted proxies: %w", err)
	}
	router.Use(gin.Recovery(), requestLogger(log), m.GinMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(m.Handler()))
	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	select {
	case <-ctx.Done():
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		return fmt.Errorf("error starting HTTP server: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// SSE-соединения живут до отмены контекста запроса, поэтому ждём не дольше таймаута
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("Server forced to shutdown")
	}

	log.Info("Server gracefully stopped")
	return nil
}

// requestLogger пишет одну строку на запрос через logrus
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if c.Writer.Status() >= http.StatusInternalServerError {
			entry.Warn("HTTP request failed")
			return
		}
		entry.Debug("HTTP request")
	}
}
