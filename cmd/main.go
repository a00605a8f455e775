package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shenikar/panic_alert_system/internal/config"
	"github.com/shenikar/panic_alert_system/internal/geolocation"
	v1 "github.com/shenikar/panic_alert_system/internal/handler/http/v1"
	"github.com/shenikar/panic_alert_system/internal/realtime"
	"github.com/shenikar/panic_alert_system/internal/repository"
	"github.com/shenikar/panic_alert_system/internal/service"
	"github.com/shenikar/panic_alert_system/internal/telegram"
	"github.com/shenikar/panic_alert_system/internal/webhook"
	"github.com/shenikar/panic_alert_system/pkg/i18n"
	"github.com/shenikar/panic_alert_system/pkg/logger"
	"github.com/shenikar/panic_alert_system/pkg/metrics"
	"github.com/shenikar/panic_alert_system/pkg/postgres"
	redisclient "github.com/shenikar/panic_alert_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/panic_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Panic Alert System API
// @version 1.0
// @description Community panic-alert service: hold-to-trigger, responder fan-out, realtime inbox and admin queries.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newLocationProviders собирает провайдеров координат: устройство, затем GeoIP если база указана
func newLocationProviders(cfg *config.Config, log *logrus.Logger) ([]geolocation.PositionProvider, func()) {
	providers := []geolocation.PositionProvider{geolocation.NewDeviceProvider()}
	if cfg.GeoIPDatabasePath == "" {
		return providers, func() {}
	}

	geoIP, err := geolocation.NewGeoIPProvider(cfg.GeoIPDatabasePath)
	if err != nil {
		log.Warnf("GeoIP fallback disabled: %v", err)
		return providers, func() {}
	}
	log.Info("GeoIP fallback enabled")
	return append(providers, geoIP), func() {
		if err := geoIP.Close(); err != nil {
			log.Errorf("Failed to close geoip database: %v", err)
		}
	}
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Переводы сообщений
	translator, err := i18n.NewTranslator(cfg.DefaultLanguage)
	if err != nil {
		log.Fatalf("Failed to load translations: %v", err)
	}

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	appMetrics := metrics.New(registry)

	// Геолокация
	providers, closeProviders := newLocationProviders(cfg, log)
	defer closeProviders()
	geocoder := geolocation.NewNominatimGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout)
	resolver := geolocation.NewResolver(providers, geocoder, log, geolocation.Options{
		Freshness:      cfg.LocationCacheTTL,
		FixTimeout:     cfg.LocationFixTimeout,
		GeocodeTimeout: cfg.GeocoderTimeout,
	})
	defer resolver.Wait()

	// Бот для прямых сообщений ответственным
	telegramClient := telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramTimeout)
	if !telegramClient.Enabled() {
		log.Warn("TELEGRAM_BOT_TOKEN is not set, responder messages are disabled")
	}

	// Функция оповещения: напрямую или через очередь с воркером
	functionClient := webhook.NewFunctionClient(cfg.FunctionsURL, cfg.FunctionsServiceKey, cfg.WebhookSecret, cfg.WebhookTimeout)
	var notifier webhook.Notifier = functionClient
	if cfg.NotifyDelivery == config.NotifyDeliveryQueue {
		notifier = webhook.NewRedisQueueNotifier(redisClient)
		notificationWorker := webhook.NewWorker(redisClient, functionClient, log, cfg)
		notificationWorker.Start(ctx)
	}
	log.Infof("Notification delivery mode: %s", cfg.NotifyDelivery)

	// Канал изменений тревог
	broker := realtime.NewBroker(redisClient, log)

	// Инициализация репозиториев
	alertRepo := repository.NewPanicAlertRepository(dbpool)
	profileRepo := repository.NewProfileRepository(dbpool)

	// Инициализация сервисов
	alertService := service.NewPanicAlertService(
		alertRepo,
		profileRepo,
		resolver,
		telegramClient,
		notifier,
		broker,
		translator,
		appMetrics,
		log,
		cfg,
	)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, translator, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Метрики закрыты API ключом
	router.GET("/metrics",
		v1.APIKeyAuthMiddleware(cfg, log),
		gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})),
	)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и дожидаемся фоновых задач тревог
	cancel()
	if waiter, ok := alertService.(interface{ Wait() }); ok {
		waiter.Wait()
	}

	log.Info("Server gracefully stopped")
}
