package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/freshkeeper-backend/internal/config"
	"github.com/ignatzorin/freshkeeper-backend/internal/db"
	"github.com/ignatzorin/freshkeeper-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/freshkeeper-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/freshkeeper-backend/internal/http/router"
	"github.com/ignatzorin/freshkeeper-backend/internal/logger"
	"github.com/ignatzorin/freshkeeper-backend/internal/mail"
	"github.com/ignatzorin/freshkeeper-backend/internal/repository"
	"github.com/ignatzorin/freshkeeper-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Инициализируем вспомогательные сервисы.
	tokenManager, err := service.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		log.Fatalf("main: не удалось инициализировать менеджер токенов: %v", err)
	}

	mailSender, err := mail.NewSender(mail.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		CodeTTL:  cfg.VerificationCodeTTL,
	})
	if err != nil {
		log.Fatalf("main: не удалось подготовить почтовый транспорт: %v", err)
	}

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	itemRepo := repository.NewItemRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)
	verificationRepo := repository.NewVerificationRepository(dbConn)

	// Сервисы.
	verificationService := service.NewVerificationService(verificationRepo, mailSender, cfg.VerificationCodeTTL)
	authService := service.NewAuthService(userRepo, verificationService, tokenManager)
	notificationService := service.NewNotificationService(notificationRepo)
	inventoryService := service.NewInventoryService(itemRepo, notificationService)
	reportService := service.NewReportService(itemRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService, verificationService)
	inventoryHandler := httpHandlers.NewInventoryHandler(inventoryService)
	reportHandler := httpHandlers.NewReportHandler(reportService)
	notificationHandler := httpHandlers.NewNotificationHandler(notificationService)
	categoryHandler := httpHandlers.NewCategoryHandler()
	healthHandler := httpHandlers.NewHealthHandler(dbConn, mailSender)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, inventoryHandler, reportHandler, notificationHandler, categoryHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo("shutdown", func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
