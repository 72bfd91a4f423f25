package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/skillswap-backend/internal/config"
	"github.com/ignatzorin/skillswap-backend/internal/db"
	httpHandlers "github.com/ignatzorin/skillswap-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/skillswap-backend/internal/http/router"
	"github.com/ignatzorin/skillswap-backend/internal/logger"
	"github.com/ignatzorin/skillswap-backend/internal/repository"
	"github.com/ignatzorin/skillswap-backend/internal/service"
	"github.com/ignatzorin/skillswap-backend/internal/storage"
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
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
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

	// Вспомогательные сервисы.
	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	avatarStorage, err := storage.NewAvatarStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	cache := service.NewCacheService()

	// Репозитории.
	userRepo := repository.NewUserRepository(dbConn)
	skillRepo := repository.NewSkillRepository(dbConn)
	profileRepo := repository.NewSkillProfileRepository(dbConn)
	matchRepo := repository.NewMatchRepository(dbConn)
	connectionRepo := repository.NewConnectionRepository(dbConn)
	messageRepo := repository.NewMessageRepository(dbConn)
	reviewRepo := repository.NewReviewRepository(dbConn)

	// Сервисы.
	authService := service.NewAuthService(userRepo, tokenManager)
	catalogService := service.NewCatalogService(skillRepo, cache, cfg.CatalogCacheTTL)
	skillProfileService := service.NewSkillProfileService(profileRepo, skillRepo)
	matchService := service.NewMatchService(matchRepo, profileRepo)
	connectionService := service.NewConnectionService(connectionRepo, profileRepo, userRepo, cache)
	messageService := service.NewMessageService(messageRepo, userRepo)
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	searchService := service.NewSearchService(userRepo)
	seedService := service.NewSeedService(userRepo, skillRepo, profileRepo)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	profileHandler := httpHandlers.NewProfileHandler(userRepo, skillProfileService, reviewService)
	skillHandler := httpHandlers.NewSkillHandler(catalogService, skillProfileService)
	matchHandler := httpHandlers.NewMatchHandler(matchService)
	connectionHandler := httpHandlers.NewConnectionHandler(connectionService)
	messageHandler := httpHandlers.NewMessageHandler(messageService)
	reviewHandler := httpHandlers.NewReviewHandler(reviewService)
	searchHandler := httpHandlers.NewSearchHandler(searchService)
	mediaHandler := httpHandlers.NewMediaHandler(userRepo, avatarStorage)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	seedHandler := httpHandlers.NewSeedHandler(seedService)

	// Роутер.
	engine := httpRouter.SetupRouter(
		cfg,
		authHandler,
		profileHandler,
		skillHandler,
		matchHandler,
		connectionHandler,
		messageHandler,
		reviewHandler,
		searchHandler,
		mediaHandler,
		healthHandler,
		seedHandler,
		tokenManager,
	)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

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
