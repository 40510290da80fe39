package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/boardgame-tracker/config"
	"github.com/Dosada05/boardgame-tracker/db"
	"github.com/Dosada05/boardgame-tracker/handlers"
	"github.com/Dosada05/boardgame-tracker/repositories"
	api "github.com/Dosada05/boardgame-tracker/routes"
	"github.com/Dosada05/boardgame-tracker/services"
	"github.com/go-chi/chi/v5"
)

const (
	dbConnectTimeout = 5 * time.Second
	shutdownTimeout  = 15 * time.Second
)

// @title Board game tracker API
// @version 1.0
// @description Games, players, play sessions and per-player session results.
// @BasePath /
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("database_driver", cfg.DatabaseDriver),
	)

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseDriver, cfg.DatabaseURL, dbConnectTimeout)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), dbConnectTimeout)
	err = db.Migrate(migrateCtx, dbConn)
	cancelMigrate()
	if err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database schema applied")

	// Инициализация репозиториев
	gameRepo := repositories.NewSQLGameRepository(dbConn)
	playerRepo := repositories.NewSQLPlayerRepository(dbConn)
	sessionRepo := repositories.NewSQLSessionRepository(dbConn)
	sessionPlayersRepo := repositories.NewSQLSessionPlayersRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	gameService := services.NewGameService(gameRepo)
	playerService := services.NewPlayerService(playerRepo)
	sessionService := services.NewSessionService(sessionRepo, gameRepo)
	sessionPlayersService := services.NewSessionPlayersService(sessionPlayersRepo, sessionRepo, playerRepo, logger)
	logger.Info("Services initialized")

	// Инициализация обработчиков HTTP
	gameHandler := handlers.NewGameHandler(gameService, logger)
	playerHandler := handlers.NewPlayerHandler(playerService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, sessionPlayersService, logger)
	sessionPlayersHandler := handlers.NewSessionPlayersHandler(sessionPlayersService, logger)
	healthHandler := handlers.NewHealthHandler(dbConn, logger)
	logger.Info("HTTP handlers initialized")

	// Настройка маршрутизатора
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		logger,
		cfg.CORSAllowedOrigins,
		gameHandler,
		playerHandler,
		sessionHandler,
		sessionPlayersHandler,
		healthHandler,
	)
	logger.Info("Routes configured", slog.Any("cors_origins", cfg.CORSAllowedOrigins))

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
