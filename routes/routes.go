package routes

import (
	"log/slog"
	"net/http"

	_ "github.com/Dosada05/boardgame-tracker/docs" // Регистрирует OpenAPI-документ для Swagger UI
	"github.com/Dosada05/boardgame-tracker/handlers"
	"github.com/Dosada05/boardgame-tracker/middleware"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware" // Alias to avoid conflict
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

const DefaultAllowedOrigin = "http://localhost:8080"

func SetupRoutes(
	router chi.Router,
	logger *slog.Logger,
	allowedOrigins []string,
	gameHandler *handlers.GameHandler,
	playerHandler *handlers.PlayerHandler,
	sessionHandler *handlers.SessionHandler,
	sessionPlayersHandler *handlers.SessionPlayersHandler,
	healthHandler *handlers.HealthHandler,
) {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{DefaultAllowedOrigin}
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(middleware.RequestLogger(logger))
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", healthHandler.Health)
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/games", func(r chi.Router) {
		r.Get("/", gameHandler.GetAllGames)
		r.Post("/", gameHandler.CreateGame)
		r.Get("/{gameID}", gameHandler.GetGameByID)
		r.Put("/{gameID}", gameHandler.UpdateGame)
		r.Delete("/{gameID}", gameHandler.DeleteGame)
	})

	router.Route("/players", func(r chi.Router) {
		r.Get("/", playerHandler.GetAllPlayers)
		r.Post("/", playerHandler.CreatePlayer)
		r.Get("/{playerID}", playerHandler.GetPlayerByID)
		r.Put("/{playerID}", playerHandler.UpdatePlayer)
		r.Delete("/{playerID}", playerHandler.DeletePlayer)
	})

	router.Route("/sessions", func(r chi.Router) {
		r.Get("/", sessionHandler.GetAllSessions)
		r.Post("/", sessionHandler.CreateSession)
		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", sessionHandler.GetSessionByID)
			r.Put("/", sessionHandler.UpdateSession)
			r.Delete("/", sessionHandler.DeleteSession)
			r.Put("/players", sessionHandler.MergeSessionPlayers)
		})
	})

	router.Route("/session-players", func(r chi.Router) {
		r.Get("/", sessionPlayersHandler.GetAllSessionPlayers)
		r.Post("/", sessionPlayersHandler.CreateSessionPlayers)
		r.Put("/merge", sessionPlayersHandler.MergeSessionPlayers)
		r.Get("/{sessionPlayersID}", sessionPlayersHandler.GetSessionPlayersByID)
		r.Put("/{sessionPlayersID}", sessionPlayersHandler.UpdateSessionPlayers)
		r.Delete("/{sessionPlayersID}", sessionPlayersHandler.DeleteSessionPlayers)
	})
}
