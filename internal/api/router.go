package api

import (
	"net/http"
	"time"

	"dsa_tracker/internal/api/handler"
	"dsa_tracker/internal/api/middleware"
	"dsa_tracker/internal/app/service"
	"dsa_tracker/internal/common/security"
	"dsa_tracker/internal/platform/config"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-chi/jwtauth/v5"
)

// Request timeouts are scoped per route group: sync requests block on upstream
// retries and batched fan-out, so they get the full server write window while
// everything else is cut off at 60s.
const (
	standardTimeout = 60 * time.Second
	syncTimeout     = 120 * time.Second
)

func NewRouter(
	authService *service.AuthService,
	questionService *service.QuestionService,
	userService *service.UserService,
	progressService *service.ProgressService,
	syncService *service.SyncService,
	leaderboardService *service.LeaderboardService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger) // Chi's logger
	r.Use(chiMiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.AppConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Per-client-address rate limiting
	r.Use(httprate.LimitByIP(config.AppConfig.RateLimitRequests, config.AppConfig.RateLimitWindow))

	// Verifies a token when present and puts claims in context; enforcement
	// happens in middleware.Authenticator on the routes that require auth.
	r.Use(jwtauth.Verifier(security.TokenAuth))

	r.Group(func(std chi.Router) {
		std.Use(chiMiddleware.Timeout(standardTimeout))

		// Public health check
		std.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// Question bank CRUD (reads public, mutations admin)
		questionHandler := handler.NewQuestionHandler(questionService)
		std.Route("/questions", questionHandler.RegisterRoutes)
	})

	r.Route("/api", func(api chi.Router) {
		api.Group(func(std chi.Router) {
			std.Use(chiMiddleware.Timeout(standardTimeout))

			// Auth routes (public)
			authHandler := handler.NewAuthHandler(authService)
			std.Route("/auth", authHandler.RegisterRoutes)

			// User profiles (authenticated; admin for creation)
			userHandler := handler.NewUserHandler(userService)
			std.Route("/users", userHandler.RegisterRoutes)

			// Progress (authenticated)
			progressHandler := handler.NewProgressHandler(progressService)
			std.Route("/progress", progressHandler.RegisterRoutes)

			// Leaderboard (public)
			leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
			std.Get("/leaderboard", leaderboardHandler.GetLeaderboard)
		})

		// Platform sync (authenticated; bulk endpoint admin only)
		syncHandler := handler.NewSyncHandler(syncService)
		api.Group(func(authed chi.Router) {
			authed.Use(chiMiddleware.Timeout(syncTimeout))
			authed.Use(middleware.Authenticator)
			syncHandler.RegisterRoutes(authed)

			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.AdminOnly)
				admin.Post("/sync-all-users-progress", syncHandler.SyncAllUsers)
			})
		})
	})

	return r
}
