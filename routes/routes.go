package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sportsgeo/tournament-finder/handlers"
	"github.com/sportsgeo/tournament-finder/middleware"
)

// SetupRoutes собирает маршрутизатор приложения.
func SetupRoutes(
	router *chi.Mux,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	registrationHandler *handlers.RegistrationHandler,
	teamHandler *handlers.TeamHandler,
	jwtSecret []byte,
	allowedOrigins []string,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", handlers.Health)

	// Публичные маршруты
	router.Post("/auth/signup", authHandler.SignUp)
	router.Post("/auth/login", authHandler.Login)
	router.Post("/init-data", tournamentHandler.Seed)
	router.Get("/tournaments", tournamentHandler.List)
	router.Get("/teams", teamHandler.List)

	// Маршруты, требующие аутентификации
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))

		r.Get("/me", authHandler.Me)
		r.Post("/tournaments", tournamentHandler.Create)
		r.Post("/tournaments/{tournamentID}/register", registrationHandler.Register)
		r.Get("/my-registrations", registrationHandler.ListMine)
		r.Post("/teams", teamHandler.Create)
	})
}
