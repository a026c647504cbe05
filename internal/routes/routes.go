package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/troopay/troopay-backend/internal/config"
	"github.com/troopay/troopay-backend/internal/handlers"
	"github.com/troopay/troopay-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	memberHandler *handlers.MemberHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Auth — public
	api.Post("/sign-in", authHandler.SignIn)
	api.Post("/sign-up", authHandler.SignUp)
	api.Post("/google-auth", authHandler.GoogleAuth)
	api.Post("/password-recovery", authHandler.PasswordRecovery)

	// Protected routes (JWT required)
	api.Get("/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Get("/recent-members", middleware.JWTProtected(cfg), memberHandler.RecentMembers)
	api.Get("/groups/:id/members", middleware.JWTProtected(cfg), memberHandler.ListMembers)
	api.Patch("/groups/:id/members", middleware.JWTProtected(cfg), memberHandler.UpdateMembers)
	api.Delete("/groups/:id/members/:user_id", middleware.JWTProtected(cfg), memberHandler.RemoveMember)
}
