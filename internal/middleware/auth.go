package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/troopay/troopay-backend/internal/config"
	"github.com/troopay/troopay-backend/internal/dto"
)

func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure{
				Status:  false,
				Message: "Unauthorized: invalid or expired token",
				Error:   dto.CodeUserDoesNotExist,
			})
		},
	})
}
