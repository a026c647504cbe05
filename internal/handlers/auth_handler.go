package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/troopay/troopay-backend/internal/authctx"
	"github.com/troopay/troopay-backend/internal/dto"
	"github.com/troopay/troopay-backend/internal/services"
)

type AuthHandler struct {
	authService     *services.AuthService
	recoveryService *services.RecoveryService
	googleClient    *services.GoogleClient
}

func NewAuthHandler(authService *services.AuthService, recoveryService *services.RecoveryService, googleClient *services.GoogleClient) *AuthHandler {
	return &AuthHandler{
		authService:     authService,
		recoveryService: recoveryService,
		googleClient:    googleClient,
	}
}

// Me echoes the verified token claims back to the caller.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims, err := authctx.Claims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Failure{
			Status: false, Message: "Unauthorized.", Error: dto.CodeUserDoesNotExist,
		})
	}
	return c.JSON(fiber.Map{"user": claims})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	user, token, err := h.authService.SignIn(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserDoesNotExist):
			return c.JSON(dto.Failure{
				Status: false, Message: "User does not exist.", Error: dto.CodeUserDoesNotExist,
			})
		case errors.Is(err, services.ErrInvalidPassword):
			return c.JSON(dto.Failure{
				Status: false, Message: "Invalid password.", Error: dto.CodeInvalidPassword,
			})
		}
		return err
	}

	return c.JSON(dto.SignInResponse{
		Status: true,
		Token:  token,
		User: dto.UserResponse{
			Firstname: user.FirstName,
			Lastname:  user.LastName,
			Email:     user.Email,
			AvatarURL: user.AvatarURL,
		},
	})
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req dto.SignUpRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	_, token, err := h.authService.SignUp(c.Context(), req.Firstname, req.Lastname, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGoogleAccount):
			return c.JSON(dto.Failure{
				Status: false, Message: "User authenticated with Google.", Error: dto.CodeUserAuthenticatedWithGoogle,
			})
		case errors.Is(err, services.ErrUserAlreadyExists):
			return c.JSON(dto.Failure{
				Status: false, Message: "User already registered.", Error: dto.CodeUserAlreadyExists,
			})
		}
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SignUpResponse{
		Status:  true,
		Message: "User registered successfully.",
		Token:   token,
	})
}

func (h *AuthHandler) GoogleAuth(c *fiber.Ctx) error {
	var req dto.GoogleAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	profile, err := h.googleClient.FetchProfile(c.Context(), req.AccessToken)
	if err != nil {
		return err
	}

	user, token, err := h.authService.GoogleAuth(c.Context(), profile)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"status": true,
		"token":  token,
		"user":   user,
	})
}

func (h *AuthHandler) PasswordRecovery(c *fiber.Ctx) error {
	var req dto.RecoveryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.recoveryService.RequestRecovery(c.Context(), req.Email); err != nil {
		if errors.Is(err, services.ErrUserDoesNotExist) {
			return c.JSON(dto.Failure{
				Status: false, Message: "User does not exist.", Error: dto.CodeUserDoesNotExist,
			})
		}
		return err
	}

	return c.JSON(dto.StatusResponse{Status: true})
}
