package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/escritoriopro/backoffice-api/internal/application/auth"
	"github.com/escritoriopro/backoffice-api/internal/application/dto"
)

// AuthHandler rota pública de login.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler constrói o handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login autentica email/senha e devolve um JWT (POST /api/auth/login).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo invalido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e password sao obrigatorios"})
	}

	result, err := h.uc.Login(c.Context(), in.Email, in.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(dto.LoginResponse{
		Token: result.Token,
		User: dto.UserResponse{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Role:  result.User.Role,
		},
	})
}
