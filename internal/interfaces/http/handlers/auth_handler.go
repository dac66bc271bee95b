package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/PavaniTiago/nps-feedback-api/internal/infrastructure/auth"
)

// AuthHandler troca a senha administrativa por um token
type AuthHandler struct {
	login  LoginService
	logger *zap.Logger
}

// NewAuthHandler cria uma nova instância de AuthHandler
func NewAuthHandler(login LoginService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{login: login, logger: logger}
}

type loginRequest struct {
	Password string `json:"senha"`
}

// Login valida a senha e devolve o bearer token
// @Router /api/admin/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Corpo da requisição inválido", "")
	}

	token, expiresAt, err := h.login.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			h.logger.Warn("tentativa de login administrativo recusada", requestID(c), zap.String("ip", c.IP()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Senha incorreta",
			})
		}
		h.logger.Error("Erro ao emitir token", requestID(c), zap.Error(err))
		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"token":    token,
		"expiraEm": expiresAt,
	})
}
