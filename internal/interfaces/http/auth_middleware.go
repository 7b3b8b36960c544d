package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
	"github.com/smart-asset/smart-asset-api/pkg/jwt"
)

// Locals key para el email autenticado en Fiber.
const LocalEmail = "email"

// forbiddenMessage contrato del gate: tanto la falta de token como el rol
// incorrecto responden 401 con este cuerpo, sin distinguirse ante el
// cliente.
const forbiddenMessage = "forbidden access"

// AuthMiddleware valida el Bearer Token JWT y deja el email en c.Locals.
// Cualquier fallo (header ausente, formato distinto de "Bearer <token>",
// firma inválida, token expirado) corta con 401 forbidden access.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return forbidden(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return forbidden(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return forbidden(c)
		}
		email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return forbidden(c)
		}
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: forbiddenMessage})
}
