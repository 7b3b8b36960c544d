package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smart-asset/smart-asset-api/internal/application/dto"
)

// roleLookup es el contrato mínimo que necesita el middleware para
// resolver el rol de un email. Lo implementa *usecase.UserUseCase; el uso
// de interfaz evita el import circular.
type roleLookup interface {
	GetRole(email string) (string, error)
}

// RequireRole devuelve un middleware Fiber que compara el rol del usuario
// autenticado contra el requerido. Debe usarse DESPUÉS de AuthMiddleware
// (necesita LocalEmail).
//
// El rol NO viaja en el token: se consulta fresco en el identity store por
// cada petición, así un cambio de rol aplica de inmediato sin
// re-autenticación. Una consulta extra por petición protegida a cambio de
// corrección ante cambios de rol.
//
// Comportamiento:
//   - 401 forbidden access → sin email en el contexto, usuario inexistente
//     (rol vacío) o rol distinto del requerido (comparación case-sensitive).
//   - 503 → fallo de infraestructura al consultar el store.
func RequireRole(role string, lookup roleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := GetEmail(c)
		if email == "" {
			return forbidden(c)
		}

		actual, err := lookup.GetRole(email)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ROLE_CHECK_FAILED",
				Message: "no se pudo verificar el rol, intente más tarde",
			})
		}

		// Rol vacío significa que el email del token ya no existe en el
		// identity store: se trata igual que un rol incorrecto.
		if actual == "" || actual != role {
			return forbidden(c)
		}

		return c.Next()
	}
}
