package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/access"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// RequireSection devuelve un middleware que exige el rango mínimo de la sección.
// Debe usarse DESPUÉS de SessionMiddleware.
//
// Comportamiento:
//   - Secciones de rango 0: pasan siempre.
//   - 401 Unauthorized → sin sesión iniciada.
//   - 403 Forbidden    → sesión con rango insuficiente.
//
// Entra en pánico al registrar una sección que no está en la tabla de requisitos.
func RequireSection(section entity.SectionID) fiber.Handler {
	req, ok := access.Requirement(section)
	if !ok {
		panic(fmt.Sprintf("RequireSection: sección desconocida %q", section))
	}
	return func(c *fiber.Ctx) error {
		s := GetSession(c)
		if access.HasAccess(s, req.MinLevel) {
			return c.Next()
		}
		if !s.Authenticated {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "inicie sesión para ver '" + section.Title() + "'",
			})
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_LEVEL",
			Message: fmt.Sprintf("el rol '%s' (nivel %d) no alcanza el nivel %d requerido por '%s'",
				s.Role.Label(), s.Level(), req.MinLevel, section.Title()),
		})
	}
}
