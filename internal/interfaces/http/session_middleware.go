package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/auth"
	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// Locals keys de la sesión en Fiber.
const (
	LocalSession   = "session"
	LocalSessionID = "session_id"
	LocalUsername  = "username"
	LocalExpiresAt = "session_expires_at"
)

// sessionResolver contrato mínimo del middleware; lo implementa *auth.SessionUseCase.
type sessionResolver interface {
	Resolve(token string) (*auth.ResolvedSession, error)
}

// SessionMiddleware carga la sesión del Bearer Token en c.Locals.
//
// Sin header Authorization: si required es false continúa con la sesión inicial (sin login);
// si es true responde 401. Un token presente pero inválido, expirado o revocado siempre es 401.
func SessionMiddleware(resolver sessionResolver, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			if required {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
			}
			c.Locals(LocalSession, entity.NewSession())
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		rs, err := resolver.Resolve(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido, expirado o revocado"})
		}
		c.Locals(LocalSession, rs.Session)
		c.Locals(LocalSessionID, rs.SessionID)
		c.Locals(LocalUsername, rs.Username)
		c.Locals(LocalExpiresAt, rs.ExpiresAt)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto; sin middleware, la sesión inicial.
func GetSession(c *fiber.Ctx) entity.Session {
	s, ok := c.Locals(LocalSession).(entity.Session)
	if !ok {
		return entity.NewSession()
	}
	return s
}

// GetUsername devuelve el usuario de la sesión (puede ser vacío).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetResolvedSession reconstruye la sesión resuelta (nil si la petición no trajo token).
func GetResolvedSession(c *fiber.Ctx) *auth.ResolvedSession {
	id, _ := c.Locals(LocalSessionID).(string)
	if id == "" {
		return nil
	}
	exp, _ := c.Locals(LocalExpiresAt).(time.Time)
	return &auth.ResolvedSession{
		Session:   GetSession(c),
		SessionID: id,
		Username:  GetUsername(c),
		ExpiresAt: exp,
	}
}
