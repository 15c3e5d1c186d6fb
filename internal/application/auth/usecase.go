package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain"
	"github.com/jhoicas/bharat-chakra/internal/domain/access"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/pkg/jwt"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ResolvedSession sesión reconstruida a partir de un token válido.
type ResolvedSession struct {
	Session   entity.Session
	SessionID string
	Username  string
	ExpiresAt time.Time
}

// SessionUseCase login/logout sobre el compositor de acceso.
// La sesión viaja en el token del cliente; el servidor solo guarda las revocaciones.
type SessionUseCase struct {
	jwtCfg  JWTConfig
	revoked *RevocationList
	log     *logger.Logger
}

// NewSessionUseCase construye el caso de uso de sesión.
func NewSessionUseCase(jwtCfg JWTConfig, revoked *RevocationList, log *logger.Logger) *SessionUseCase {
	return &SessionUseCase{jwtCfg: jwtCfg, revoked: revoked, log: log.Component("auth")}
}

// Login abre una sesión con el rol elegido y emite su token.
// No verifica credenciales: username y password solo se registran/ignoran.
// Devuelve domain.ErrUnknownRole si el rol no existe.
func (uc *SessionUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	session := access.Login(role)

	sessionID := uuid.NewString()
	token, expiresAt, err := jwt.Generate(uc.jwtCfg.Secret, sessionID, in.Username, string(role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("auth: generar token: %w", err)
	}

	uc.log.Info().
		Str("session_id", sessionID).
		Str("username", in.Username).
		Str("role", string(role)).
		Msg("sesión iniciada")

	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Session:   ToSessionDTO(session, in.Username),
	}, nil
}

// Logout revoca el token de la sesión (si la hay) y devuelve la sesión inicial.
func (uc *SessionUseCase) Logout(rs *ResolvedSession) dto.SessionDTO {
	if rs != nil && rs.SessionID != "" {
		uc.revoked.Revoke(rs.SessionID, rs.ExpiresAt)
		uc.log.Info().Str("session_id", rs.SessionID).Msg("sesión cerrada")
	}
	return ToSessionDTO(access.Logout(), "")
}

// Resolve valida el token y reconstruye la sesión.
// Devuelve domain.ErrUnauthorized si el token es inválido, expiró, fue revocado o trae un rol desconocido.
func (uc *SessionUseCase) Resolve(token string) (*ResolvedSession, error) {
	claims, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if uc.revoked.IsRevoked(claims.ID) {
		return nil, fmt.Errorf("%w: sesión revocada", domain.ErrUnauthorized)
	}
	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	rs := &ResolvedSession{
		Session:   access.Login(role),
		SessionID: claims.ID,
		Username:  claims.Username,
	}
	if claims.ExpiresAt != nil {
		rs.ExpiresAt = claims.ExpiresAt.Time
	}
	return rs, nil
}

// Roles opciones del selector de rol del formulario de login.
func (uc *SessionUseCase) Roles() []dto.RoleDTO {
	roles := entity.Roles()
	out := make([]dto.RoleDTO, 0, len(roles))
	for _, r := range roles {
		out = append(out, dto.RoleDTO{ID: string(r), Label: r.Label(), Level: r.Level()})
	}
	return out
}

// ToSessionDTO construye la vista de la sesión con sus secciones visibles.
func ToSessionDTO(s entity.Session, username string) dto.SessionDTO {
	ids := access.ComposeSections(s)
	sections := make([]string, 0, len(ids))
	for _, id := range ids {
		sections = append(sections, string(id))
	}
	out := dto.SessionDTO{
		Authenticated: s.Authenticated,
		Level:         s.Level(),
		Sections:      sections,
	}
	if s.Authenticated {
		out.Username = username
		out.Role = string(s.Role)
		out.RoleLabel = s.Role.Label()
	}
	return out
}
