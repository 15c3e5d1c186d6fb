package dto

import "time"

// LoginRequest cuerpo de POST /api/auth/login.
// Password se acepta por compatibilidad con el formulario pero no se verifica.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"` // "national-admin" o "National Admin"
}

// SessionDTO vista de la sesión y de las secciones que desbloquea.
type SessionDTO struct {
	Authenticated bool     `json:"authenticated"`
	Username      string   `json:"username,omitempty"`
	Role          string   `json:"role,omitempty"`
	RoleLabel     string   `json:"role_label,omitempty"`
	Level         int      `json:"level"`
	Sections      []string `json:"sections"`
}

// LoginResponse token de sesión + vista de la sesión.
type LoginResponse struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expires_at"`
	Session   SessionDTO `json:"session"`
}

// RoleDTO opción del selector de roles.
type RoleDTO struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Level int    `json:"level"`
}
