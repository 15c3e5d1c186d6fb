package entity

// Session estado de acceso de un cliente del dashboard.
// No se persiste: vive en el token del cliente y se reemplaza en cada login/logout.
type Session struct {
	Authenticated bool
	Role          Role
}

// NewSession devuelve la sesión inicial (sin autenticar, sin rol).
func NewSession() Session {
	return Session{}
}

// Level rango efectivo de la sesión.
func (s Session) Level() int {
	return s.Role.Level()
}
