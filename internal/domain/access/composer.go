// Package access decide qué secciones del dashboard ve una sesión según el rango de su rol.
//
// Máquina de estados de la sesión:
//
//	LoggedOut --Login(role)--> LoggedIn(role)
//	LoggedIn(*) --Logout-->    LoggedOut
//
// No hay otras transiciones ni expiración; la caducidad del token es asunto del transporte.
package access

import "github.com/jhoicas/bharat-chakra/internal/domain/entity"

// requirements tabla fija de secciones en orden de render.
var requirements = []entity.SectionRequirement{
	{Section: entity.SectionGISMap, MinLevel: 3},
	{Section: entity.SectionWeatherOverview, MinLevel: 0},
	{Section: entity.SectionAnalyticsTiles, MinLevel: 0},
	{Section: entity.SectionConstituencyDeepDive, MinLevel: 2},
	{Section: entity.SectionDeepSearch, MinLevel: 2},
	{Section: entity.SectionCampaignManagement, MinLevel: 3},
	{Section: entity.SectionPredictiveAnalytics, MinLevel: 4},
	{Section: entity.SectionReports, MinLevel: 0},
}

// Login abre una sesión con el rol indicado. No verifica credenciales.
func Login(role entity.Role) entity.Session {
	return entity.Session{Authenticated: true, Role: role}
}

// Logout devuelve la sesión inicial.
func Logout() entity.Session {
	return entity.NewSession()
}

// HasAccess informa si la sesión alcanza el rango requerido.
// Un rango <= 0 siempre se concede; el resto exige sesión autenticada.
func HasAccess(s entity.Session, requiredLevel int) bool {
	if requiredLevel <= 0 {
		return true
	}
	if !s.Authenticated {
		return false
	}
	return s.Level() >= requiredLevel
}

// ComposeSections recorre la tabla en orden y devuelve las secciones visibles para la sesión.
func ComposeSections(s entity.Session) []entity.SectionID {
	out := make([]entity.SectionID, 0, len(requirements))
	for _, req := range requirements {
		if HasAccess(s, req.MinLevel) {
			out = append(out, req.Section)
		}
	}
	return out
}

// Requirements devuelve una copia de la tabla de secciones.
func Requirements() []entity.SectionRequirement {
	out := make([]entity.SectionRequirement, len(requirements))
	copy(out, requirements)
	return out
}

// Requirement busca el requisito de una sección.
func Requirement(id entity.SectionID) (entity.SectionRequirement, bool) {
	for _, req := range requirements {
		if req.Section == id {
			return req, true
		}
	}
	return entity.SectionRequirement{}, false
}
