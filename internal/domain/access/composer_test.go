package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/domain/access"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

var unconditional = []entity.SectionID{
	entity.SectionWeatherOverview,
	entity.SectionAnalyticsTiles,
	entity.SectionReports,
}

func TestHasAccess_RangoPorRol(t *testing.T) {
	for _, role := range entity.Roles() {
		s := access.Login(role)
		for level := 0; level <= 6; level++ {
			assert.Equal(t, role.Level() >= level, access.HasAccess(s, level),
				"rol %s nivel %d", role, level)
		}
	}
}

func TestHasAccess_SinRolNuncaPasaNivelesPositivos(t *testing.T) {
	for level := 1; level <= 5; level++ {
		assert.False(t, access.HasAccess(entity.NewSession(), level))
		assert.False(t, access.HasAccess(access.Login(entity.RoleNone), level))
	}
	assert.True(t, access.HasAccess(entity.NewSession(), 0))
}

func TestHasAccess_RolFueraDelEnumTieneRangoCero(t *testing.T) {
	s := access.Login(entity.Role("superuser"))
	assert.False(t, access.HasAccess(s, 1))
	assert.True(t, access.HasAccess(s, 0))
}

// Un rol puesto sin login no abre secciones protegidas.
func TestHasAccess_SesionNoAutenticadaConRol(t *testing.T) {
	s := entity.Session{Authenticated: false, Role: entity.RoleNationalAdmin}
	assert.False(t, access.HasAccess(s, 1))
	assert.Equal(t, unconditional, access.ComposeSections(s))
}

func TestLogout_SoloSeccionesIncondicionales(t *testing.T) {
	s := access.Login(entity.RoleNationalAdmin)
	require.True(t, s.Authenticated)
	s = access.Logout()

	assert.False(t, s.Authenticated)
	assert.Equal(t, entity.RoleNone, s.Role)
	assert.Equal(t, unconditional, access.ComposeSections(s))
}

func TestComposeSections_NationalAdminVeTodo(t *testing.T) {
	all := access.ComposeSections(access.Login(entity.RoleNationalAdmin))

	require.Len(t, all, len(access.Requirements()))
	for _, role := range entity.Roles() {
		assert.Subset(t, all, access.ComposeSections(access.Login(role)))
	}
}

func TestComposeSections_Monotonia(t *testing.T) {
	roles := append(entity.Roles(), entity.RoleNone)
	for _, a := range roles {
		for _, b := range roles {
			if a.Level() > b.Level() {
				continue
			}
			assert.Subset(t,
				access.ComposeSections(access.Login(b)),
				access.ComposeSections(access.Login(a)),
				"%q ⊆ %q", a, b)
		}
	}
}

func TestComposeSections_FieldManager(t *testing.T) {
	got := access.ComposeSections(access.Login(entity.RoleFieldManager))

	assert.Contains(t, got, entity.SectionConstituencyDeepDive)
	assert.Contains(t, got, entity.SectionWeatherOverview)
	assert.NotContains(t, got, entity.SectionPredictiveAnalytics)
	assert.NotContains(t, got, entity.SectionGISMap)
}

func TestComposeSections_RespetaOrdenDeTabla(t *testing.T) {
	got := access.ComposeSections(access.Login(entity.RoleCampaignManager))

	assert.Equal(t, []entity.SectionID{
		entity.SectionGISMap,
		entity.SectionWeatherOverview,
		entity.SectionAnalyticsTiles,
		entity.SectionConstituencyDeepDive,
		entity.SectionDeepSearch,
		entity.SectionCampaignManagement,
		entity.SectionReports,
	}, got)
}

func TestRequirement_Busqueda(t *testing.T) {
	req, ok := access.Requirement(entity.SectionPredictiveAnalytics)
	require.True(t, ok)
	assert.Equal(t, 4, req.MinLevel)

	_, ok = access.Requirement(entity.SectionID("inexistente"))
	assert.False(t, ok)
}

func TestRequirements_DevuelveCopia(t *testing.T) {
	reqs := access.Requirements()
	reqs[0].MinLevel = 0

	req, _ := access.Requirement(reqs[0].Section)
	assert.Equal(t, 3, req.MinLevel)
}
