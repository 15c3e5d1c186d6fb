package http_test

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
)

// ── auth ─────────────────────────────────────────────────────────────────────

func TestLogin_RolValido(t *testing.T) {
	env := buildTestApp(t)
	resp := env.do(t, http.MethodPost, "/api/auth/login", "",
		jsonBody(`{"username":"asha","password":"x","role":"National Admin"}`))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, out.Token)
	assert.True(t, out.Session.Authenticated)
	assert.Equal(t, "asha", out.Session.Username)
	assert.Equal(t, "national-admin", out.Session.Role)
	assert.Equal(t, 5, out.Session.Level)
	assert.Len(t, out.Session.Sections, 8)
}

func TestLogin_RolDesconocido(t *testing.T) {
	env := buildTestApp(t)
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", jsonBody(`{"username":"x","role":"Guest"}`))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_ROLE", decode[dto.ErrorResponse](t, resp).Code)
}

func TestLogin_SinRol(t *testing.T) {
	env := buildTestApp(t)
	resp := env.do(t, http.MethodPost, "/api/auth/login", "", jsonBody(`{"username":"x"}`))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

// Tras el logout el mismo token queda revocado.
func TestLogout_RevocaToken(t *testing.T) {
	env := buildTestApp(t)
	header := env.login(t, "client")

	resp := env.do(t, http.MethodPost, "/api/auth/logout", header, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SessionDTO](t, resp)
	assert.False(t, out.Authenticated)
	assert.Equal(t, 0, out.Level)

	assert.Equal(t, fiber.StatusUnauthorized, env.get(t, "/api/auth/session", header).StatusCode)
}

func TestSession_Anonima(t *testing.T) {
	env := buildTestApp(t)
	resp := env.get(t, "/api/auth/session", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.SessionDTO](t, resp)
	assert.False(t, out.Authenticated)
	assert.Empty(t, out.Role)
	assert.Equal(t, []string{"weather-overview", "analytics-tiles", "reports"}, out.Sections)
}

func TestRoles_Lista(t *testing.T) {
	env := buildTestApp(t)
	out := decode[[]dto.RoleDTO](t, env.get(t, "/api/auth/roles", ""))
	require.Len(t, out, 5)
	assert.Equal(t, "national-admin", out[0].ID)
	assert.Equal(t, 5, out[0].Level)
	assert.Equal(t, "booth-worker", out[4].ID)
}

// ── dashboard ────────────────────────────────────────────────────────────────

func TestDashboard_AnonimoSoloSeccionesPublicas(t *testing.T) {
	env := buildTestApp(t)
	resp := env.get(t, "/api/dashboard", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DashboardDTO](t, resp)
	assert.Equal(t, "Bharat Chakra", out.Title)
	assert.Equal(t, []string{"weather-overview", "analytics-tiles", "reports"}, sectionIDs(out))
}

func TestDashboard_AdminTodasEnOrden(t *testing.T) {
	env := buildTestApp(t)
	out := decode[dto.DashboardDTO](t, env.get(t, "/api/dashboard", env.login(t, "national-admin")))
	assert.Equal(t, []string{
		"gis-map", "weather-overview", "analytics-tiles", "constituency-deep-dive",
		"deep-search", "campaign-management", "predictive-analytics", "reports",
	}, sectionIDs(out))
}

func TestDashboard_FieldManager(t *testing.T) {
	env := buildTestApp(t)
	out := decode[dto.DashboardDTO](t, env.get(t, "/api/dashboard?state=Maharashtra", env.login(t, "field-manager")))
	assert.Equal(t, []string{
		"weather-overview", "analytics-tiles", "constituency-deep-dive", "deep-search", "reports",
	}, sectionIDs(out))
	assert.Equal(t, 2, out.Session.Level)
}

func TestDashboard_KPIDesconocido(t *testing.T) {
	env := buildTestApp(t)
	resp := env.get(t, "/api/dashboard?kpi=Turnout", env.login(t, "national-admin"))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "UNKNOWN_KPI", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDashboard_ParametroNoNumerico(t *testing.T) {
	env := buildTestApp(t)
	resp := env.get(t, "/api/dashboard?spending=mucho", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDashboardSections_MarcaVisibles(t *testing.T) {
	env := buildTestApp(t)
	out := decode[[]dto.SectionRequirementDTO](t, env.get(t, "/api/dashboard/sections", env.login(t, "booth-worker")))
	require.Len(t, out, 8)
	visible := map[string]bool{}
	for _, s := range out {
		visible[s.ID] = s.Visible
	}
	assert.True(t, visible["reports"])
	assert.False(t, visible["constituency-deep-dive"])
	assert.False(t, visible["gis-map"])
}

// ── secciones ────────────────────────────────────────────────────────────────

func TestTiles_Promedios(t *testing.T) {
	env := buildTestApp(t)
	out := decode[dto.AnalyticsTilesDTO](t, env.get(t, "/api/tiles", ""))
	assert.Equal(t, 2, out.TrackedConstituencies)
	assert.Equal(t, "67.5", out.AvgWinningProbability.String())
	assert.Equal(t, "47.5", out.AvgAntiIncumbency.String())
	assert.Equal(t, "0.5", out.AvgSentimentIndex.String())
}

func TestMap_ColoreaPorKPI(t *testing.T) {
	env := buildTestApp(t)
	resp := env.get(t, "/api/map?kpi=Anti_Incumbency_Score", env.login(t, "campaign-manager"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.MapDTO](t, resp)
	assert.Equal(t, "Anti_Incumbency_Score", out.KPI)
	require.Len(t, out.Layer.Features, 2)
	// 40 y 55: ninguno supera 60
	for _, f := range out.Layer.Features {
		assert.Equal(t, "red", f.Properties.Style.FillColor)
	}
}

func TestMapKML_ETagY304(t *testing.T) {
	env := buildTestApp(t)
	header := env.login(t, "national-admin")

	resp := env.get(t, "/api/map/kml", header)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.google-earth.kml+xml", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "constituencies.kml")
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Varanasi")

	req := newGet("/api/map/kml")
	req.Header.Set("Authorization", header)
	req.Header.Set("If-None-Match", etag)
	resp2, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotModified, resp2.StatusCode)
}

func TestStates_Lista(t *testing.T) {
	env := buildTestApp(t)
	out := decode[[]string](t, env.get(t, "/api/constituencies/states", env.login(t, "campaign-manager")))
	assert.ElementsMatch(t, []string{"Uttar Pradesh", "Maharashtra"}, out)
}

func TestDeepDive_EstadoSeleccionado(t *testing.T) {
	env := buildTestApp(t)
	target := "/api/constituencies/deep-dive?state=" + url.QueryEscape("Uttar Pradesh") + "&candidate_strength=80"
	resp := env.get(t, target, env.login(t, "field-manager"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decode[dto.DeepDiveDTO](t, resp)
	require.NotNil(t, out.Profile)
	assert.Equal(t, "Varanasi", out.Profile.PC)
	assert.Equal(t, 80, out.Profile.CandidateStrength)
	assert.Equal(t, "40", out.Profile.RiskScore.String())
	assert.Len(t, out.Profile.SentimentMatrix.Values, 4)
}

func TestDeepDive_SinEstado(t *testing.T) {
	env := buildTestApp(t)
	out := decode[dto.DeepDiveDTO](t, env.get(t, "/api/constituencies/deep-dive", env.login(t, "field-manager")))
	assert.Nil(t, out.Profile)
}

func TestDeepDive_EstadoDesconocido(t *testing.T) {
	env := buildTestApp(t)
	resp := env.get(t, "/api/constituencies/deep-dive?state=Goa", env.login(t, "field-manager"))
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestDeepDive_FuerzaFueraDeRango(t *testing.T) {
	env := buildTestApp(t)
	header := env.login(t, "field-manager")
	assert.Equal(t, fiber.StatusBadRequest, env.get(t, "/api/constituencies/deep-dive?state=Maharashtra&candidate_strength=150", header).StatusCode)
	assert.Equal(t, fiber.StatusBadRequest, env.get(t, "/api/constituencies/deep-dive?state=Maharashtra&candidate_strength=abc", header).StatusCode)
}

// La consulta por defecto (UP, > 70) no encuentra nada en la semilla.
func TestSearch_ConsultaPorDefecto(t *testing.T) {
	env := buildTestApp(t)
	out := decode[dto.SearchResultDTO](t, env.get(t, "/api/search", env.login(t, "field-manager")))
	assert.Equal(t, "Show ACs in Uttar Pradesh with anti-incumbency > 70", out.Query)
	assert.Equal(t, "Uttar Pradesh", out.Filter.State)
	assert.Equal(t, "rules", out.Filter.Interpreter)
	assert.Empty(t, out.Results)
	assert.Equal(t, "No constituencies match the query.", out.Summary)
}

func TestSearch_ConResultados(t *testing.T) {
	env := buildTestApp(t)
	q := url.QueryEscape("Show ACs in Maharashtra with anti-incumbency > 50")
	out := decode[dto.SearchResultDTO](t, env.get(t, "/api/search?q="+q, env.login(t, "field-manager")))
	require.Len(t, out.Results, 1)
	assert.Equal(t, "Mumbai North", out.Results[0].PC)
	assert.Equal(t, "High risk in selected areas.", out.Summary)
}

func TestSearch_CotaSuperiorEs400(t *testing.T) {
	env := buildTestApp(t)
	q := url.QueryEscape("Show ACs with anti-incumbency below 30")
	resp := env.get(t, "/api/search?q="+q, env.login(t, "field-manager"))
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestPredict_DefaultYRango(t *testing.T) {
	env := buildTestApp(t)
	header := env.login(t, "client")

	out := decode[dto.PredictionDTO](t, env.get(t, "/api/predict", header))
	assert.Equal(t, 50, out.Input)
	assert.False(t, out.Fallback)
	assert.True(t, strings.HasSuffix(out.Formatted, "%"))

	resp := env.get(t, "/api/predict?spending=101", header)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCampaign_RequiereNivel3(t *testing.T) {
	env := buildTestApp(t)
	assert.Equal(t, fiber.StatusForbidden, env.get(t, "/api/campaign", env.login(t, "field-manager")).StatusCode)
	out := decode[dto.CampaignDTO](t, env.get(t, "/api/campaign", env.login(t, "campaign-manager")))
	assert.NotEmpty(t, out.CanvassingLabel)
}

func TestReports_DescriptorYPDF(t *testing.T) {
	env := buildTestApp(t)
	desc := decode[dto.ReportDTO](t, env.get(t, "/api/reports", ""))
	assert.Equal(t, "/api/reports/pdf", desc.DownloadURL)

	resp := env.get(t, desc.DownloadURL, env.login(t, "booth-worker"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "report.pdf")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

// ── helpers ──────────────────────────────────────────────────────────────────

func sectionIDs(d dto.DashboardDTO) []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, s.ID)
	}
	return out
}
