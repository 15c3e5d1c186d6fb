package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/application/auth"
	"github.com/jhoicas/bharat-chakra/internal/application/dashboard"
	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/application/report"
	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/ai"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/kml"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/memory"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/pdf"
	"github.com/jhoicas/bharat-chakra/internal/infrastructure/seed"
	apphttp "github.com/jhoicas/bharat-chakra/internal/interfaces/http"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "bharat-chakra-test"
	testExpMin    = 60
)

// fixedRandom hace deterministas los widgets simulados.
type fixedRandom struct{}

func (fixedRandom) Float64() float64 { return 0.5 }
func (fixedRandom) IntN(int) int     { return 0 }

type testEnv struct {
	app     *fiber.App
	session *auth.SessionUseCase
}

// buildTestApp arma la API completa sobre la semilla embebida y el repositorio en memoria.
func buildTestApp(t *testing.T) *testEnv {
	t.Helper()
	items, err := seed.Default()
	require.NoError(t, err)

	log := logger.Nop()
	repo := memory.NewConstituencyRepository(items)
	rnd := fixedRandom{}

	sessionUC := auth.NewSessionUseCase(auth.JWTConfig{
		Secret:     testJWTSecret,
		ExpMinutes: testExpMin,
		Issuer:     testIssuer,
	}, auth.NewRevocationList(), log)

	weatherUC := usecase.NewWeatherUseCase(usecase.WeatherConfig{ElectionName: "Lok Sabha 2029", CountdownDays: 30}, rnd)
	tilesUC := usecase.NewTilesUseCase(repo)
	mapUC := usecase.NewMapUseCase(repo, kml.NewExporter())
	predictionUC := usecase.NewPredictionUseCase(log)
	constituencyUC := usecase.NewConstituencyUseCase(repo, predictionUC, rnd)
	searchUC := usecase.NewSearchUseCase(repo, nil, ai.NewRuleInterpreter(), log)
	campaignUC := usecase.NewCampaignUseCase(rnd)
	reportUC := report.NewUseCase(pdf.NewMarotoReportGenerator(), rnd, log)

	dashboardUC := dashboard.NewUseCase(dashboard.Providers{
		Weather:    weatherUC,
		Tiles:      tilesUC,
		Map:        mapUC,
		DeepDive:   constituencyUC,
		Search:     searchUC,
		Campaign:   campaignUC,
		Prediction: predictionUC,
		Report:     reportUC,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	apphttp.Router(app, apphttp.RouterDeps{
		SessionUC:      sessionUC,
		DashboardUC:    dashboardUC,
		WeatherUC:      weatherUC,
		TilesUC:        tilesUC,
		MapUC:          mapUC,
		ConstituencyUC: constituencyUC,
		SearchUC:       searchUC,
		CampaignUC:     campaignUC,
		PredictionUC:   predictionUC,
		ReportUC:       reportUC,
	})
	return &testEnv{app: app, session: sessionUC}
}

// login abre una sesión con el rol indicado y devuelve el header Authorization.
func (e *testEnv) login(t *testing.T, role string) string {
	t.Helper()
	out, err := e.session.Login(dto.LoginRequest{Username: "tester", Role: role})
	require.NoError(t, err, "debe iniciarse sesión con un rol válido")
	return "Bearer " + out.Token
}

func (e *testEnv) do(t *testing.T, method, target, authHeader string, body io.Reader) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func (e *testEnv) get(t *testing.T, target, authHeader string) *http.Response {
	t.Helper()
	return e.do(t, http.MethodGet, target, authHeader, nil)
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func newGet(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}
