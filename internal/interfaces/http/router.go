package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/auth"
	"github.com/jhoicas/bharat-chakra/internal/application/dashboard"
	"github.com/jhoicas/bharat-chakra/internal/application/report"
	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SessionUC      *auth.SessionUseCase
	DashboardUC    *dashboard.UseCase
	WeatherUC      *usecase.WeatherUseCase
	TilesUC        *usecase.TilesUseCase
	MapUC          *usecase.MapUseCase
	ConstituencyUC *usecase.ConstituencyUseCase
	SearchUC       *usecase.SearchUseCase
	CampaignUC     *usecase.CampaignUseCase
	PredictionUC   *usecase.PredictionUseCase
	ReportUC       *report.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	optional := SessionMiddleware(deps.SessionUC, false)
	required := SessionMiddleware(deps.SessionUC, true)

	// Auth
	authHandler := NewAuthHandler(deps.SessionUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/roles", authHandler.Roles)
	authGroup.Post("/logout", required, authHandler.Logout)
	authGroup.Get("/session", optional, authHandler.Session)

	// Todo lo demás admite sesión opcional; cada sección aplica su rango mínimo.
	gated := api.Group("/", optional)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	gated.Get("/dashboard", dashboardHandler.Get)
	gated.Get("/dashboard/sections", dashboardHandler.Sections)

	widgets := NewWidgetsHandler(deps.WeatherUC, deps.TilesUC, deps.CampaignUC)
	gated.Get("/weather", RequireSection(entity.SectionWeatherOverview), widgets.Weather)
	gated.Get("/tiles", RequireSection(entity.SectionAnalyticsTiles), widgets.Tiles)
	gated.Get("/campaign", RequireSection(entity.SectionCampaignManagement), widgets.Campaign)

	mapHandler := NewMapHandler(deps.MapUC)
	gated.Get("/map", RequireSection(entity.SectionGISMap), mapHandler.Get)
	gated.Get("/map/kml", RequireSection(entity.SectionGISMap), mapHandler.KML)
	gated.Get("/constituencies/states", RequireSection(entity.SectionGISMap), mapHandler.States)

	constituencies := NewConstituencyHandler(deps.ConstituencyUC, deps.SearchUC)
	gated.Get("/constituencies/deep-dive", RequireSection(entity.SectionConstituencyDeepDive), constituencies.DeepDive)
	gated.Get("/search", RequireSection(entity.SectionDeepSearch), constituencies.Search)

	prediction := NewPredictionHandler(deps.PredictionUC)
	gated.Get("/predict", RequireSection(entity.SectionPredictiveAnalytics), prediction.Predict)

	reports := NewReportHandler(deps.ReportUC)
	gated.Get("/reports", RequireSection(entity.SectionReports), reports.Describe)
	gated.Get("/reports/pdf", RequireSection(entity.SectionReports), reports.PDF)
}
