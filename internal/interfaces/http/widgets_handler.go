package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
)

// WidgetsHandler secciones sin parámetros: clima político, tiles y campaña.
type WidgetsHandler struct {
	weather  *usecase.WeatherUseCase
	tiles    *usecase.TilesUseCase
	campaign *usecase.CampaignUseCase
}

// NewWidgetsHandler construye el handler.
func NewWidgetsHandler(weather *usecase.WeatherUseCase, tiles *usecase.TilesUseCase, campaign *usecase.CampaignUseCase) *WidgetsHandler {
	return &WidgetsHandler{weather: weather, tiles: tiles, campaign: campaign}
}

// Weather godoc
// @Summary      Political Weather Overview
// @Tags         sections
// @Produce      json
// @Success      200  {object}  dto.WeatherOverviewDTO
// @Router       /api/weather [get]
func (h *WidgetsHandler) Weather(c *fiber.Ctx) error {
	return c.JSON(h.weather.GetOverview())
}

// Tiles godoc
// @Summary      Analytics Tiles
// @Tags         sections
// @Produce      json
// @Success      200  {object}  dto.AnalyticsTilesDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/tiles [get]
func (h *WidgetsHandler) Tiles(c *fiber.Ctx) error {
	out, err := h.tiles.GetTiles(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Campaign godoc
// @Summary      Campaign Management
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.CampaignDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/campaign [get]
func (h *WidgetsHandler) Campaign(c *fiber.Ctx) error {
	return c.JSON(h.campaign.GetCampaign())
}
