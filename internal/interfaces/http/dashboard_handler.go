package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/dashboard"
)

// DashboardHandler compone el dashboard según la sesión.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Dashboard compuesto
// @Description  Solo incluye las secciones que alcanza el rango de la sesión, en orden de render.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        kpi                 query  string  false  "Winning_Probability | Anti_Incumbency_Score | Sentiment_Index"
// @Param        state               query  string  false  "estado para el deep-dive"
// @Param        candidate_strength  query  int     false  "0-100, default 50"
// @Param        q                   query  string  false  "consulta en lenguaje natural"
// @Param        spending            query  int     false  "0-100, default 50"
// @Success      200  {object}  dto.DashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	params, err := dashboardParams(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.uc.Compose(c.UserContext(), GetSession(c), GetUsername(c), params)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sections godoc
// @Summary      Tabla de secciones
// @Description  Todas las secciones con su nivel mínimo y si la sesión las ve.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.SectionRequirementDTO
// @Router       /api/dashboard/sections [get]
func (h *DashboardHandler) Sections(c *fiber.Ctx) error {
	return c.JSON(h.uc.SectionTable(GetSession(c)))
}
