package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
)

// ConstituencyHandler deep-dive por estado y búsqueda en lenguaje natural.
type ConstituencyHandler struct {
	deepDive *usecase.ConstituencyUseCase
	search   *usecase.SearchUseCase
}

// NewConstituencyHandler construye el handler.
func NewConstituencyHandler(deepDive *usecase.ConstituencyUseCase, search *usecase.SearchUseCase) *ConstituencyHandler {
	return &ConstituencyHandler{deepDive: deepDive, search: search}
}

// DeepDive godoc
// @Summary      Constituency Deep-Dive
// @Tags         constituencies
// @Produce      json
// @Security     BearerAuth
// @Param        state               query  string  false  "estado (vacío = sin perfil)"
// @Param        candidate_strength  query  int     false  "0-100, default 50"
// @Success      200  {object}  dto.DeepDiveDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/constituencies/deep-dive [get]
func (h *ConstituencyHandler) DeepDive(c *fiber.Ctx) error {
	strength, err := optionalInt(c, "candidate_strength")
	if err != nil {
		return badRequest(c, err.Error())
	}
	out, err := h.deepDive.DeepDive(c.UserContext(), c.Query("state"), strength)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Deep Search
// @Tags         constituencies
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "consulta (default: Show ACs in Uttar Pradesh with anti-incumbency > 70)"
// @Success      200  {object}  dto.SearchResultDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/search [get]
func (h *ConstituencyHandler) Search(c *fiber.Ctx) error {
	out, err := h.search.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
