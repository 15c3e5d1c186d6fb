package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
)

// MapHandler Interactive GIS Map y su exportación KML.
type MapHandler struct {
	uc *usecase.MapUseCase
}

// NewMapHandler construye el handler.
func NewMapHandler(uc *usecase.MapUseCase) *MapHandler {
	return &MapHandler{uc: uc}
}

// Get godoc
// @Summary      Capa GeoJSON coloreada por KPI
// @Tags         map
// @Produce      json
// @Security     BearerAuth
// @Param        kpi  query  string  false  "Winning_Probability (default) | Anti_Incumbency_Score | Sentiment_Index"
// @Success      200  {object}  dto.MapDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/map [get]
func (h *MapHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetMap(c.UserContext(), c.Query("kpi"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// KML godoc
// @Summary      Exportar la capa a KML
// @Description  ETag = SHA-256 de la forma canónica (C14N) del documento.
// @Tags         map
// @Produce      application/vnd.google-earth.kml+xml
// @Security     BearerAuth
// @Param        kpi  query  string  false  "KPI de coloreado"
// @Success      200
// @Success      304
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/map/kml [get]
func (h *MapHandler) KML(c *fiber.Ctx) error {
	doc, digest, err := h.uc.ExportKML(c.UserContext(), c.Query("kpi"))
	if err != nil {
		return writeError(c, err)
	}
	etag := `"` + digest + `"`
	c.Set(fiber.HeaderETag, etag)
	if match := c.Get(fiber.HeaderIfNoneMatch); match != "" && strings.Contains(match, etag) {
		return c.SendStatus(fiber.StatusNotModified)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.google-earth.kml+xml")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="constituencies.kml"`)
	return c.Send(doc)
}

// States godoc
// @Summary      Estados para el filtro del mapa
// @Tags         map
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  string
// @Router       /api/constituencies/states [get]
func (h *MapHandler) States(c *fiber.Ctx) error {
	out, err := h.uc.States(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
