package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/report"
)

// ReportHandler sección Reports.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Describe godoc
// @Summary      Descriptor del reporte
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReportDTO
// @Router       /api/reports [get]
func (h *ReportHandler) Describe(c *fiber.Ctx) error {
	return c.JSON(h.uc.Describe())
}

// PDF godoc
// @Summary      Descargar el reporte en PDF
// @Tags         reports
// @Produce      application/pdf
// @Success      200
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.GeneratePDF(c.UserContext(), GetSession(c), GetUsername(c))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, report.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+report.Filename+`"`)
	return c.Send(doc)
}
