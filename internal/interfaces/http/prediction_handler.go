package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bharat-chakra/internal/application/usecase"
)

// PredictionHandler Predictive Analytics.
type PredictionHandler struct {
	uc *usecase.PredictionUseCase
}

// NewPredictionHandler construye el handler.
func NewPredictionHandler(uc *usecase.PredictionUseCase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Predict godoc
// @Summary      Probabilidad de victoria proyectada
// @Description  Si el modelo falla responde 200 con fallback=true y probabilidad 50.
// @Tags         sections
// @Produce      json
// @Security     BearerAuth
// @Param        spending  query  int  false  "gasto de campaña 0-100, default 50"
// @Success      200  {object}  dto.PredictionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/predict [get]
func (h *PredictionHandler) Predict(c *fiber.Ctx) error {
	spending, err := optionalInt(c, "spending")
	if err != nil {
		return badRequest(c, err.Error())
	}
	value := 50
	if spending != nil {
		value = *spending
	}
	out, err := h.uc.Predict(value)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
