package usecase

import (
	"fmt"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain"
	"github.com/jhoicas/bharat-chakra/internal/domain/forecast"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

// Rango de los controles deslizantes (fuerza del candidato, gasto de campaña).
const (
	sliderMin     = 0
	sliderMax     = 100
	sliderDefault = 50
)

// PredictionUseCase envuelve el predictor con el valor de respaldo.
// Un fallo del modelo no es fatal: se informa en la respuesta y se muestra 50.0.
type PredictionUseCase struct {
	log     *logger.Logger
	predict func(feature float64) (float64, error)
}

// NewPredictionUseCase construye el caso de uso sobre forecast.WinProbability.
func NewPredictionUseCase(log *logger.Logger) *PredictionUseCase {
	return &PredictionUseCase{log: log.Component("prediction"), predict: forecast.WinProbability}
}

// Predict calcula la probabilidad de victoria para un valor del control deslizante (0–100).
// Devuelve domain.ErrInvalidInput si el valor está fuera de rango.
func (uc *PredictionUseCase) Predict(input int) (dto.PredictionDTO, error) {
	if input < sliderMin || input > sliderMax {
		return dto.PredictionDTO{}, fmt.Errorf("%w: valor %d fuera de [%d, %d]", domain.ErrInvalidInput, input, sliderMin, sliderMax)
	}
	p, err := uc.predict(float64(input))
	if err != nil {
		uc.log.Warn().Err(err).Int("input", input).Msg("predicción fallida, se usa valor de respaldo")
		return dto.PredictionDTO{
			Input:       input,
			Probability: forecast.FallbackProbability,
			Formatted:   formatPercent(forecast.FallbackProbability),
			Fallback:    true,
			Error:       err.Error(),
		}, nil
	}
	return dto.PredictionDTO{Input: input, Probability: p, Formatted: formatPercent(p)}, nil
}

// sliderValue aplica el valor por defecto de los controles deslizantes.
func sliderValue(v *int) int {
	if v == nil {
		return sliderDefault
	}
	return *v
}

func formatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
