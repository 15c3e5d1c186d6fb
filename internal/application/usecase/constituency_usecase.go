package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
)

var (
	matrixRows    = []string{"Male", "Female", "Urban", "Rural"}
	matrixColumns = []string{"Age 18-25", "26-40", "41-60", "60+"}
)

// ConstituencyUseCase sección Constituency Deep-Dive.
type ConstituencyUseCase struct {
	repo       repository.ConstituencyRepository
	prediction *PredictionUseCase
	rnd        RandomSource
}

// NewConstituencyUseCase construye el caso de uso.
func NewConstituencyUseCase(repo repository.ConstituencyRepository, prediction *PredictionUseCase, rnd RandomSource) *ConstituencyUseCase {
	return &ConstituencyUseCase{repo: repo, prediction: prediction, rnd: rnd}
}

// DeepDive perfil de la circunscripción del estado seleccionado con "Drill Down".
// Sin estado devuelve la sección sin perfil. candidateStrength nil = 50.
// Devuelve domain.ErrNotFound si el estado no existe y domain.ErrInvalidInput si la fuerza
// del candidato está fuera de [0, 100].
func (uc *ConstituencyUseCase) DeepDive(ctx context.Context, state string, candidateStrength *int) (*dto.DeepDiveDTO, error) {
	strength := sliderValue(candidateStrength)
	if strength < sliderMin || strength > sliderMax {
		return nil, fmt.Errorf("%w: candidate_strength %d fuera de [0, 100]", domain.ErrInvalidInput, strength)
	}
	if state == "" {
		return &dto.DeepDiveDTO{}, nil
	}

	c, err := uc.repo.GetByState(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("deep-dive: obtener circunscripción: %w", err)
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	simulated, err := uc.prediction.Predict(strength)
	if err != nil {
		return nil, err
	}

	return &dto.DeepDiveDTO{
		SelectedState: c.State,
		Profile: &dto.ProfileDTO{
			PC:                c.PC,
			State:             c.State,
			Demographics:      copyDemographics(c.Demographics),
			RiskScore:         c.AntiIncumbencyScore,
			CandidateStrength: strength,
			SimulatedWin:      simulated,
			SentimentMatrix:   uc.sentimentMatrix(),
		},
	}, nil
}

func (uc *ConstituencyUseCase) sentimentMatrix() dto.MatrixDTO {
	values := make([][]float64, len(matrixRows))
	for i := range values {
		values[i] = make([]float64, len(matrixColumns))
		for j := range values[i] {
			values[i][j] = uc.rnd.Float64()
		}
	}
	return dto.MatrixDTO{Rows: matrixRows, Columns: matrixColumns, Values: values}
}
