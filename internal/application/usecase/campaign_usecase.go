package usecase

import (
	"fmt"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
)

const (
	socialTrackerPoints = 10
	fieldProgress       = 0.5
)

// CampaignUseCase arma la sección Campaign Management.
type CampaignUseCase struct {
	rnd RandomSource
}

// NewCampaignUseCase construye el caso de uso.
func NewCampaignUseCase(rnd RandomSource) *CampaignUseCase {
	return &CampaignUseCase{rnd: rnd}
}

// GetCampaign serie del tracker de redes sociales + avance del puerta a puerta.
func (uc *CampaignUseCase) GetCampaign() *dto.CampaignDTO {
	series := make([]float64, socialTrackerPoints)
	for i := range series {
		series[i] = uc.rnd.Float64()
	}
	return &dto.CampaignDTO{
		SocialMediaTracker: series,
		FieldProgress:      fieldProgress,
		CanvassingLabel:    fmt.Sprintf("Canvassing Progress: %.0f%%", fieldProgress*100),
	}
}
