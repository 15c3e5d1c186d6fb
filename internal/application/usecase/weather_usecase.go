package usecase

import (
	"fmt"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
)

const (
	electionProgress  = 0.7
	nationalSentiment = "National Sentiment: Positive ↑"
)

var keyIssues = []string{"Inflation", "Employment", "Agriculture"}

// WeatherConfig textos de la cuenta regresiva.
type WeatherConfig struct {
	ElectionName  string
	CountdownDays int
}

// WeatherUseCase arma el panel Political Weather Overview.
type WeatherUseCase struct {
	cfg WeatherConfig
	rnd RandomSource
}

// NewWeatherUseCase construye el caso de uso.
func NewWeatherUseCase(cfg WeatherConfig, rnd RandomSource) *WeatherUseCase {
	return &WeatherUseCase{cfg: cfg, rnd: rnd}
}

// GetOverview devuelve la cuenta regresiva y el radar de temas (saliencia aleatoria).
func (uc *WeatherUseCase) GetOverview() *dto.WeatherOverviewDTO {
	radar := make([]dto.IssueSalienceDTO, 0, len(keyIssues))
	for _, issue := range keyIssues {
		radar = append(radar, dto.IssueSalienceDTO{Issue: issue, Salience: uc.rnd.Float64()})
	}
	return &dto.WeatherOverviewDTO{
		Countdown:         fmt.Sprintf("%d days to %s", uc.cfg.CountdownDays, uc.cfg.ElectionName),
		CampaignProgress:  electionProgress,
		NationalSentiment: nationalSentiment,
		IssueRadar:        radar,
	}
}
