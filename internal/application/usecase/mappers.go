package usecase

import (
	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

func toConstituencyDTO(c *entity.Constituency) dto.ConstituencyDTO {
	return dto.ConstituencyDTO{
		State:               c.State,
		PC:                  c.PC,
		WinningProbability:  c.WinningProbability,
		AntiIncumbencyScore: c.AntiIncumbencyScore,
		SentimentIndex:      c.SentimentIndex,
		Demographics:        copyDemographics(c.Demographics),
	}
}

func copyDemographics(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
