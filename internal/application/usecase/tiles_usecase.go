package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
)

// TilesUseCase KPIs agregados de la sección Analytics Tiles.
type TilesUseCase struct {
	repo repository.ConstituencyRepository
}

// NewTilesUseCase construye el caso de uso.
func NewTilesUseCase(repo repository.ConstituencyRepository) *TilesUseCase {
	return &TilesUseCase{repo: repo}
}

// GetTiles promedia los indicadores de todas las circunscripciones (2 decimales).
// Sin datos devuelve ceros.
func (uc *TilesUseCase) GetTiles(ctx context.Context) (*dto.AnalyticsTilesDTO, error) {
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("tiles: listar circunscripciones: %w", err)
	}
	out := &dto.AnalyticsTilesDTO{
		TrackedConstituencies: len(items),
		AvgWinningProbability: decimal.Zero,
		AvgAntiIncumbency:     decimal.Zero,
		AvgSentimentIndex:     decimal.Zero,
	}
	if len(items) == 0 {
		return out, nil
	}

	var win, anti, sent decimal.Decimal
	for _, c := range items {
		win = win.Add(c.WinningProbability)
		anti = anti.Add(c.AntiIncumbencyScore)
		sent = sent.Add(c.SentimentIndex)
	}
	n := decimal.NewFromInt(int64(len(items)))
	out.AvgWinningProbability = win.Div(n).Round(2)
	out.AvgAntiIncumbency = anti.Div(n).Round(2)
	out.AvgSentimentIndex = sent.Div(n).Round(2)
	return out, nil
}
