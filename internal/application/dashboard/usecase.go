// Package dashboard compone las secciones visibles para una sesión.
package dashboard

import (
	"context"
	"fmt"

	"github.com/jhoicas/bharat-chakra/internal/application/auth"
	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/access"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// Title encabezado del dashboard.
const Title = "Bharat Chakra"

// Puertos de cada sección (implementados por application/usecase y application/report).
type (
	WeatherProvider interface {
		GetOverview() *dto.WeatherOverviewDTO
	}
	TilesProvider interface {
		GetTiles(ctx context.Context) (*dto.AnalyticsTilesDTO, error)
	}
	MapProvider interface {
		GetMap(ctx context.Context, kpi string) (*dto.MapDTO, error)
	}
	DeepDiveProvider interface {
		DeepDive(ctx context.Context, state string, candidateStrength *int) (*dto.DeepDiveDTO, error)
	}
	SearchProvider interface {
		Search(ctx context.Context, query string) (*dto.SearchResultDTO, error)
	}
	CampaignProvider interface {
		GetCampaign() *dto.CampaignDTO
	}
	PredictionProvider interface {
		Predict(input int) (dto.PredictionDTO, error)
	}
	ReportProvider interface {
		Describe() *dto.ReportDTO
	}
)

// Providers agrupa las dependencias del compositor.
type Providers struct {
	Weather    WeatherProvider
	Tiles      TilesProvider
	Map        MapProvider
	DeepDive   DeepDiveProvider
	Search     SearchProvider
	Campaign   CampaignProvider
	Prediction PredictionProvider
	Report     ReportProvider
}

// UseCase compositor del dashboard.
type UseCase struct {
	p Providers
}

// NewUseCase construye el compositor.
func NewUseCase(p Providers) *UseCase {
	return &UseCase{p: p}
}

// Compose arma en paralelo el payload de cada sección visible para la sesión,
// respetando el orden de la tabla de requisitos. El primer error de una sección
// hace fallar toda la composición.
func (uc *UseCase) Compose(ctx context.Context, session entity.Session, username string, params dto.DashboardParams) (*dto.DashboardDTO, error) {
	ids := access.ComposeSections(session)

	type result struct {
		idx     int
		payload any
		err     error
	}
	results := make(chan result, len(ids))
	for i, id := range ids {
		go func() {
			payload, err := uc.build(ctx, id, params)
			results <- result{idx: i, payload: payload, err: err}
		}()
	}

	sections := make([]dto.SectionDTO, len(ids))
	var firstErr error
	for range ids {
		r := <-results
		id := ids[r.idx]
		if r.err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("dashboard: sección %s: %w", id, r.err)
			}
			continue
		}
		req, _ := access.Requirement(id)
		sections[r.idx] = dto.SectionDTO{
			ID:       string(id),
			Title:    id.Title(),
			MinLevel: req.MinLevel,
			Payload:  r.payload,
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return &dto.DashboardDTO{
		Title:    Title,
		Session:  auth.ToSessionDTO(session, username),
		Sections: sections,
	}, nil
}

// SectionTable tabla completa de secciones marcando cuáles ve la sesión.
func (uc *UseCase) SectionTable(session entity.Session) []dto.SectionRequirementDTO {
	reqs := access.Requirements()
	out := make([]dto.SectionRequirementDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, dto.SectionRequirementDTO{
			ID:       string(r.Section),
			Title:    r.Section.Title(),
			MinLevel: r.MinLevel,
			Visible:  access.HasAccess(session, r.MinLevel),
		})
	}
	return out
}

func (uc *UseCase) build(ctx context.Context, id entity.SectionID, params dto.DashboardParams) (any, error) {
	switch id {
	case entity.SectionGISMap:
		return uc.p.Map.GetMap(ctx, params.KPI)
	case entity.SectionWeatherOverview:
		return uc.p.Weather.GetOverview(), nil
	case entity.SectionAnalyticsTiles:
		return uc.p.Tiles.GetTiles(ctx)
	case entity.SectionConstituencyDeepDive:
		return uc.p.DeepDive.DeepDive(ctx, params.State, params.CandidateStrength)
	case entity.SectionDeepSearch:
		return uc.p.Search.Search(ctx, params.Query)
	case entity.SectionCampaignManagement:
		return uc.p.Campaign.GetCampaign(), nil
	case entity.SectionPredictiveAnalytics:
		spending := 50
		if params.Spending != nil {
			spending = *params.Spending
		}
		return uc.p.Prediction.Predict(spending)
	case entity.SectionReports:
		return uc.p.Report.Describe(), nil
	default:
		return nil, fmt.Errorf("sección sin constructor: %s", id)
	}
}
