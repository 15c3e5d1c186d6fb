package dashboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bharat-chakra/internal/application/dashboard"
	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/access"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

type stubs struct {
	mapErr      error
	gotKPI      string
	gotState    string
	gotStrength *int
	gotQuery    string
	gotSpending int
}

func (s *stubs) GetOverview() *dto.WeatherOverviewDTO { return &dto.WeatherOverviewDTO{Countdown: "c"} }
func (s *stubs) GetTiles(context.Context) (*dto.AnalyticsTilesDTO, error) {
	return &dto.AnalyticsTilesDTO{TrackedConstituencies: 2}, nil
}
func (s *stubs) GetMap(_ context.Context, kpi string) (*dto.MapDTO, error) {
	s.gotKPI = kpi
	if s.mapErr != nil {
		return nil, s.mapErr
	}
	return &dto.MapDTO{KPI: kpi}, nil
}
func (s *stubs) DeepDive(_ context.Context, state string, strength *int) (*dto.DeepDiveDTO, error) {
	s.gotState, s.gotStrength = state, strength
	return &dto.DeepDiveDTO{SelectedState: state}, nil
}
func (s *stubs) Search(_ context.Context, q string) (*dto.SearchResultDTO, error) {
	s.gotQuery = q
	return &dto.SearchResultDTO{Query: q}, nil
}
func (s *stubs) GetCampaign() *dto.CampaignDTO { return &dto.CampaignDTO{FieldProgress: 0.5} }
func (s *stubs) Predict(in int) (dto.PredictionDTO, error) {
	s.gotSpending = in
	return dto.PredictionDTO{Input: in, Probability: 73.1}, nil
}
func (s *stubs) Describe() *dto.ReportDTO { return &dto.ReportDTO{Title: "r"} }

func newUseCase(s *stubs) *dashboard.UseCase {
	return dashboard.NewUseCase(dashboard.Providers{
		Weather: s, Tiles: s, Map: s, DeepDive: s, Search: s, Campaign: s, Prediction: s, Report: s,
	})
}

func sectionIDs(d *dto.DashboardDTO) []string {
	ids := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		ids = append(ids, s.ID)
	}
	return ids
}

func TestCompose_SinSesionSoloSeccionesAbiertas(t *testing.T) {
	d, err := newUseCase(&stubs{}).Compose(context.Background(), access.Logout(), "", dto.DashboardParams{})
	require.NoError(t, err)
	assert.Equal(t, "Bharat Chakra", d.Title)
	assert.False(t, d.Session.Authenticated)
	assert.Equal(t, []string{"weather-overview", "analytics-tiles", "reports"}, sectionIDs(d))
	assert.Equal(t, "Political Weather Overview", d.Sections[0].Title)
}

func TestCompose_AdminVeTodoEnOrden(t *testing.T) {
	s := &stubs{}
	strength := 80
	spending := 10
	d, err := newUseCase(s).Compose(context.Background(), access.Login(entity.RoleNationalAdmin), "asha", dto.DashboardParams{
		KPI: "Sentiment_Index", State: "Maharashtra", CandidateStrength: &strength, Query: "q", Spending: &spending,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"gis-map", "weather-overview", "analytics-tiles", "constituency-deep-dive",
		"deep-search", "campaign-management", "predictive-analytics", "reports",
	}, sectionIDs(d))
	assert.Equal(t, "asha", d.Session.Username)

	assert.Equal(t, "Sentiment_Index", s.gotKPI)
	assert.Equal(t, "Maharashtra", s.gotState)
	require.NotNil(t, s.gotStrength)
	assert.Equal(t, 80, *s.gotStrength)
	assert.Equal(t, "q", s.gotQuery)
	assert.Equal(t, 10, s.gotSpending)

	pred, ok := d.Sections[6].Payload.(dto.PredictionDTO)
	require.True(t, ok)
	assert.Equal(t, 73.1, pred.Probability)
	assert.Equal(t, 4, d.Sections[6].MinLevel)
}

func TestCompose_FieldManager(t *testing.T) {
	d, err := newUseCase(&stubs{}).Compose(context.Background(), access.Login(entity.RoleFieldManager), "", dto.DashboardParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"weather-overview", "analytics-tiles", "constituency-deep-dive", "deep-search", "reports",
	}, sectionIDs(d))
}

func TestCompose_GastoPorDefecto(t *testing.T) {
	s := &stubs{}
	_, err := newUseCase(s).Compose(context.Background(), access.Login(entity.RoleClient), "", dto.DashboardParams{})
	require.NoError(t, err)
	assert.Equal(t, 50, s.gotSpending)
}

func TestCompose_ErrorDeSeccion(t *testing.T) {
	boom := errors.New("boom")
	_, err := newUseCase(&stubs{mapErr: boom}).Compose(context.Background(), access.Login(entity.RoleCampaignManager), "", dto.DashboardParams{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "gis-map")
}

func TestSectionTable(t *testing.T) {
	table := newUseCase(&stubs{}).SectionTable(access.Login(entity.RoleBoothWorker))
	require.Len(t, table, 8)
	visible := map[string]bool{}
	for _, r := range table {
		visible[r.ID] = r.Visible
	}
	assert.True(t, visible["weather-overview"])
	assert.True(t, visible["reports"])
	assert.False(t, visible["constituency-deep-dive"])
	assert.False(t, visible["gis-map"])
}
