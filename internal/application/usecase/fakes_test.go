package usecase

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// fixedRandom devuelve siempre los mismos valores.
type fixedRandom struct {
	f float64
	n int
}

func (r fixedRandom) Float64() float64 { return r.f }
func (r fixedRandom) IntN(int) int     { return r.n }

type fakeRepo struct {
	items []*entity.Constituency
	err   error
}

func (r *fakeRepo) List(context.Context) ([]*entity.Constituency, error) {
	return r.items, r.err
}

func (r *fakeRepo) GetByState(_ context.Context, state string) (*entity.Constituency, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, c := range r.items {
		if c.State == state {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) States(context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []string
	seen := map[string]bool{}
	for _, c := range r.items {
		if !seen[c.State] {
			seen[c.State] = true
			out = append(out, c.State)
		}
	}
	return out, nil
}

func (r *fakeRepo) Search(_ context.Context, f entity.ConstituencyFilter) ([]*entity.Constituency, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*entity.Constituency
	for _, c := range r.items {
		if f.State != "" && c.State != f.State {
			continue
		}
		if !c.AntiIncumbencyScore.GreaterThan(f.AntiIncumbencyAbove) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func sampleRepo() *fakeRepo {
	return &fakeRepo{items: []*entity.Constituency{
		{
			ID: "1", State: "Uttar Pradesh", PC: "Varanasi",
			WinningProbability:  decimal.NewFromInt(75),
			AntiIncumbencyScore: decimal.NewFromInt(40),
			SentimentIndex:      decimal.RequireFromString("0.6"),
			Demographics:        map[string]string{"Caste": "General:50%, OBC:30%"},
			Boundary:            []entity.Point{{80, 25}, {82, 26}, {81, 24}},
		},
		{
			ID: "2", State: "Maharashtra", PC: "Mumbai North",
			WinningProbability:  decimal.NewFromInt(60),
			AntiIncumbencyScore: decimal.NewFromInt(55),
			SentimentIndex:      decimal.RequireFromString("0.4"),
			Demographics:        map[string]string{"Caste": "General:40%, SC:20%"},
			Boundary:            []entity.Point{{75, 19}, {77, 20}, {76, 18}},
		},
	}}
}

// stubInterpreter devuelve un filtro fijo o un error.
type stubInterpreter struct {
	filter *dto.SearchFilterDTO
	err    error
	calls  int
}

func (s *stubInterpreter) InterpretQuery(context.Context, string, []string) (*dto.SearchFilterDTO, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	f := *s.filter
	return &f, nil
}

var errBoom = errors.New("boom")

type stubExporter struct {
	title string
	layer dto.FeatureCollectionDTO
}

func (s *stubExporter) ExportLayer(_ context.Context, title string, layer dto.FeatureCollectionDTO) ([]byte, string, error) {
	s.title = title
	s.layer = layer
	return []byte("<kml/>"), "digest", nil
}
