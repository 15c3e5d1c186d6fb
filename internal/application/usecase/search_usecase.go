package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/application/ports"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
	"github.com/jhoicas/bharat-chakra/pkg/logger"
)

// DefaultSearchQuery consulta precargada en el campo de búsqueda.
const DefaultSearchQuery = "Show ACs in Uttar Pradesh with anti-incumbency > 70"

const (
	highRiskSummary  = "High risk in selected areas."
	noMatchSummary   = "No constituencies match the query."
	interpretTimeout = 10 * time.Second
)

// SearchUseCase sección Deep Search: consulta en lenguaje natural → filtro → tabla.
//
// interpreter es opcional (p. ej. el adaptador de Anthropic); si falla o no está
// configurado se usa fallback (intérprete por reglas).
type SearchUseCase struct {
	repo        repository.ConstituencyRepository
	interpreter ports.QueryInterpreter
	fallback    ports.QueryInterpreter
	log         *logger.Logger
}

// NewSearchUseCase construye el caso de uso. fallback es obligatorio.
func NewSearchUseCase(repo repository.ConstituencyRepository, interpreter, fallback ports.QueryInterpreter, log *logger.Logger) *SearchUseCase {
	return &SearchUseCase{repo: repo, interpreter: interpreter, fallback: fallback, log: log.Component("search")}
}

// Search interpreta la consulta (vacía = DefaultSearchQuery) y devuelve las circunscripciones.
func (uc *SearchUseCase) Search(ctx context.Context, query string) (*dto.SearchResultDTO, error) {
	if query == "" {
		query = DefaultSearchQuery
	}
	states, err := uc.repo.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: listar estados: %w", err)
	}
	filter, err := uc.interpret(ctx, query, states)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.Search(ctx, entity.ConstituencyFilter{
		State:               filter.State,
		AntiIncumbencyAbove: filter.AntiIncumbencyAbove,
	})
	if err != nil {
		return nil, fmt.Errorf("search: consultar: %w", err)
	}

	results := make([]dto.ConstituencyDTO, 0, len(rows))
	for _, c := range rows {
		results = append(results, toConstituencyDTO(c))
	}
	summary := highRiskSummary
	if len(results) == 0 {
		summary = noMatchSummary
	}
	return &dto.SearchResultDTO{Query: query, Filter: *filter, Results: results, Summary: summary}, nil
}

func (uc *SearchUseCase) interpret(ctx context.Context, query string, states []string) (*dto.SearchFilterDTO, error) {
	if uc.interpreter != nil {
		ictx, cancel := context.WithTimeout(ctx, interpretTimeout)
		filter, err := uc.interpreter.InterpretQuery(ictx, query, states)
		cancel()
		if err == nil {
			return filter, nil
		}
		uc.log.Warn().Err(err).Str("query", query).Msg("intérprete principal falló, se usan reglas")
	}
	filter, err := uc.fallback.InterpretQuery(ctx, query, states)
	if err != nil {
		return nil, fmt.Errorf("search: interpretar consulta: %w", err)
	}
	return filter, nil
}
