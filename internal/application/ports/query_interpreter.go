package ports

import (
	"context"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
)

// QueryInterpreter traduce una consulta en lenguaje natural de la búsqueda profunda
// a un filtro sobre la base de conocimiento.
// Cualquier adaptador (reglas, Anthropic, mock) debe implementar esta interfaz.
type QueryInterpreter interface {
	// InterpretQuery recibe la consulta y los estados conocidos (para resolver nombres).
	// El contexto debe llevar un timeout si el adaptador hace llamadas externas.
	InterpretQuery(ctx context.Context, query string, states []string) (*dto.SearchFilterDTO, error)
}
