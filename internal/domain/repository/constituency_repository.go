package repository

import (
	"context"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// ConstituencyRepository puerto de lectura de la base de conocimiento electoral (DIP).
// Las implementaciones (memoria, PostgreSQL, SQLite) viven en infrastructure.
type ConstituencyRepository interface {
	// List devuelve todas las circunscripciones en orden estable.
	List(ctx context.Context) ([]*entity.Constituency, error)
	// GetByState devuelve la primera circunscripción del estado, o (nil, nil) si no existe.
	GetByState(ctx context.Context, state string) (*entity.Constituency, error)
	// States devuelve los estados distintos en orden de aparición.
	States(ctx context.Context) ([]string, error)
	// Search aplica el filtro de la búsqueda profunda.
	Search(ctx context.Context, filter entity.ConstituencyFilter) ([]*entity.Constituency, error)
}
