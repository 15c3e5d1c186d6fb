package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

// Bootstrap aplica las migraciones y, si la tabla está vacía, carga items en una transacción.
// Devuelve cuántas filas se sembraron (0 si ya había datos).
func Bootstrap(ctx context.Context, pool *pgxpool.Pool, items []*entity.Constituency) (int, error) {
	if err := Migrate(ctx, pool); err != nil {
		return 0, err
	}
	n, err := NewConstituencyRepository(pool).Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	err = NewTxRunner(pool).Run(ctx, func(q Querier) error {
		return NewConstituencyRepository(q).Upsert(ctx, items)
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}
