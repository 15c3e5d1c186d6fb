package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
)

// Asegura que ConstituencyRepo implementa repository.ConstituencyRepository.
var _ repository.ConstituencyRepository = (*ConstituencyRepo)(nil)

const selectConstituency = `
	SELECT id, state, pc, winning_probability, anti_incumbency_score, sentiment_index,
	       demographics, boundary
	FROM constituencies`

// ConstituencyRepo implementación del puerto ConstituencyRepository sobre PostgreSQL.
type ConstituencyRepo struct {
	q Querier
}

// NewConstituencyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewConstituencyRepository(q Querier) *ConstituencyRepo {
	return &ConstituencyRepo{q: q}
}

// List devuelve todas las circunscripciones en el orden de carga.
func (r *ConstituencyRepo) List(ctx context.Context) ([]*entity.Constituency, error) {
	return r.query(ctx, selectConstituency+` ORDER BY position`)
}

// GetByState devuelve la primera circunscripción del estado o (nil, nil).
func (r *ConstituencyRepo) GetByState(ctx context.Context, state string) (*entity.Constituency, error) {
	row := r.q.QueryRow(ctx, selectConstituency+` WHERE state = $1 ORDER BY position LIMIT 1`, state)
	c, err := scanConstituency(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get constituency by state: %w", err)
	}
	return c, nil
}

// States estados distintos en orden de aparición.
func (r *ConstituencyRepo) States(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `
		SELECT state FROM constituencies
		GROUP BY state
		ORDER BY MIN(position)`)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	defer rows.Close()

	states := make([]string, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("scan state: %w", err)
		}
		states = append(states, s)
	}
	return states, rows.Err()
}

// Search filtra por estado (vacío = todos) y anti-incumbencia estrictamente mayor al umbral.
func (r *ConstituencyRepo) Search(ctx context.Context, f entity.ConstituencyFilter) ([]*entity.Constituency, error) {
	return r.query(ctx, selectConstituency+`
		WHERE ($1 = '' OR state = $1) AND anti_incumbency_score > $2
		ORDER BY position`, f.State, f.AntiIncumbencyAbove)
}

// Upsert inserta o actualiza las circunscripciones conservando el orden recibido.
func (r *ConstituencyRepo) Upsert(ctx context.Context, items []*entity.Constituency) error {
	const query = `
		INSERT INTO constituencies (id, position, state, pc, winning_probability,
		                            anti_incumbency_score, sentiment_index, demographics, boundary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			position = EXCLUDED.position,
			state = EXCLUDED.state,
			pc = EXCLUDED.pc,
			winning_probability = EXCLUDED.winning_probability,
			anti_incumbency_score = EXCLUDED.anti_incumbency_score,
			sentiment_index = EXCLUDED.sentiment_index,
			demographics = EXCLUDED.demographics,
			boundary = EXCLUDED.boundary`
	for i, c := range items {
		demographics, boundary, err := encodeJSONColumns(c)
		if err != nil {
			return err
		}
		if _, err := r.q.Exec(ctx, query,
			c.ID, i, c.State, c.PC, c.WinningProbability,
			c.AntiIncumbencyScore, c.SentimentIndex, demographics, boundary,
		); err != nil {
			return fmt.Errorf("upsert constituency %s: %w", c.PC, err)
		}
	}
	return nil
}

// Count número de filas (para sembrar solo una base vacía).
func (r *ConstituencyRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM constituencies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count constituencies: %w", err)
	}
	return n, nil
}

func (r *ConstituencyRepo) query(ctx context.Context, sql string, args ...any) ([]*entity.Constituency, error) {
	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query constituencies: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Constituency, 0)
	for rows.Next() {
		c, err := scanConstituency(rows)
		if err != nil {
			return nil, fmt.Errorf("scan constituency: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConstituency(row pgxScanner) (*entity.Constituency, error) {
	var (
		c            entity.Constituency
		demographics []byte
		boundary     []byte
	)
	if err := row.Scan(
		&c.ID, &c.State, &c.PC, &c.WinningProbability, &c.AntiIncumbencyScore, &c.SentimentIndex,
		&demographics, &boundary,
	); err != nil {
		return nil, err
	}
	if err := decodeJSONColumns(&c, demographics, boundary); err != nil {
		return nil, err
	}
	return &c, nil
}

// encodeJSONColumns serializa demographics y boundary para columnas JSON(B).
func encodeJSONColumns(c *entity.Constituency) (demographics, boundary []byte, err error) {
	d := c.Demographics
	if d == nil {
		d = map[string]string{}
	}
	if demographics, err = json.Marshal(d); err != nil {
		return nil, nil, fmt.Errorf("encode demographics: %w", err)
	}
	if boundary, err = json.Marshal(c.Boundary); err != nil {
		return nil, nil, fmt.Errorf("encode boundary: %w", err)
	}
	return demographics, boundary, nil
}

func decodeJSONColumns(c *entity.Constituency, demographics, boundary []byte) error {
	c.Demographics = map[string]string{}
	if len(demographics) > 0 {
		if err := json.Unmarshal(demographics, &c.Demographics); err != nil {
			return fmt.Errorf("decode demographics: %w", err)
		}
	}
	if err := json.Unmarshal(boundary, &c.Boundary); err != nil {
		return fmt.Errorf("decode boundary: %w", err)
	}
	return nil
}
