// Package sqlite implementa la base de conocimiento sobre SQLite (modernc.org/sqlite, sin cgo).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
)

// Asegura que Store implementa repository.ConstituencyRepository.
var _ repository.ConstituencyRepository = (*Store)(nil)

var schema = []string{`
CREATE TABLE IF NOT EXISTS constituencies (
    id                    TEXT PRIMARY KEY,
    position              INTEGER NOT NULL,
    state                 TEXT    NOT NULL,
    pc                    TEXT    NOT NULL,
    winning_probability   TEXT    NOT NULL,
    anti_incumbency_score TEXT    NOT NULL,
    sentiment_index       TEXT    NOT NULL,
    demographics          TEXT    NOT NULL DEFAULT '{}',
    boundary              TEXT    NOT NULL,
    UNIQUE (state, pc)
)`,
	`CREATE INDEX IF NOT EXISTS idx_constituencies_state ON constituencies (state)`,
}

const selectConstituency = `
	SELECT id, state, pc, winning_probability, anti_incumbency_score, sentiment_index,
	       demographics, boundary
	FROM constituencies`

// Store base de conocimiento en SQLite. Los decimales se guardan como TEXT.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path y asegura el esquema.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: ruta requerida")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("sqlite: crear esquema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close cierra la base.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// SeedIfEmpty carga items solo si la tabla está vacía. Devuelve cuántas filas insertó.
func (s *Store) SeedIfEmpty(ctx context.Context, items []*entity.Constituency) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM constituencies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sqlite: contar: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("sqlite: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO constituencies (id, position, state, pc, winning_probability,
		                            anti_incumbency_score, sentiment_index, demographics, boundary)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("sqlite: preparar insert: %w", err)
	}
	defer stmt.Close()

	for i, c := range items {
		demographics, err := json.Marshal(nonNil(c.Demographics))
		if err != nil {
			return 0, fmt.Errorf("sqlite: encode demographics: %w", err)
		}
		boundary, err := json.Marshal(c.Boundary)
		if err != nil {
			return 0, fmt.Errorf("sqlite: encode boundary: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			c.ID, i, c.State, c.PC,
			c.WinningProbability.String(), c.AntiIncumbencyScore.String(), c.SentimentIndex.String(),
			string(demographics), string(boundary),
		); err != nil {
			return 0, fmt.Errorf("sqlite: insertar %s: %w", c.PC, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("sqlite: commit: %w", err)
	}
	return len(items), nil
}

// List devuelve todas las circunscripciones en orden de carga.
func (s *Store) List(ctx context.Context) ([]*entity.Constituency, error) {
	return s.query(ctx, selectConstituency+` ORDER BY position`)
}

// GetByState devuelve la primera circunscripción del estado o (nil, nil).
func (s *Store) GetByState(ctx context.Context, state string) (*entity.Constituency, error) {
	items, err := s.query(ctx, selectConstituency+` WHERE state = ? ORDER BY position LIMIT 1`, state)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

// States estados distintos en orden de aparición.
func (s *Store) States(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT state FROM constituencies
		GROUP BY state
		ORDER BY MIN(position)`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listar estados: %w", err)
	}
	defer rows.Close()

	states := make([]string, 0)
	for rows.Next() {
		var st string
		if err := rows.Scan(&st); err != nil {
			return nil, fmt.Errorf("sqlite: scan estado: %w", err)
		}
		states = append(states, st)
	}
	return states, rows.Err()
}

// Search filtra por estado en SQL; el umbral (estricto) se compara con decimal en Go
// porque SQLite no tiene tipo NUMERIC exacto.
func (s *Store) Search(ctx context.Context, f entity.ConstituencyFilter) ([]*entity.Constituency, error) {
	items, err := s.query(ctx, selectConstituency+` WHERE (? = '' OR state = ?) ORDER BY position`, f.State, f.State)
	if err != nil {
		return nil, err
	}
	out := items[:0]
	for _, c := range items {
		if c.AntiIncumbencyScore.GreaterThan(f.AntiIncumbencyAbove) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]*entity.Constituency, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: consultar: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Constituency, 0)
	for rows.Next() {
		var (
			c                    entity.Constituency
			win, anti, sentiment string
			demographics         string
			boundary             string
		)
		if err := rows.Scan(&c.ID, &c.State, &c.PC, &win, &anti, &sentiment, &demographics, &boundary); err != nil {
			return nil, fmt.Errorf("sqlite: scan: %w", err)
		}
		if c.WinningProbability, err = decimal.NewFromString(win); err != nil {
			return nil, fmt.Errorf("sqlite: winning_probability %q: %w", win, err)
		}
		if c.AntiIncumbencyScore, err = decimal.NewFromString(anti); err != nil {
			return nil, fmt.Errorf("sqlite: anti_incumbency_score %q: %w", anti, err)
		}
		if c.SentimentIndex, err = decimal.NewFromString(sentiment); err != nil {
			return nil, fmt.Errorf("sqlite: sentiment_index %q: %w", sentiment, err)
		}
		c.Demographics = map[string]string{}
		if err := json.Unmarshal([]byte(demographics), &c.Demographics); err != nil {
			return nil, fmt.Errorf("sqlite: decode demographics: %w", err)
		}
		if err := json.Unmarshal([]byte(boundary), &c.Boundary); err != nil {
			return nil, fmt.Errorf("sqlite: decode boundary: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func nonNil(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
