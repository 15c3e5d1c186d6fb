// Package memory implementa los puertos de persistencia en memoria (semilla YAML).
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
)

// Asegura que ConstituencyRepo implementa repository.ConstituencyRepository.
var _ repository.ConstituencyRepository = (*ConstituencyRepo)(nil)

// ConstituencyRepo base de conocimiento de solo lectura en memoria.
type ConstituencyRepo struct {
	mu    sync.RWMutex
	items []*entity.Constituency
}

// NewConstituencyRepository construye el repositorio con una copia de items.
func NewConstituencyRepository(items []*entity.Constituency) *ConstituencyRepo {
	r := &ConstituencyRepo{}
	r.Replace(items)
	return r
}

// Replace sustituye el contenido completo (recarga de la semilla).
func (r *ConstituencyRepo) Replace(items []*entity.Constituency) {
	cp := make([]*entity.Constituency, 0, len(items))
	for _, c := range items {
		cp = append(cp, clone(c))
	}
	r.mu.Lock()
	r.items = cp
	r.mu.Unlock()
}

// List devuelve todas las circunscripciones en el orden de la semilla.
func (r *ConstituencyRepo) List(ctx context.Context) ([]*entity.Constituency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Constituency, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, clone(c))
	}
	return out, nil
}

// GetByState devuelve la primera circunscripción del estado o (nil, nil).
func (r *ConstituencyRepo) GetByState(ctx context.Context, state string) (*entity.Constituency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.State == state {
			return clone(c), nil
		}
	}
	return nil, nil
}

// States estados distintos en orden de aparición.
func (r *ConstituencyRepo) States(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	seen := make(map[string]struct{}, len(r.items))
	out := make([]string, 0, len(r.items))
	for _, c := range r.items {
		if _, ok := seen[c.State]; ok {
			continue
		}
		seen[c.State] = struct{}{}
		out = append(out, c.State)
	}
	return out, nil
}

// Search filtra por estado (vacío = todos) y anti-incumbencia estrictamente mayor al umbral.
func (r *ConstituencyRepo) Search(ctx context.Context, f entity.ConstituencyFilter) ([]*entity.Constituency, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Constituency, 0)
	for _, c := range r.items {
		if f.State != "" && c.State != f.State {
			continue
		}
		if !c.AntiIncumbencyScore.GreaterThan(f.AntiIncumbencyAbove) {
			continue
		}
		out = append(out, clone(c))
	}
	return out, nil
}

func clone(c *entity.Constituency) *entity.Constituency {
	cp := *c
	cp.Demographics = make(map[string]string, len(c.Demographics))
	for k, v := range c.Demographics {
		cp.Demographics[k] = v
	}
	cp.Boundary = append([]entity.Point(nil), c.Boundary...)
	return &cp
}
