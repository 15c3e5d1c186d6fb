// Package seed carga la base de conocimiento de circunscripciones desde YAML.
package seed

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
)

//go:embed constituencies.yaml
var defaultData []byte

// namespace para IDs deterministas (state + pc).
var namespace = uuid.MustParse("6f1c5a52-9d1b-4c55-9a43-3f0f6d1e2b7a")

type document struct {
	Constituencies []record `yaml:"constituencies"`
}

type record struct {
	ID                  string            `yaml:"id"`
	State               string            `yaml:"state"`
	PC                  string            `yaml:"pc"`
	WinningProbability  string            `yaml:"winning_probability"`
	AntiIncumbencyScore string            `yaml:"anti_incumbency_score"`
	SentimentIndex      string            `yaml:"sentiment_index"`
	Demographics        map[string]string `yaml:"demographics"`
	Boundary            [][]float64       `yaml:"boundary"`
}

// Default devuelve la semilla embebida.
func Default() ([]*entity.Constituency, error) {
	return Parse(strings.NewReader(string(defaultData)))
}

// LoadFile lee la semilla desde un archivo. Ruta vacía = semilla embebida.
func LoadFile(path string) ([]*entity.Constituency, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("seed: abrir %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodifica y valida el YAML.
func Parse(r io.Reader) ([]*entity.Constituency, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("seed: decodificar YAML: %w", err)
	}
	out := make([]*entity.Constituency, 0, len(doc.Constituencies))
	for i, rec := range doc.Constituencies {
		c, err := rec.toEntity()
		if err != nil {
			return nil, fmt.Errorf("seed: registro %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (rec record) toEntity() (*entity.Constituency, error) {
	state := strings.TrimSpace(rec.State)
	pc := strings.TrimSpace(rec.PC)
	if state == "" || pc == "" {
		return nil, fmt.Errorf("state y pc son obligatorios")
	}
	win, err := parsePercent("winning_probability", rec.WinningProbability, 100)
	if err != nil {
		return nil, err
	}
	anti, err := parsePercent("anti_incumbency_score", rec.AntiIncumbencyScore, 100)
	if err != nil {
		return nil, err
	}
	sent, err := parsePercent("sentiment_index", rec.SentimentIndex, 1)
	if err != nil {
		return nil, err
	}
	if len(rec.Boundary) < 3 {
		return nil, fmt.Errorf("%s: el límite necesita al menos 3 puntos", pc)
	}
	boundary := make([]entity.Point, 0, len(rec.Boundary))
	for j, p := range rec.Boundary {
		if len(p) != 2 {
			return nil, fmt.Errorf("%s: punto %d debe ser [lon, lat]", pc, j)
		}
		boundary = append(boundary, entity.Point{p[0], p[1]})
	}
	// el anillo se guarda abierto
	if len(boundary) > 3 && boundary[0] == boundary[len(boundary)-1] {
		boundary = boundary[:len(boundary)-1]
	}

	id := rec.ID
	if id == "" {
		id = uuid.NewSHA1(namespace, []byte(state+"/"+pc)).String()
	}
	demographics := make(map[string]string, len(rec.Demographics))
	for k, v := range rec.Demographics {
		demographics[k] = v
	}
	return &entity.Constituency{
		ID:                  id,
		State:               state,
		PC:                  pc,
		WinningProbability:  win,
		AntiIncumbencyScore: anti,
		SentimentIndex:      sent,
		Demographics:        demographics,
		Boundary:            boundary,
	}, nil
}

func parsePercent(field, raw string, max int64) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s %q: %w", field, raw, err)
	}
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(max)) {
		return decimal.Zero, fmt.Errorf("%s %s fuera de [0, %d]", field, d, max)
	}
	return d, nil
}
