package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bharat-chakra/internal/application/dto"
	"github.com/jhoicas/bharat-chakra/internal/application/ports"
	"github.com/jhoicas/bharat-chakra/internal/domain"
	"github.com/jhoicas/bharat-chakra/internal/domain/entity"
	"github.com/jhoicas/bharat-chakra/internal/domain/repository"
)

const (
	mapZoom       = 5
	fillHighColor = "green"
	fillLowColor  = "red"
	strokeColor   = "black"
	strokeWeight  = 1
)

var (
	mapCenter    = [2]float64{20.5937, 78.9629} // centro de India [lat, lon]
	kpiThreshold = decimal.NewFromInt(60)       // kpi > 60 → verde
)

// MapUseCase arma la capa del Interactive GIS Map.
type MapUseCase struct {
	repo     repository.ConstituencyRepository
	exporter ports.MapExporter
}

// NewMapUseCase construye el caso de uso. exporter puede ser nil si no se exporta KML.
func NewMapUseCase(repo repository.ConstituencyRepository, exporter ports.MapExporter) *MapUseCase {
	return &MapUseCase{repo: repo, exporter: exporter}
}

// GetMap devuelve la capa GeoJSON coloreada por el KPI (vacío = Winning_Probability)
// y la lista de estados para el drill-down.
// Devuelve domain.ErrInvalidInput si el KPI no existe.
func (uc *MapUseCase) GetMap(ctx context.Context, kpiName string) (*dto.MapDTO, error) {
	kpi, err := entity.ParseKPI(kpiName)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	items, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("map: listar circunscripciones: %w", err)
	}
	states, err := uc.repo.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("map: listar estados: %w", err)
	}

	layer, err := buildLayer(items, kpi)
	if err != nil {
		return nil, err
	}
	options := make([]string, 0, len(entity.KPIs()))
	for _, k := range entity.KPIs() {
		options = append(options, string(k))
	}
	return &dto.MapDTO{
		Center:     mapCenter,
		Zoom:       mapZoom,
		KPI:        string(kpi),
		KPIOptions: options,
		States:     states,
		Layer:      layer,
	}, nil
}

// States opciones del filtro "Filter by State".
func (uc *MapUseCase) States(ctx context.Context) ([]string, error) {
	states, err := uc.repo.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("map: listar estados: %w", err)
	}
	return states, nil
}

// ExportKML exporta la capa coloreada por el KPI. Devuelve el documento y su digest.
func (uc *MapUseCase) ExportKML(ctx context.Context, kpiName string) ([]byte, string, error) {
	if uc.exporter == nil {
		return nil, "", errors.New("map: exportador no configurado")
	}
	m, err := uc.GetMap(ctx, kpiName)
	if err != nil {
		return nil, "", err
	}
	doc, digest, err := uc.exporter.ExportLayer(ctx, "Bharat Chakra: "+m.KPI, m.Layer)
	if err != nil {
		return nil, "", fmt.Errorf("map: exportar KML: %w", err)
	}
	return doc, digest, nil
}

func buildLayer(items []*entity.Constituency, kpi entity.KPI) (dto.FeatureCollectionDTO, error) {
	features := make([]dto.FeatureDTO, 0, len(items))
	for _, c := range items {
		value, err := c.KPIValue(kpi)
		if err != nil {
			return dto.FeatureCollectionDTO{}, err
		}
		fill := fillLowColor
		if value.GreaterThan(kpiThreshold) {
			fill = fillHighColor
		}
		features = append(features, dto.FeatureDTO{
			Type: "Feature",
			Properties: dto.FeaturePropertiesDTO{
				Name:  c.State,
				PC:    c.PC,
				KPI:   value,
				Style: dto.StyleDTO{FillColor: fill, Color: strokeColor, Weight: strokeWeight},
			},
			Geometry: dto.GeometryDTO{
				Type:        "Polygon",
				Coordinates: [][][2]float64{closedRing(c.Boundary)},
			},
		})
	}
	return dto.FeatureCollectionDTO{Type: "FeatureCollection", Features: features}, nil
}

// closedRing GeoJSON exige que el anillo termine en su primer punto.
func closedRing(points []entity.Point) [][2]float64 {
	ring := make([][2]float64, 0, len(points)+1)
	for _, p := range points {
		ring = append(ring, [2]float64(p))
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}
