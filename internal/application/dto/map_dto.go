package dto

import "github.com/shopspring/decimal"

// MapDTO sección Interactive GIS Map: capa GeoJSON coloreada por el KPI elegido.
type MapDTO struct {
	Center     [2]float64           `json:"center"` // [lat, lon]
	Zoom       int                  `json:"zoom"`
	KPI        string               `json:"kpi"`
	KPIOptions []string             `json:"kpi_options"`
	States     []string             `json:"states"` // opciones de "Filter by State"
	Layer      FeatureCollectionDTO `json:"layer"`
}

// FeatureCollectionDTO GeoJSON FeatureCollection.
type FeatureCollectionDTO struct {
	Type     string       `json:"type"`
	Features []FeatureDTO `json:"features"`
}

// FeatureDTO GeoJSON Feature de una circunscripción.
type FeatureDTO struct {
	Type       string               `json:"type"`
	Properties FeaturePropertiesDTO `json:"properties"`
	Geometry   GeometryDTO          `json:"geometry"`
}

// FeaturePropertiesDTO propiedades + estilo del polígono.
type FeaturePropertiesDTO struct {
	Name  string          `json:"name"`
	PC    string          `json:"pc"`
	KPI   decimal.Decimal `json:"kpi"`
	Style StyleDTO        `json:"style"`
}

// StyleDTO estilo de relleno (verde si kpi > 60, rojo en otro caso).
type StyleDTO struct {
	FillColor string `json:"fillColor"`
	Color     string `json:"color"`
	Weight    int    `json:"weight"`
}

// GeometryDTO GeoJSON Polygon; cada anillo es una lista de [lon, lat].
type GeometryDTO struct {
	Type        string         `json:"type"`
	Coordinates [][][2]float64 `json:"coordinates"`
}
