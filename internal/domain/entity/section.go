package entity

// SectionID identificador de una sección del dashboard.
type SectionID string

// Secciones del dashboard.
const (
	SectionGISMap               SectionID = "gis-map"
	SectionWeatherOverview      SectionID = "weather-overview"
	SectionAnalyticsTiles       SectionID = "analytics-tiles"
	SectionConstituencyDeepDive SectionID = "constituency-deep-dive"
	SectionDeepSearch           SectionID = "deep-search"
	SectionCampaignManagement   SectionID = "campaign-management"
	SectionPredictiveAnalytics  SectionID = "predictive-analytics"
	SectionReports              SectionID = "reports"
)

var sectionTitles = map[SectionID]string{
	SectionGISMap:               "Interactive GIS Map",
	SectionWeatherOverview:      "Political Weather Overview",
	SectionAnalyticsTiles:       "Analytics Tiles",
	SectionConstituencyDeepDive: "Constituency Deep-Dive",
	SectionDeepSearch:           "Deep Search",
	SectionCampaignManagement:   "Campaign Management",
	SectionPredictiveAnalytics:  "Predictive Analytics",
	SectionReports:              "Reports",
}

// Title encabezado de la sección.
func (id SectionID) Title() string {
	return sectionTitles[id]
}

// SectionRequirement rango mínimo que desbloquea una sección.
// MinLevel 0 = sección incondicional.
type SectionRequirement struct {
	Section  SectionID
	MinLevel int
}
