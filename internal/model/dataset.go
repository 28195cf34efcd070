package model

import "fmt"

// SimpleDataPoint is one category's response count within a question.
// Series order is insertion order and is meaningful: it drives legend
// order and the first-wins tie-break for top entries.
type SimpleDataPoint struct {
	Name  string `json:"name" bson:"name"`
	Value int    `json:"value" bson:"value"`
}

// ComparisonDataPoint is a positive/negative split for one category,
// used only by the experience-changes question (Q10).
type ComparisonDataPoint struct {
	Category      string `json:"category" bson:"category"`
	Positive      int    `json:"positive" bson:"positive"`
	Negative      int    `json:"negative" bson:"negative"`
	LabelPositive string `json:"labelPositive" bson:"labelPositive"`
	LabelNegative string `json:"labelNegative" bson:"labelNegative"`
}

// SeriesKey identifies one of the eleven fixed dataset series.
type SeriesKey string

const (
	KeyAgeGroups           SeriesKey = "ageGroups"
	KeyZones               SeriesKey = "zones"
	KeyVisitReason         SeriesKey = "visitReason"
	KeyFrequency           SeriesKey = "frequency"
	KeyPreferredDepartment SeriesKey = "preferredDepartment"
	KeyCompetitors         SeriesKey = "competitors"
	KeySatisfaction        SeriesKey = "satisfaction"
	KeyNameChangeAwareness SeriesKey = "nameChangeAwareness"
	KeyDiscoveryChannel    SeriesKey = "discoveryChannel"
	KeyImprovementAreas    SeriesKey = "improvementAreas"
	KeyExperienceChanges   SeriesKey = "experienceChanges"
)

// SurveyDataset holds the full survey results: ten simple series plus the
// experience-changes comparison series. The field set is fixed; series may
// be empty but are never nil after Normalize.
type SurveyDataset struct {
	AgeGroups           []SimpleDataPoint     `json:"ageGroups" bson:"ageGroups"`
	Zones               []SimpleDataPoint     `json:"zones" bson:"zones"`
	VisitReason         []SimpleDataPoint     `json:"visitReason" bson:"visitReason"`
	Frequency           []SimpleDataPoint     `json:"frequency" bson:"frequency"`
	PreferredDepartment []SimpleDataPoint     `json:"preferredDepartment" bson:"preferredDepartment"`
	Competitors         []SimpleDataPoint     `json:"competitors" bson:"competitors"`
	Satisfaction        []SimpleDataPoint     `json:"satisfaction" bson:"satisfaction"`
	NameChangeAwareness []SimpleDataPoint     `json:"nameChangeAwareness" bson:"nameChangeAwareness"`
	DiscoveryChannel    []SimpleDataPoint     `json:"discoveryChannel" bson:"discoveryChannel"`
	ImprovementAreas    []SimpleDataPoint     `json:"improvementAreas" bson:"improvementAreas"`
	ExperienceChanges   []ComparisonDataPoint `json:"experienceChanges" bson:"experienceChanges"`
}

// SimpleKeys lists the ten simple series keys in dashboard order.
var SimpleKeys = []SeriesKey{
	KeyAgeGroups,
	KeyZones,
	KeyVisitReason,
	KeyFrequency,
	KeyPreferredDepartment,
	KeyCompetitors,
	KeySatisfaction,
	KeyNameChangeAwareness,
	KeyDiscoveryChannel,
	KeyImprovementAreas,
}

// SimpleSeries returns the simple series for a key. The second return is
// false for experienceChanges and unknown keys.
func (d *SurveyDataset) SimpleSeries(key SeriesKey) ([]SimpleDataPoint, bool) {
	switch key {
	case KeyAgeGroups:
		return d.AgeGroups, true
	case KeyZones:
		return d.Zones, true
	case KeyVisitReason:
		return d.VisitReason, true
	case KeyFrequency:
		return d.Frequency, true
	case KeyPreferredDepartment:
		return d.PreferredDepartment, true
	case KeyCompetitors:
		return d.Competitors, true
	case KeySatisfaction:
		return d.Satisfaction, true
	case KeyNameChangeAwareness:
		return d.NameChangeAwareness, true
	case KeyDiscoveryChannel:
		return d.DiscoveryChannel, true
	case KeyImprovementAreas:
		return d.ImprovementAreas, true
	}
	return nil, false
}

// Normalize replaces nil series with empty slices so downstream code can
// range over every field without nil checks.
func (d *SurveyDataset) Normalize() {
	if d.AgeGroups == nil {
		d.AgeGroups = []SimpleDataPoint{}
	}
	if d.Zones == nil {
		d.Zones = []SimpleDataPoint{}
	}
	if d.VisitReason == nil {
		d.VisitReason = []SimpleDataPoint{}
	}
	if d.Frequency == nil {
		d.Frequency = []SimpleDataPoint{}
	}
	if d.PreferredDepartment == nil {
		d.PreferredDepartment = []SimpleDataPoint{}
	}
	if d.Competitors == nil {
		d.Competitors = []SimpleDataPoint{}
	}
	if d.Satisfaction == nil {
		d.Satisfaction = []SimpleDataPoint{}
	}
	if d.NameChangeAwareness == nil {
		d.NameChangeAwareness = []SimpleDataPoint{}
	}
	if d.DiscoveryChannel == nil {
		d.DiscoveryChannel = []SimpleDataPoint{}
	}
	if d.ImprovementAreas == nil {
		d.ImprovementAreas = []SimpleDataPoint{}
	}
	if d.ExperienceChanges == nil {
		d.ExperienceChanges = []ComparisonDataPoint{}
	}
}

// Validate rejects negative counts. Empty series are allowed.
func (d *SurveyDataset) Validate() error {
	for _, key := range SimpleKeys {
		series, _ := d.SimpleSeries(key)
		for _, p := range series {
			if p.Value < 0 {
				return fmt.Errorf("series %s: negative value for %q", key, p.Name)
			}
		}
	}
	for _, c := range d.ExperienceChanges {
		if c.Positive < 0 || c.Negative < 0 {
			return fmt.Errorf("series %s: negative value for %q", KeyExperienceChanges, c.Category)
		}
	}
	return nil
}

// DefaultDataset returns the built-in survey results used to seed the
// dashboard and to serve /v1/dataset before any edit is published.
func DefaultDataset() *SurveyDataset {
	return &SurveyDataset{
		AgeGroups: []SimpleDataPoint{
			{Name: "18-25 ans", Value: 54},
			{Name: "26-40 ans", Value: 142},
			{Name: "41-60 ans", Value: 178},
			{Name: "Plus de 60 ans", Value: 89},
		},
		Zones: []SimpleDataPoint{
			{Name: "Centre-ville", Value: 176},
			{Name: "Périphérie nord", Value: 98},
			{Name: "Périphérie sud", Value: 112},
			{Name: "Communes voisines", Value: 77},
		},
		VisitReason: []SimpleDataPoint{
			{Name: "Courses habituelles", Value: 231},
			{Name: "Promotions", Value: 94},
			{Name: "Proximité", Value: 86},
			{Name: "Curiosité", Value: 52},
		},
		Frequency: []SimpleDataPoint{
			{Name: "Plusieurs fois par semaine", Value: 148},
			{Name: "Une fois par semaine", Value: 187},
			{Name: "Une fois par mois", Value: 84},
			{Name: "Rarement", Value: 44},
		},
		PreferredDepartment: []SimpleDataPoint{
			{Name: "Fruits et légumes", Value: 139},
			{Name: "Boucherie", Value: 97},
			{Name: "Boulangerie", Value: 118},
			{Name: "Épicerie", Value: 66},
			{Name: "Surgelés", Value: 43},
		},
		Competitors: []SimpleDataPoint{
			{Name: "Carrefour", Value: 134},
			{Name: "Leclerc", Value: 151},
			{Name: "Lidl", Value: 102},
			{Name: "Intermarché", Value: 76},
		},
		Satisfaction: []SimpleDataPoint{
			{Name: "Pas du tout", Value: 50},
			{Name: "Moyennement", Value: 57},
			{Name: "Satisfait", Value: 233},
			{Name: "Très satisfait", Value: 123},
		},
		NameChangeAwareness: []SimpleDataPoint{
			{Name: "Oui", Value: 318},
			{Name: "Non", Value: 145},
		},
		DiscoveryChannel: []SimpleDataPoint{
			{Name: "Bouche-à-oreille", Value: 121},
			{Name: "Réseaux sociaux", Value: 96},
			{Name: "Prospectus", Value: 143},
			{Name: "Passage devant le magasin", Value: 103},
		},
		ImprovementAreas: []SimpleDataPoint{
			{Name: "Temps d'attente en caisse", Value: 127},
			{Name: "Largeur de gamme", Value: 92},
			{Name: "Prix", Value: 158},
			{Name: "Propreté", Value: 46},
		},
		ExperienceChanges: []ComparisonDataPoint{
			{Category: "Accueil", Positive: 204, Negative: 71, LabelPositive: "Amélioré", LabelNegative: "Dégradé"},
			{Category: "Choix des produits", Positive: 176, Negative: 99, LabelPositive: "Amélioré", LabelNegative: "Dégradé"},
			{Category: "Prix", Positive: 121, Negative: 154, LabelPositive: "Amélioré", LabelNegative: "Dégradé"},
			{Category: "Agencement du magasin", Positive: 189, Negative: 86, LabelPositive: "Amélioré", LabelNegative: "Dégradé"},
		},
	}
}
