package chart

import (
	"fmt"
	"math"
	"strings"

	"storepulse/internal/model"
)

// Palette is the color set handed to renderers alongside series data.
var Palette = []string{
	"#4e79a7", "#f28e2b", "#e15759", "#76b7b2", "#59a14f",
	"#edc948", "#b07aa1", "#ff9da7", "#9c755f", "#bab0ac",
}

// Kind selects the visual layout a payload expects.
type Kind string

const (
	// KindDonut is the default single-series pie/donut with a legend.
	KindDonut Kind = "donut"
	// KindComparison is the experience-changes layout: a summary pie plus a
	// per-category positive/negative breakdown.
	KindComparison Kind = "comparison"
	// KindAwareness is the single annotated pie used for the name-change
	// awareness question.
	KindAwareness Kind = "awareness"
)

// LegendEntry is one legend row: name, raw count, and the formatted share.
type LegendEntry struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	Share float64 `json:"share"`
	Label string  `json:"label"`
}

// Panel is one visual within a payload.
type Panel struct {
	Title  string        `json:"title,omitempty"`
	Legend []LegendEntry `json:"legend"`
}

// Payload is the renderer contract: series data, proportional shares and a
// color set. Legend shares per panel sum to 100 with at most ±1 drift from
// rounding.
type Payload struct {
	Key        string   `json:"key"`
	Kind       Kind     `json:"kind"`
	Panels     []Panel  `json:"panels"`
	Colors     []string `json:"colors"`
	Annotation string   `json:"annotation,omitempty"`
}

// Build produces the chart payload for a key from the current dataset.
// Unknown keys yield nil: the dashboard renders nothing for them.
func Build(ds *model.SurveyDataset, key Key) *Payload {
	switch key {
	case KeyUnknown:
		return nil
	case KeyExperienceChanges:
		return buildComparison(ds)
	case KeyNameChangeAwareness:
		return buildAwareness(ds)
	default:
		series, ok := ds.SimpleSeries(key.SeriesKey())
		if !ok {
			return nil
		}
		return &Payload{
			Key:    key.String(),
			Kind:   KindDonut,
			Panels: []Panel{{Legend: legendFor(series)}},
			Colors: Palette,
		}
	}
}

func buildComparison(ds *model.SurveyDataset) *Payload {
	var totalPos, totalNeg int
	panels := make([]Panel, 0, len(ds.ExperienceChanges)+1)

	// Per-category breakdown first; the summary panel is prepended below.
	for _, c := range ds.ExperienceChanges {
		rowTotal := c.Positive + c.Negative
		if rowTotal == 0 {
			rowTotal = 1
		}
		totalPos += c.Positive
		totalNeg += c.Negative
		panels = append(panels, Panel{
			Title: c.Category,
			Legend: []LegendEntry{
				legendEntry(c.LabelPositive, c.Positive, rowTotal),
				legendEntry(c.LabelNegative, c.Negative, rowTotal),
			},
		})
	}

	grand := totalPos + totalNeg
	if grand == 0 {
		grand = 1
	}
	summary := Panel{
		Title: "Ensemble des changements",
		Legend: []LegendEntry{
			legendEntry("Avis positifs", totalPos, grand),
			legendEntry("Avis négatifs", totalNeg, grand),
		},
	}

	return &Payload{
		Key:    KeyExperienceChanges.String(),
		Kind:   KindComparison,
		Panels: append([]Panel{summary}, panels...),
		Colors: Palette,
	}
}

func buildAwareness(ds *model.SurveyDataset) *Payload {
	legend := legendFor(ds.NameChangeAwareness)
	annotation := ""
	for _, e := range legend {
		if strings.EqualFold(e.Name, "oui") {
			annotation = fmt.Sprintf("%s des clients ont remarqué le changement d'enseigne", e.Label)
			break
		}
	}
	return &Payload{
		Key:        KeyNameChangeAwareness.String(),
		Kind:       KindAwareness,
		Panels:     []Panel{{Legend: legend}},
		Colors:     Palette,
		Annotation: annotation,
	}
}

func legendFor(series []model.SimpleDataPoint) []LegendEntry {
	total := 0
	for _, p := range series {
		total += p.Value
	}
	if total == 0 {
		total = 1
	}
	legend := make([]LegendEntry, 0, len(series))
	for _, p := range series {
		legend = append(legend, legendEntry(p.Name, p.Value, total))
	}
	return legend
}

func legendEntry(name string, value, total int) LegendEntry {
	share := math.Round(float64(value)/float64(total)*1000) / 10
	label := strings.ReplaceAll(fmt.Sprintf("%.1f%%", share), ".", ",")
	return LegendEntry{Name: name, Count: value, Share: share, Label: label}
}
