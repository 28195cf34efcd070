package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/model"
)

func TestParseKey(t *testing.T) {
	assert.Equal(t, KeyZones, ParseKey("zones"))
	assert.Equal(t, KeyExperienceChanges, ParseKey("experienceChanges"))
	assert.Equal(t, KeyUnknown, ParseKey("planets"))
	assert.Equal(t, KeyUnknown, ParseKey(""))
}

func TestKeySeriesKey(t *testing.T) {
	assert.Equal(t, model.KeySatisfaction, KeySatisfaction.SeriesKey())
	assert.Equal(t, model.SeriesKey(""), KeyUnknown.SeriesKey())
}

func TestBuild_Donut(t *testing.T) {
	ds := model.DefaultDataset()
	p := Build(ds, KeyZones)

	require.NotNil(t, p)
	assert.Equal(t, "zones", p.Key)
	assert.Equal(t, KindDonut, p.Kind)
	require.Len(t, p.Panels, 1)
	require.Len(t, p.Panels[0].Legend, 4)
	assert.Equal(t, Palette, p.Colors)

	sum := 0.0
	for _, e := range p.Panels[0].Legend {
		sum += e.Share
	}
	assert.InDelta(t, 100.0, sum, 1.0, "legend shares sum to 100 within rounding drift")
}

func TestBuild_Comparison(t *testing.T) {
	ds := model.DefaultDataset()
	p := Build(ds, KeyExperienceChanges)

	require.NotNil(t, p)
	assert.Equal(t, KindComparison, p.Kind)
	// One summary panel followed by a panel per category.
	require.Len(t, p.Panels, len(ds.ExperienceChanges)+1)
	assert.Equal(t, "Ensemble des changements", p.Panels[0].Title)
	assert.Equal(t, "Accueil", p.Panels[1].Title)

	summary := p.Panels[0].Legend
	require.Len(t, summary, 2)
	assert.Equal(t, "Avis positifs", summary[0].Name)
	assert.Equal(t, 204+176+121+189, summary[0].Count)

	for _, panel := range p.Panels {
		sum := 0.0
		for _, e := range panel.Legend {
			sum += e.Share
		}
		assert.InDelta(t, 100.0, sum, 1.0, panel.Title)
	}
}

func TestBuild_Awareness(t *testing.T) {
	ds := model.DefaultDataset()
	p := Build(ds, KeyNameChangeAwareness)

	require.NotNil(t, p)
	assert.Equal(t, KindAwareness, p.Kind)
	// 318 of 463 → 68,7%.
	assert.Equal(t, "68,7% des clients ont remarqué le changement d'enseigne", p.Annotation)
}

func TestBuild_Unknown(t *testing.T) {
	assert.Nil(t, Build(model.DefaultDataset(), KeyUnknown))
}

func TestBuild_EmptySeries(t *testing.T) {
	p := Build(&model.SurveyDataset{}, KeySatisfaction)
	require.NotNil(t, p)
	assert.Empty(t, p.Panels[0].Legend)
}
