package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/model"
)

func TestBuildSimpleTable(t *testing.T) {
	t.Run("shares with French decimal comma", func(t *testing.T) {
		table := BuildSimpleTable([]model.SimpleDataPoint{
			{Name: "A", Value: 30},
			{Name: "B", Value: 70},
		})
		assert.Contains(t, table, "| A | 30 | 30,0% |")
		assert.Contains(t, table, "| B | 70 | 70,0% |")
	})

	t.Run("row order follows series order", func(t *testing.T) {
		table := BuildSimpleTable([]model.SimpleDataPoint{
			{Name: "Dernier", Value: 90},
			{Name: "Premier", Value: 10},
		})
		assert.Less(t, strings.Index(table, "Dernier"), strings.Index(table, "Premier"))
	})

	t.Run("all-zero series divides by the floor of 1", func(t *testing.T) {
		table := BuildSimpleTable([]model.SimpleDataPoint{{Name: "A", Value: 0}})
		assert.Contains(t, table, "| A | 0 | 0,0% |")
	})

	t.Run("empty series yields empty string", func(t *testing.T) {
		assert.Equal(t, "", BuildSimpleTable(nil))
		assert.Equal(t, "", BuildSimpleTable([]model.SimpleDataPoint{}))
	})
}

func TestBuildComparisonTable(t *testing.T) {
	table := BuildComparisonTable([]model.ComparisonDataPoint{
		{Category: "Accueil", Positive: 40, Negative: 20, LabelPositive: "Amélioré", LabelNegative: "Dégradé"},
		{Category: "Prix", Positive: 0, Negative: 0, LabelPositive: "Amélioré", LabelNegative: "Dégradé"},
	})
	assert.Contains(t, table, "| Accueil | Amélioré : 40 (66,7%) | Dégradé : 20 (33,3%) |")
	// Zero row uses the per-row floor of 1.
	assert.Contains(t, table, "| Prix | Amélioré : 0 (0,0%) | Dégradé : 0 (0,0%) |")

	assert.Equal(t, "", BuildComparisonTable(nil))
}

func TestBuildTableForKey(t *testing.T) {
	ds := model.DefaultDataset()

	simple := BuildTableForKey(ds, model.KeyCompetitors)
	assert.Contains(t, simple, "Leclerc")

	comparison := BuildTableForKey(ds, model.KeyExperienceChanges)
	assert.Contains(t, comparison, "| Catégorie |")
	assert.Contains(t, comparison, "Accueil")
}

func TestTopEntry(t *testing.T) {
	t.Run("first of equal maxima wins", func(t *testing.T) {
		top := TopEntry([]model.SimpleDataPoint{
			{Name: "A", Value: 10},
			{Name: "B", Value: 10},
		})
		require.NotNil(t, top)
		assert.Equal(t, "A", top.Name)
	})

	t.Run("nil for empty series", func(t *testing.T) {
		assert.Nil(t, TopEntry(nil))
	})
}

func TestComputeSummaryMetrics_SatisfiedCount(t *testing.T) {
	ds := &model.SurveyDataset{
		Satisfaction: []model.SimpleDataPoint{
			{Name: "Pas du tout satisfait", Value: 50},
			{Name: "Moyennement", Value: 57},
			{Name: "Satisfait", Value: 233},
			{Name: "Très satisfait", Value: 123},
		},
	}
	m := ComputeSummaryMetrics(ds)
	// Negated labels ("Pas du tout satisfait") are excluded from the match.
	assert.Equal(t, 356, m.SatisfiedCount)
	assert.Equal(t, 463, m.SatisfactionTotal)
}

func TestBuildSummaryTable(t *testing.T) {
	t.Run("five indicators on the full dataset", func(t *testing.T) {
		table := BuildSummaryTable(model.DefaultDataset())
		assert.Contains(t, table, "| Zone dominante | Centre-ville |")
		assert.Contains(t, table, "| Motif de visite principal | Courses habituelles |")
		assert.Contains(t, table, "| Fréquence dominante |")
		assert.Contains(t, table, "| Rayon préféré | Fruits et légumes |")
		assert.Contains(t, table, "| Clients satisfaits | 356 | 76,9% | Q6 – Satisfaction |")
	})

	t.Run("rows omitted individually", func(t *testing.T) {
		ds := model.DefaultDataset()
		ds.Zones = nil
		table := BuildSummaryTable(ds)
		assert.NotContains(t, table, "Zone dominante")
		assert.Contains(t, table, "Clients satisfaits")
	})

	t.Run("empty when every indicator is missing", func(t *testing.T) {
		assert.Equal(t, "", BuildSummaryTable(&model.SurveyDataset{}))
	})
}

func TestBuildSummaryNarrative(t *testing.T) {
	narrative := BuildSummaryNarrative(model.DefaultDataset())
	assert.Contains(t, narrative, "Centre-ville")
	assert.Contains(t, narrative, "356 clients sur 463")
	assert.NotContains(t, narrative, "  ", "sentences are joined with single spaces")

	ds := model.DefaultDataset()
	ds.Zones = nil
	assert.NotContains(t, BuildSummaryNarrative(ds), "zone «")

	assert.Equal(t, "", BuildSummaryNarrative(&model.SurveyDataset{}))
}
