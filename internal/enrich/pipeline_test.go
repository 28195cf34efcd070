package enrich

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storepulse/internal/model"
)

func TestEnrich_InjectsTableAndChart(t *testing.T) {
	ds := model.DefaultDataset()
	out := Enrich("Parle-moi de la Q5", "Voici une analyse des enseignes concurrentes.", ds)

	assert.Contains(t, out, BlockTitlePrefix+"Q5")
	assert.Contains(t, out, "| Leclerc | 151 |")
	assert.Contains(t, out, "[[CHART:competitors]]")
	assert.True(t, strings.HasPrefix(out, "Voici une analyse"), "raw text stays first")
}

func TestEnrich_Idempotent(t *testing.T) {
	ds := model.DefaultDataset()
	prompts := []string{
		"Parle-moi de la Q5",
		"Fais-moi un rapport sur la question 6",
		"Résumé des questions Q1 et Q4",
	}
	for _, prompt := range prompts {
		t.Run(prompt, func(t *testing.T) {
			once := Enrich(prompt, "Analyse détaillée des résultats.", ds)
			twice := Enrich(prompt, once, ds)
			assert.Equal(t, once, twice)
		})
	}
}

func TestEnrich_ExistingTitleSkipsTable(t *testing.T) {
	ds := model.DefaultDataset()
	raw := "#### Tableau professionnel – Q5\n\n| Réponse | Nombre | Part |\n| --- | --- | --- |\n| Carrefour | 134 | 28,9% |"
	out := Enrich("Et la Q5 ?", raw, ds)

	assert.Equal(t, 1, strings.Count(out, BlockTitlePrefix+"Q5"))
	assert.Contains(t, out, "[[CHART:competitors]]")
}

func TestEnrich_NearbyTableSkipsInjection(t *testing.T) {
	ds := model.DefaultDataset()
	raw := "Concernant la question 5, voici la répartition :\n\n| Enseigne | Clients |\n| --- | --- |\n| Carrefour | 134 |"
	out := Enrich("Analyse de la Q5", raw, ds)

	assert.NotContains(t, out, BlockTitlePrefix+"Q5")
	assert.Contains(t, out, "[[CHART:competitors]]")
}

func TestEnrich_ExistingMarkerNotDuplicated(t *testing.T) {
	ds := model.DefaultDataset()
	raw := "Déjà enrichi. [[CHART:competitors]]"
	out := Enrich("Q5 ?", raw, ds)

	assert.Equal(t, 1, strings.Count(out, "[[CHART:competitors]]"))
	assert.Contains(t, out, BlockTitlePrefix+"Q5")
}

func TestEnrich_PlaceholderForEmptySeries(t *testing.T) {
	ds := &model.SurveyDataset{}
	out := Enrich("Q5", "", ds)

	assert.Contains(t, out, Placeholder)
	assert.Contains(t, out, "[[CHART:competitors]]")
}

func TestEnrich_EmptyRawText(t *testing.T) {
	ds := model.DefaultDataset()
	out := Enrich("Q3", "", ds)

	assert.True(t, strings.HasPrefix(out, BlockTitlePrefix+"Q3"))
}

func TestEnrich_UnknownQuestionIgnored(t *testing.T) {
	ds := model.DefaultDataset()
	out := Enrich("Que dit la météo ?", "Réponse libre.", ds)
	assert.Equal(t, "Réponse libre.", out)
}

func TestEnrich_SummaryReport(t *testing.T) {
	ds := model.DefaultDataset()
	out := Enrich("Fais-moi un résumé complet", "Voici le bilan de l'enquête.", ds)

	require.Equal(t, 1, strings.Count(out, ReportHeading))
	assert.Contains(t, out, "| Clients satisfaits | 356 | 76,9% | Q6 – Satisfaction |")
	assert.Contains(t, out, "356 clients sur 463")
	assert.True(t, strings.HasSuffix(out, "[[CHART:satisfaction]]"))

	twice := Enrich("Fais-moi un résumé complet", out, ds)
	assert.Equal(t, out, twice)
}

func TestEnrich_SummaryWithEmptyDataset(t *testing.T) {
	out := Enrich("résumé", "", &model.SurveyDataset{})

	assert.Contains(t, out, ReportHeading)
	assert.Contains(t, out, Placeholder)
	assert.True(t, strings.HasSuffix(out, "[[CHART:satisfaction]]"))
}

func TestEnrich_MultipleQuestionsInOrder(t *testing.T) {
	ds := model.DefaultDataset()
	out := Enrich("Compare la Q8 et la Q3", "Comparaison demandée.", ds)

	first := strings.Index(out, BlockTitlePrefix+"Q8")
	second := strings.Index(out, BlockTitlePrefix+"Q3")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second, "blocks follow prompt mention order")
	assert.Contains(t, out, "[[CHART:discoveryChannel]]")
	assert.Contains(t, out, "[[CHART:frequency]]")
}
