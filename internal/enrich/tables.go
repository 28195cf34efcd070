package enrich

import (
	"fmt"
	"strings"

	"storepulse/internal/model"
)

// Placeholder replaces a table when the underlying series has no data.
const Placeholder = "_Aucune donnée disponible._"

// SeriesTotal sums a series' values. The floor of 1 avoids division by
// zero when computing shares; displayed totals use the raw sum.
func SeriesTotal(series []model.SimpleDataPoint) int {
	total := 0
	for _, p := range series {
		total += p.Value
	}
	return total
}

func shareDenom(total int) int {
	if total == 0 {
		return 1
	}
	return total
}

// formatPercent renders a share with one decimal and a French decimal
// comma, e.g. "30,0%".
func formatPercent(value, total int) string {
	pct := float64(value) / float64(shareDenom(total)) * 100
	return strings.ReplaceAll(fmt.Sprintf("%.1f%%", pct), ".", ",")
}

// TopEntry returns the entry with the maximal value; the first of equal
// maxima wins. Nil for an empty series.
func TopEntry(series []model.SimpleDataPoint) *model.SimpleDataPoint {
	if len(series) == 0 {
		return nil
	}
	top := series[0]
	for _, p := range series[1:] {
		if p.Value > top.Value {
			top = p
		}
	}
	return &top
}

// BuildSimpleTable renders a series as a three-column Markdown table:
// label, count, share of the series total. Row order is series order.
// Empty series yield an empty string; callers substitute the placeholder.
func BuildSimpleTable(series []model.SimpleDataPoint) string {
	if len(series) == 0 {
		return ""
	}
	total := SeriesTotal(series)
	var b strings.Builder
	b.WriteString("| Réponse | Nombre | Part |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, p := range series {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", p.Name, p.Value, formatPercent(p.Value, total))
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildComparisonTable renders the positive/negative split per category.
// Each row's shares use that row's own total, floored to 1.
func BuildComparisonTable(series []model.ComparisonDataPoint) string {
	if len(series) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("| Catégorie | Avis positif | Avis négatif |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, c := range series {
		rowTotal := c.Positive + c.Negative
		fmt.Fprintf(&b, "| %s | %s : %d (%s) | %s : %d (%s) |\n",
			c.Category,
			c.LabelPositive, c.Positive, formatPercent(c.Positive, rowTotal),
			c.LabelNegative, c.Negative, formatPercent(c.Negative, rowTotal))
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildTableForKey builds the table for a dataset key, dispatching to the
// comparison builder for experienceChanges.
func BuildTableForKey(ds *model.SurveyDataset, key model.SeriesKey) string {
	if key == model.KeyExperienceChanges {
		return BuildComparisonTable(ds.ExperienceChanges)
	}
	series, ok := ds.SimpleSeries(key)
	if !ok {
		return ""
	}
	return BuildSimpleTable(series)
}

// SummaryMetrics bundles the derived indicators behind the consolidated
// report: dominant entries with their series totals, plus the satisfied
// customer count.
type SummaryMetrics struct {
	TopZone         *model.SimpleDataPoint
	ZoneTotal       int
	TopVisitReason  *model.SimpleDataPoint
	VisitTotal      int
	TopFrequency    *model.SimpleDataPoint
	FrequencyTotal  int
	TopDepartment   *model.SimpleDataPoint
	DepartmentTotal int

	SatisfactionTotal int
	SatisfiedCount    int
}

// isSatisfiedLabel reports whether a satisfaction label counts toward the
// satisfied-customer total. Labels containing "pas" are negations
// ("Pas du tout satisfait") and are excluded from the match.
func isSatisfiedLabel(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "satisfait") && !strings.Contains(lower, "pas")
}

// ComputeSummaryMetrics derives the report indicators from the dataset.
func ComputeSummaryMetrics(ds *model.SurveyDataset) SummaryMetrics {
	m := SummaryMetrics{
		TopZone:           TopEntry(ds.Zones),
		ZoneTotal:         SeriesTotal(ds.Zones),
		TopVisitReason:    TopEntry(ds.VisitReason),
		VisitTotal:        SeriesTotal(ds.VisitReason),
		TopFrequency:      TopEntry(ds.Frequency),
		FrequencyTotal:    SeriesTotal(ds.Frequency),
		TopDepartment:     TopEntry(ds.PreferredDepartment),
		DepartmentTotal:   SeriesTotal(ds.PreferredDepartment),
		SatisfactionTotal: SeriesTotal(ds.Satisfaction),
	}
	for _, p := range ds.Satisfaction {
		if isSatisfiedLabel(p.Name) {
			m.SatisfiedCount += p.Value
		}
	}
	return m
}

// BuildSummaryTable renders the five-indicator report table. Rows whose
// underlying top entry is missing are omitted individually; the result is
// empty when no row qualifies.
func BuildSummaryTable(ds *model.SurveyDataset) string {
	m := ComputeSummaryMetrics(ds)

	type row struct {
		indicator, value, share, source string
	}
	var rows []row
	if m.TopZone != nil {
		rows = append(rows, row{"Zone dominante", m.TopZone.Name,
			formatPercent(m.TopZone.Value, m.ZoneTotal), "Q1 – Zones"})
	}
	if m.TopVisitReason != nil {
		rows = append(rows, row{"Motif de visite principal", m.TopVisitReason.Name,
			formatPercent(m.TopVisitReason.Value, m.VisitTotal), "Q2 – Motifs de visite"})
	}
	if m.TopFrequency != nil {
		rows = append(rows, row{"Fréquence dominante", m.TopFrequency.Name,
			formatPercent(m.TopFrequency.Value, m.FrequencyTotal), "Q3 – Fréquence"})
	}
	if m.TopDepartment != nil {
		rows = append(rows, row{"Rayon préféré", m.TopDepartment.Name,
			formatPercent(m.TopDepartment.Value, m.DepartmentTotal), "Q4 – Rayons"})
	}
	if m.SatisfactionTotal > 0 {
		rows = append(rows, row{"Clients satisfaits", fmt.Sprintf("%d", m.SatisfiedCount),
			formatPercent(m.SatisfiedCount, m.SatisfactionTotal), "Q6 – Satisfaction"})
	}
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("| Indicateur | Valeur | Part | Source |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", r.indicator, r.value, r.share, r.source)
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildSummaryNarrative assembles up to four French sentences from the
// summary metrics, joined with single spaces. A sentence is skipped when
// its top entry is missing.
func BuildSummaryNarrative(ds *model.SurveyDataset) string {
	m := ComputeSummaryMetrics(ds)
	var sentences []string
	if m.TopZone != nil {
		sentences = append(sentences, fmt.Sprintf(
			"La zone « %s » concentre la plus grande part des clients interrogés (%s).",
			m.TopZone.Name, formatPercent(m.TopZone.Value, m.ZoneTotal)))
	}
	if m.TopVisitReason != nil {
		sentences = append(sentences, fmt.Sprintf(
			"Le motif de visite dominant est « %s » (%s des réponses).",
			m.TopVisitReason.Name, formatPercent(m.TopVisitReason.Value, m.VisitTotal)))
	}
	if m.TopDepartment != nil {
		sentences = append(sentences, fmt.Sprintf(
			"Le rayon le plus plébiscité reste « %s » (%s).",
			m.TopDepartment.Name, formatPercent(m.TopDepartment.Value, m.DepartmentTotal)))
	}
	if m.SatisfactionTotal > 0 {
		sentences = append(sentences, fmt.Sprintf(
			"%d clients sur %d se déclarent satisfaits, soit %s des répondants.",
			m.SatisfiedCount, m.SatisfactionTotal,
			formatPercent(m.SatisfiedCount, m.SatisfactionTotal)))
	}
	return strings.Join(sentences, " ")
}
