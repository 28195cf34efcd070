package enrich

import (
	"regexp"
	"strings"

	"storepulse/internal/chart"
	"storepulse/internal/model"
)

const (
	// BlockTitlePrefix heads every injected question table. Its verbatim
	// presence is what makes the pipeline idempotent.
	BlockTitlePrefix = "#### Tableau professionnel – "

	// ReportHeading heads the consolidated summary block, injected at most
	// once per conversation turn.
	ReportHeading = "### Rapport synthétique officiel"
)

// tableShapeRe matches a Markdown-table-shaped block: a header row followed
// by a separator row of dashes/colons.
var tableShapeRe = regexp.MustCompile(`(?m)^\|[^\n]*\|[ \t]*\n\|[ \t:\-|]+\|[ \t]*$`)

// Enrich augments a raw assistant reply so that every question referenced
// in the user prompt is backed by a table and a chart marker, and summary
// prompts get the consolidated report block. The function is total: it
// never fails, and missing data degrades to placeholders. Running it twice
// with the same prompt on its own output is a no-op.
func Enrich(userPrompt, rawText string, ds *model.SurveyDataset) string {
	enriched := rawText

	for _, id := range ExtractQuestionIDs(userPrompt) {
		q := model.LookupQuestion(id)
		if q == nil {
			continue
		}

		blockTitle := BlockTitlePrefix + q.ID
		chartTag := chart.Marker(string(q.ChartKey))

		var parts []string
		if !hasTableFor(enriched, q.ID, blockTitle) {
			table := BuildTableForKey(ds, q.DatasetKey)
			if table == "" {
				table = Placeholder
			}
			parts = append(parts, blockTitle+"\n\n"+table)
		}
		if !strings.Contains(enriched, chartTag) {
			parts = append(parts, chartTag)
		}
		if len(parts) > 0 {
			enriched = appendBlock(enriched, strings.Join(parts, "\n\n"))
		}
	}

	if IsSummaryPrompt(userPrompt) && !strings.Contains(enriched, ReportHeading) {
		parts := []string{ReportHeading}
		table := BuildSummaryTable(ds)
		if table == "" {
			table = Placeholder
		}
		parts = append(parts, table)
		if narrative := BuildSummaryNarrative(ds); narrative != "" {
			parts = append(parts, narrative)
		}
		parts = append(parts, chart.Marker(string(model.KeySatisfaction)))
		enriched = appendBlock(enriched, strings.Join(parts, "\n\n"))
	}

	return enriched
}

// hasTableFor reports whether the text already carries a table for the
// question: either the injected block title verbatim, or any table-shaped
// block near the first mention of the question. The 200-before/800-after
// window is a documented heuristic, not a precise Markdown parse; it is
// isolated here so it can be swapped for a real table scan later.
func hasTableFor(text, id, blockTitle string) bool {
	if strings.Contains(text, blockTitle) {
		return true
	}

	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(id))
	if idx < 0 {
		if digits, ok := strings.CutPrefix(strings.ToUpper(id), "Q"); ok {
			idx = strings.Index(lower, "question "+digits)
		}
	}
	if idx < 0 {
		return false
	}

	start := idx - 200
	if start < 0 {
		start = 0
	}
	end := idx + 800
	if end > len(text) {
		end = len(text)
	}
	return tableShapeRe.MatchString(text[start:end])
}

func appendBlock(text, block string) string {
	if strings.TrimSpace(text) == "" {
		return block
	}
	return text + "\n\n" + block
}
