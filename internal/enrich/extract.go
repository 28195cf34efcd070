// Package enrich post-processes assistant replies so that every survey
// question the user referenced is backed by a data-accurate table and chart
// marker, whatever the language model actually wrote. All functions are
// pure and total: empty input yields empty results, never an error.
package enrich

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// questionRe matches both "question 8" and a bare "Q8", case-insensitively.
// Alternation order keeps the scan left-to-right over the whole text.
var questionRe = regexp.MustCompile(`(?i)question\s*(\d+)|\bq(\d+)`)

// summaryWords is the fixed vocabulary of report/summary synonyms.
var summaryWords = []string{
	"rapport", "résumé", "resume", "synthèse", "synthese", "bilan", "summary",
}

// ExtractQuestionIDs scans text for question references and returns every
// distinct number in [0, 10] formatted "Qn", in first-seen order.
// Out-of-range numbers are discarded silently.
func ExtractQuestionIDs(text string) []string {
	if text == "" {
		return nil
	}
	var ids []string
	seen := make(map[string]bool)
	for _, m := range questionRe.FindAllStringSubmatch(text, -1) {
		digits := m[1]
		if digits == "" {
			digits = m[2]
		}
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 || n > 10 {
			continue
		}
		id := fmt.Sprintf("Q%d", n)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// IsSummaryPrompt reports whether the text asks for a full report, by
// case-insensitive substring match against the summary vocabulary.
func IsSummaryPrompt(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range summaryWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
