package model

import "strings"

// QuestionMapping binds a survey question id to the dataset series backing
// its table and the chart identifier embedded in enriched answers.
type QuestionMapping struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	DatasetKey SeriesKey `json:"datasetKey"`
	ChartKey   SeriesKey `json:"chartKey"`
}

// Questions is the static registry of the eleven survey questions, in
// questionnaire order.
var Questions = []QuestionMapping{
	{ID: "Q0", Text: "Quelle est votre tranche d'âge ?", DatasetKey: KeyAgeGroups, ChartKey: KeyAgeGroups},
	{ID: "Q1", Text: "Dans quelle zone habitez-vous ?", DatasetKey: KeyZones, ChartKey: KeyZones},
	{ID: "Q2", Text: "Quelle est la raison principale de votre visite ?", DatasetKey: KeyVisitReason, ChartKey: KeyVisitReason},
	{ID: "Q3", Text: "À quelle fréquence venez-vous au magasin ?", DatasetKey: KeyFrequency, ChartKey: KeyFrequency},
	{ID: "Q4", Text: "Quel est votre rayon préféré ?", DatasetKey: KeyPreferredDepartment, ChartKey: KeyPreferredDepartment},
	{ID: "Q5", Text: "Quelles autres enseignes fréquentez-vous ?", DatasetKey: KeyCompetitors, ChartKey: KeyCompetitors},
	{ID: "Q6", Text: "Êtes-vous satisfait de votre expérience en magasin ?", DatasetKey: KeySatisfaction, ChartKey: KeySatisfaction},
	{ID: "Q7", Text: "Avez-vous remarqué le changement d'enseigne ?", DatasetKey: KeyNameChangeAwareness, ChartKey: KeyNameChangeAwareness},
	{ID: "Q8", Text: "Comment avez-vous découvert le magasin ?", DatasetKey: KeyDiscoveryChannel, ChartKey: KeyDiscoveryChannel},
	{ID: "Q9", Text: "Quels points souhaiteriez-vous voir améliorés ?", DatasetKey: KeyImprovementAreas, ChartKey: KeyImprovementAreas},
	{ID: "Q10", Text: "Quels changements avez-vous ressentis depuis le changement d'enseigne ?", DatasetKey: KeyExperienceChanges, ChartKey: KeyExperienceChanges},
}

// LookupQuestion finds a registry entry by id, case-insensitively.
// Returns nil when the id is unknown.
func LookupQuestion(id string) *QuestionMapping {
	id = strings.ToUpper(strings.TrimSpace(id))
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}
