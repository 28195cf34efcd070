package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"storepulse/internal/config"
	"storepulse/internal/model"
)

// Generator is the external text-generation capability: prompt plus the
// current dataset in, assistant text out. The enrichment pipeline treats
// its output as opaque free-form text.
type Generator interface {
	Generate(ctx context.Context, prompt string, ds *model.SurveyDataset) (string, error)
}

// GeneratorService calls an OpenAI-compatible chat completion API. It is
// constructed once per process and passed by reference to the chat
// controller, so tests can substitute a fake through the Generator
// interface. Without an API key it answers with a deterministic offline
// reply instead of failing.
type GeneratorService struct {
	config *config.AIConfig
	client *openai.Client
}

// NewGeneratorService creates a new generator service
func NewGeneratorService(cfg *config.AIConfig) *GeneratorService {
	var client *openai.Client
	if cfg.IsEnabled() {
		oc := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			oc.BaseURL = cfg.BaseURL
		}
		oc.HTTPClient = &http.Client{
			Timeout: time.Duration(cfg.TimeoutMS) * time.Millisecond,
		}
		client = openai.NewClientWithConfig(oc)
	}
	return &GeneratorService{
		config: cfg,
		client: client,
	}
}

const systemPrompt = `Tu es l'assistant d'un tableau de bord d'analyse de sondage pour un magasin.
Réponds en français, de façon concise et factuelle, uniquement à partir des données fournies.
Les tableaux et graphiques sont ajoutés automatiquement : concentre-toi sur la narration.`

// Generate sends the prompt and a compact rendering of the dataset to the
// model and returns the assistant text.
func (s *GeneratorService) Generate(ctx context.Context, prompt string, ds *model.SurveyDataset) (string, error) {
	if !s.config.IsEnabled() {
		return s.offlineReply(ds), nil
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserPrompt(prompt, ds)},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty response from model")
	}
	return resp.Choices[0].Message.Content, nil
}

// buildUserPrompt embeds the dataset so the model narrates real numbers.
func buildUserPrompt(prompt string, ds *model.SurveyDataset) string {
	var b strings.Builder
	b.WriteString("Données du sondage :\n")
	for _, q := range model.Questions {
		fmt.Fprintf(&b, "%s (%s) : ", q.ID, q.Text)
		if q.DatasetKey == model.KeyExperienceChanges {
			for i, c := range ds.ExperienceChanges {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s %s=%d / %s=%d", c.Category, c.LabelPositive, c.Positive, c.LabelNegative, c.Negative)
			}
		} else if series, ok := ds.SimpleSeries(q.DatasetKey); ok {
			for i, p := range series {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s=%d", p.Name, p.Value)
			}
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nQuestion de l'utilisateur : %s", prompt)
	return b.String()
}

// offlineReply is the deterministic fallback used when no API key is
// configured; enrichment still injects the tables and charts afterwards.
func (s *GeneratorService) offlineReply(ds *model.SurveyDataset) string {
	total := 0
	for _, p := range ds.Satisfaction {
		total += p.Value
	}
	return fmt.Sprintf(
		"Mode hors ligne : %d réponses enregistrées sur la question de satisfaction. "+
			"Les tableaux ci-dessous présentent les chiffres demandés.", total)
}
