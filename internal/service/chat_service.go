package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storepulse/internal/cache"
	"storepulse/internal/chart"
	"storepulse/internal/enrich"
	"storepulse/internal/model"
)

var (
	ErrEmptyMessage    = errors.New("message is empty")
	ErrRequestPending  = errors.New("a request is already pending for this session")
	ErrSessionNotFound = errors.New("session not found")
	ErrMessageNotFound = errors.New("message not found")
)

// GenerationApology is appended verbatim when the generator fails; partial
// or garbled model output never reaches the transcript.
const GenerationApology = "Désolé, une erreur est survenue lors de la génération de la réponse. Veuillez réessayer."

// ChatService orchestrates the conversational overlay: it forwards user
// prompts to the generator, runs replies through the enrichment pipeline
// and maintains the per-session transcript.
type ChatService struct {
	sessions  cache.SessionCache
	generator Generator
	datasets  *DatasetService

	// Single-flight per session: while a send is pending, further sends
	// for the same session are rejected, not queued.
	mu      sync.Mutex
	pending map[string]bool
}

// NewChatService creates a new chat service
func NewChatService(sessions cache.SessionCache, generator Generator, datasets *DatasetService) *ChatService {
	return &ChatService{
		sessions:  sessions,
		generator: generator,
		datasets:  datasets,
		pending:   make(map[string]bool),
	}
}

// CreateSession starts an empty conversation.
func (s *ChatService) CreateSession(ctx context.Context) (*model.ChatSession, error) {
	session := &model.ChatSession{
		ID:        uuid.New().String(),
		Messages:  []model.Message{},
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Send submits a user prompt. It appends the user message and exactly one
// assistant message: the enriched generator reply, or the fixed apology
// when generation fails. The in-flight request is never aborted and never
// retried.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (*model.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	if !s.acquire(sessionID) {
		return nil, ErrRequestPending
	}
	defer s.release(sessionID)

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	session.Messages = append(session.Messages, model.Message{Role: model.RoleUser, Text: text})

	ds := s.datasets.Current()
	raw, err := s.generator.Generate(ctx, text, ds)

	var reply string
	if err != nil {
		log.Printf("generator error for session %s: %v", sessionID, err)
		reply = GenerationApology
	} else {
		reply = enrich.Enrich(text, raw, ds)
	}

	assistant := model.Message{Role: model.RoleAssistant, Text: reply}
	session.Messages = append(session.Messages, assistant)

	if err := s.sessions.Set(ctx, session); err != nil {
		return nil, err
	}
	return &assistant, nil
}

// History returns the session transcript.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]model.Message, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session.Messages, nil
}

// PlainText returns a message's text with all chart markers stripped, for
// copy-to-clipboard.
func (s *ChatService) PlainText(ctx context.Context, sessionID string, index int) (string, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if session == nil {
		return "", ErrSessionNotFound
	}
	if index < 0 || index >= len(session.Messages) {
		return "", ErrMessageNotFound
	}
	return chart.Strip(session.Messages[index].Text), nil
}

func (s *ChatService) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending[sessionID] {
		return false
	}
	s.pending[sessionID] = true
	return true
}

func (s *ChatService) release(sessionID string) {
	s.mu.Lock()
	delete(s.pending, sessionID)
	s.mu.Unlock()
}
