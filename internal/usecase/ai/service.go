package ai

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
	"github.com/johnquangdev/meetscribe/internal/domain/repositories"
	meetinguse "github.com/johnquangdev/meetscribe/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/meetscribe/pkg/ai"
)

// ModelClient is the narrow port to the hosted language model.
// The Groq client implements it; tests substitute canned responses.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Transcriber is the narrow port to the hosted speech-to-text provider
type Transcriber interface {
	Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error)
}

// Service defines the three AI gateway operations. Each is stateless: it
// formats a prompt (or audio payload), calls the provider, validates the
// response against a fixed schema and hands the result to the mutation API.
type Service interface {
	// Transcribe converts a base64 audio data URI into text and appends it
	// to the meeting's notes. Returns the transcript.
	Transcribe(ctx context.Context, meetingID, audioDataURI string) (string, error)

	// Summarize generates and persists a summary of the meeting's notes.
	// Fails with entities.ErrNothingToSummarize before calling the model
	// when the notes are empty.
	Summarize(ctx context.Context, meetingID string) (string, error)

	// SuggestActionItems proposes action items from the meeting's notes.
	// Suggestions whose assignee cannot be resolved to a known participant
	// by exact name match are silently dropped. Nothing is persisted.
	SuggestActionItems(ctx context.Context, meetingID string) ([]entities.ActionItemSuggestion, error)
}

type aiService struct {
	meetings        meetinguse.Service
	participantRepo repositories.ParticipantRepository
	model           ModelClient
	transcriber     Transcriber
	parser          *Parser
	logger          *zap.Logger
}

// NewService constructs the AI gateway service
func NewService(
	meetings meetinguse.Service,
	participantRepo repositories.ParticipantRepository,
	model ModelClient,
	transcriber Transcriber,
	logger *zap.Logger,
) Service {
	return &aiService{
		meetings:        meetings,
		participantRepo: participantRepo,
		model:           model,
		transcriber:     transcriber,
		parser:          NewParser(),
		logger:          logger,
	}
}

func (s *aiService) Transcribe(ctx context.Context, meetingID, audioDataURI string) (string, error) {
	// Meeting absence surfaces before any upstream call.
	if _, err := s.meetings.Get(ctx, meetingID); err != nil {
		return "", err
	}
	if s.transcriber == nil {
		return "", fmt.Errorf("transcriber not configured")
	}

	mimeType, audio, err := pkgai.ParseDataURI(audioDataURI)
	if err != nil {
		return "", fmt.Errorf("invalid audio payload: %w", err)
	}

	transcript, err := s.transcriber.Transcribe(ctx, mimeType, audio)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	if transcript == "" {
		return "", fmt.Errorf("empty transcription")
	}

	// No partial text is kept: the append happens only after a fully
	// validated transcription.
	if _, err := s.meetings.AppendTranscript(ctx, meetingID, transcript); err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("ai.transcription.completed",
			zap.String("meeting_id", meetingID),
			zap.Int("chars", len(transcript)),
		)
	}
	return transcript, nil
}

func (s *aiService) Summarize(ctx context.Context, meetingID string) (string, error) {
	m, err := s.meetings.Get(ctx, meetingID)
	if err != nil {
		return "", err
	}
	if !m.HasNotes() {
		return "", entities.ErrNothingToSummarize
	}
	if s.model == nil {
		return "", fmt.Errorf("model client not configured")
	}

	content, err := s.model.Complete(ctx, buildSummaryPrompt(m.Notes))
	if err != nil {
		return "", fmt.Errorf("model call: %w", err)
	}

	summary, err := s.parser.ParseSummaryResponse(content)
	if err != nil {
		return "", err
	}

	if _, err := s.meetings.SetSummary(ctx, meetingID, summary); err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.Info("ai.summary.completed", zap.String("meeting_id", meetingID))
	}
	return summary, nil
}

func (s *aiService) SuggestActionItems(ctx context.Context, meetingID string) ([]entities.ActionItemSuggestion, error) {
	m, err := s.meetings.Get(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if !m.HasNotes() {
		return nil, entities.ErrNothingToAnalyze
	}
	if s.model == nil {
		return nil, fmt.Errorf("model client not configured")
	}

	names := make([]string, len(m.Participants))
	for i, p := range m.Participants {
		names[i] = p.Name
	}

	content, err := s.model.Complete(ctx, buildSuggestionsPrompt(m.Notes, names))
	if err != nil {
		return nil, fmt.Errorf("model call: %w", err)
	}

	parsed, err := s.parser.ParseSuggestionsResponse(content)
	if err != nil {
		return nil, err
	}

	// Resolve suggested assignee names against the known participants.
	// Unresolvable assignees drop the suggestion, not the whole response.
	resolved := make([]entities.ActionItemSuggestion, 0, len(parsed))
	for _, sug := range parsed {
		p, err := s.participantRepo.FindByName(ctx, sug.Assignee)
		if err != nil {
			return nil, err
		}
		if p == nil {
			if s.logger != nil {
				s.logger.Warn("ai.suggestion.dropped",
					zap.String("meeting_id", meetingID),
					zap.String("assignee", sug.Assignee),
				)
			}
			continue
		}
		sug.AssigneeID = p.ID
		resolved = append(resolved, sug)
	}

	if s.logger != nil {
		s.logger.Info("ai.suggestions.completed",
			zap.String("meeting_id", meetingID),
			zap.Int("suggested", len(parsed)),
			zap.Int("resolved", len(resolved)),
		)
	}
	return resolved, nil
}
