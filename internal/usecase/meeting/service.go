package meeting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
	"github.com/johnquangdev/meetscribe/internal/domain/repositories"
)

// EventPublisher notifies listeners which meeting changed, so views scoped to
// that meeting can revalidate. kind is "created" or "updated".
type EventPublisher interface {
	PublishMeetingEvent(kind, meetingID string)
}

// NopPublisher discards all events
type NopPublisher struct{}

func (NopPublisher) PublishMeetingEvent(kind, meetingID string) {}

// ValidationError carries a field-keyed message map. It is returned, not
// thrown past the service boundary, and always means no mutation happened.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// CreateInput holds the fields for creating a meeting
type CreateInput struct {
	Title          string
	Date           string
	Agenda         string
	ParticipantIDs []string
}

// AddActionItemInput holds the fields for recording an action item
type AddActionItemInput struct {
	Item       string
	AssigneeID string
	Deadline   *time.Time
}

// Service defines the meeting mutation and read operations
type Service interface {
	Create(ctx context.Context, input CreateInput) (*entities.Meeting, error)
	Get(ctx context.Context, meetingID string) (*entities.Meeting, error)
	ListMeetings(ctx context.Context) ([]*entities.Meeting, error)
	ListParticipants(ctx context.Context) ([]entities.Participant, error)
	UpdateNotes(ctx context.Context, meetingID, notes string) (*entities.Meeting, error)
	AppendTranscript(ctx context.Context, meetingID, transcript string) (*entities.Meeting, error)
	SetSummary(ctx context.Context, meetingID, summary string) (*entities.Meeting, error)
	AddActionItem(ctx context.Context, meetingID string, input AddActionItemInput) (*entities.ActionItem, error)
	ToggleActionItem(ctx context.Context, meetingID, actionItemID string) (*entities.ActionItem, error)
}

type meetingService struct {
	meetingRepo     repositories.MeetingRepository
	participantRepo repositories.ParticipantRepository
	events          EventPublisher
	logger          *zap.Logger
}

// NewService constructs the meeting service
func NewService(
	meetingRepo repositories.MeetingRepository,
	participantRepo repositories.ParticipantRepository,
	events EventPublisher,
	logger *zap.Logger,
) Service {
	if events == nil {
		events = NopPublisher{}
	}
	return &meetingService{
		meetingRepo:     meetingRepo,
		participantRepo: participantRepo,
		events:          events,
		logger:          logger,
	}
}

// Create validates the input and inserts a new meeting at the front of the
// collection. On any validation failure the store is left unchanged and a
// *ValidationError with one message per offending field is returned.
func (s *meetingService) Create(ctx context.Context, input CreateInput) (*entities.Meeting, error) {
	fields := make(map[string]string)

	if len(strings.TrimSpace(input.Title)) < 3 {
		fields["title"] = "Title must be at least 3 characters."
	}
	if len(strings.TrimSpace(input.Agenda)) < 10 {
		fields["agenda"] = "Agenda must be at least 10 characters."
	}

	var date time.Time
	if strings.TrimSpace(input.Date) == "" {
		fields["date"] = "Date is required."
	} else {
		parsed, err := time.Parse(time.RFC3339, input.Date)
		if err != nil {
			fields["date"] = "Date must be a valid RFC3339 timestamp."
		} else {
			date = parsed
		}
	}

	var participants []entities.Participant
	if len(input.ParticipantIDs) == 0 {
		fields["participants"] = "At least one participant is required."
	} else {
		resolved, err := s.participantRepo.FindByIDs(ctx, input.ParticipantIDs)
		if err != nil {
			fields["participants"] = "Invalid participant id found."
		} else {
			participants = resolved
		}
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	m := entities.NewMeeting(strings.TrimSpace(input.Title), date, input.Agenda, participants)
	if err := s.meetingRepo.Insert(ctx, m); err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("meeting.created",
			zap.String("meeting_id", m.ID),
			zap.Int("participants", len(m.Participants)),
		)
	}
	s.events.PublishMeetingEvent("created", m.ID)
	return m, nil
}

// Get retrieves a single meeting
func (s *meetingService) Get(ctx context.Context, meetingID string) (*entities.Meeting, error) {
	return s.meetingRepo.FindByID(ctx, meetingID)
}

// ListMeetings retrieves all meetings, newest created first
func (s *meetingService) ListMeetings(ctx context.Context) ([]*entities.Meeting, error) {
	return s.meetingRepo.List(ctx)
}

// ListParticipants retrieves the seeded participant set
func (s *meetingService) ListParticipants(ctx context.Context) ([]entities.Participant, error) {
	return s.participantRepo.List(ctx)
}

// UpdateNotes overwrites the meeting's notes unconditionally (last write wins)
func (s *meetingService) UpdateNotes(ctx context.Context, meetingID, notes string) (*entities.Meeting, error) {
	return s.mutate(ctx, meetingID, func(m *entities.Meeting) error {
		m.Notes = notes
		return nil
	})
}

// AppendTranscript concatenates transcribed text onto the existing notes
func (s *meetingService) AppendTranscript(ctx context.Context, meetingID, transcript string) (*entities.Meeting, error) {
	return s.mutate(ctx, meetingID, func(m *entities.Meeting) error {
		m.AppendNotes(transcript)
		return nil
	})
}

// SetSummary overwrites the meeting's summary unconditionally
func (s *meetingService) SetSummary(ctx context.Context, meetingID, summary string) (*entities.Meeting, error) {
	return s.mutate(ctx, meetingID, func(m *entities.Meeting) error {
		m.Summary = summary
		return nil
	})
}

// AddActionItem appends a new incomplete action item to the meeting.
// The assignee must resolve to a known participant.
func (s *meetingService) AddActionItem(ctx context.Context, meetingID string, input AddActionItemInput) (*entities.ActionItem, error) {
	assignee, err := s.participantRepo.FindByID(ctx, input.AssigneeID)
	if err != nil {
		return nil, fmt.Errorf("resolve assignee: %w", err)
	}
	if assignee == nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrParticipantNotFound, input.AssigneeID)
	}

	item := entities.NewActionItem(input.Item, assignee.ID, input.Deadline)
	if _, err := s.mutate(ctx, meetingID, func(m *entities.Meeting) error {
		m.ActionItems = append(m.ActionItems, *item)
		return nil
	}); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleActionItem flips the completion flag of an action item in place
func (s *meetingService) ToggleActionItem(ctx context.Context, meetingID, actionItemID string) (*entities.ActionItem, error) {
	var toggled entities.ActionItem
	if _, err := s.mutate(ctx, meetingID, func(m *entities.Meeting) error {
		item := m.FindActionItem(actionItemID)
		if item == nil {
			return fmt.Errorf("%w: %s", entities.ErrActionItemNotFound, actionItemID)
		}
		item.Toggle()
		toggled = *item
		return nil
	}); err != nil {
		return nil, err
	}
	return &toggled, nil
}

// mutate loads the meeting, applies fn to the copy and writes it back.
// The whole-record replace keeps last-write-wins semantics when two callers
// race on the same meeting.
func (s *meetingService) mutate(ctx context.Context, meetingID string, fn func(*entities.Meeting) error) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if err := fn(m); err != nil {
		return nil, err
	}
	m.UpdatedAt = time.Now()
	if err := s.meetingRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	s.events.PublishMeetingEvent("updated", m.ID)
	return m, nil
}
