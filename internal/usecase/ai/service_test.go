package ai

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/johnquangdev/meetscribe/internal/adapter/repository"
	"github.com/johnquangdev/meetscribe/internal/domain/entities"
	meetinguse "github.com/johnquangdev/meetscribe/internal/usecase/meeting"
)

type fakeModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeModel) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeTranscriber struct {
	transcript string
	err        error
	calls      int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, mimeType string, audio []byte) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.transcript, nil
}

func newTestGateway(t *testing.T, model *fakeModel, transcriber *fakeTranscriber) (Service, meetinguse.Service) {
	t.Helper()
	participantRepo := repository.NewMemoryParticipantRepository(repository.SeedParticipants())
	meetingRepo := repository.NewMemoryMeetingRepository()
	all, err := participantRepo.List(context.Background())
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if err := repository.SeedMeetings(context.Background(), meetingRepo, all); err != nil {
		t.Fatalf("seed: %v", err)
	}
	meetings := meetinguse.NewService(meetingRepo, participantRepo, nil, nil)
	return NewService(meetings, participantRepo, model, transcriber, nil), meetings
}

func audioURI(payload string) string {
	return "data:audio/webm;base64," + base64.StdEncoding.EncodeToString([]byte(payload))
}

func TestTranscribe_AppendsToNotes(t *testing.T) {
	tr := &fakeTranscriber{transcript: "we discussed the roadmap"}
	svc, meetings := newTestGateway(t, &fakeModel{}, tr)

	out, err := svc.Transcribe(context.Background(), "mtg-1", audioURI("audio"))
	if err != nil {
		t.Fatalf("transcribe: %v", err)
	}
	if out != "we discussed the roadmap" {
		t.Fatalf("unexpected transcript %q", out)
	}

	m, _ := meetings.Get(context.Background(), "mtg-1")
	// mtg-1 is seeded with notes, so a newline separator is expected.
	wantSuffix := "\nwe discussed the roadmap"
	if len(m.Notes) < len(wantSuffix) || m.Notes[len(m.Notes)-len(wantSuffix):] != wantSuffix {
		t.Fatalf("transcript not appended with separator: %q", m.Notes)
	}
}

func TestTranscribe_MeetingNotFoundBeforeUpstream(t *testing.T) {
	tr := &fakeTranscriber{transcript: "text"}
	svc, _ := newTestGateway(t, &fakeModel{}, tr)

	_, err := svc.Transcribe(context.Background(), "mtg-missing", audioURI("audio"))
	if !errors.Is(err, entities.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
	if tr.calls != 0 {
		t.Fatal("transcriber must not be invoked for a missing meeting")
	}
}

func TestTranscribe_MalformedDataURI(t *testing.T) {
	tr := &fakeTranscriber{transcript: "text"}
	svc, meetings := newTestGateway(t, &fakeModel{}, tr)
	before, _ := meetings.Get(context.Background(), "mtg-1")

	_, err := svc.Transcribe(context.Background(), "mtg-1", "http://example.com/audio.mp3")
	if err == nil {
		t.Fatal("expected error for non-data URI")
	}
	if tr.calls != 0 {
		t.Fatal("transcriber must not be invoked for malformed payload")
	}

	after, _ := meetings.Get(context.Background(), "mtg-1")
	if after.Notes != before.Notes {
		t.Fatal("notes changed despite transcription failure")
	}
}

func TestTranscribe_UpstreamFailureKeepsNotes(t *testing.T) {
	tr := &fakeTranscriber{err: errors.New("upstream down")}
	svc, meetings := newTestGateway(t, &fakeModel{}, tr)
	before, _ := meetings.Get(context.Background(), "mtg-1")

	if _, err := svc.Transcribe(context.Background(), "mtg-1", audioURI("audio")); err == nil {
		t.Fatal("expected error from failing transcriber")
	}

	after, _ := meetings.Get(context.Background(), "mtg-1")
	if after.Notes != before.Notes {
		t.Fatal("partial text was kept after failure")
	}
}

func TestSummarize_PreconditionEmptyNotes(t *testing.T) {
	model := &fakeModel{response: `{"summary": "unused"}`}
	svc, _ := newTestGateway(t, model, &fakeTranscriber{})

	// mtg-2 is seeded without notes.
	_, err := svc.Summarize(context.Background(), "mtg-2")
	if !errors.Is(err, entities.ErrNothingToSummarize) {
		t.Fatalf("expected ErrNothingToSummarize, got %v", err)
	}
	if model.calls != 0 {
		t.Fatal("model must not be invoked when notes are empty")
	}
}

func TestSummarize_WhitespaceNotesCountAsEmpty(t *testing.T) {
	model := &fakeModel{response: `{"summary": "unused"}`}
	svc, meetings := newTestGateway(t, model, &fakeTranscriber{})

	if _, err := meetings.UpdateNotes(context.Background(), "mtg-2", "  \n\t "); err != nil {
		t.Fatalf("update notes: %v", err)
	}

	if _, err := svc.Summarize(context.Background(), "mtg-2"); !errors.Is(err, entities.ErrNothingToSummarize) {
		t.Fatalf("expected ErrNothingToSummarize for whitespace notes, got %v", err)
	}
	if model.calls != 0 {
		t.Fatal("model must not be invoked for whitespace-only notes")
	}
}

func TestSummarize_PersistsSummary(t *testing.T) {
	model := &fakeModel{response: `{"summary": "the team aligned on goals"}`}
	svc, meetings := newTestGateway(t, model, &fakeTranscriber{})

	summary, err := svc.Summarize(context.Background(), "mtg-1")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary != "the team aligned on goals" {
		t.Fatalf("unexpected summary %q", summary)
	}

	m, _ := meetings.Get(context.Background(), "mtg-1")
	if m.Summary != summary {
		t.Fatalf("summary not persisted: %q", m.Summary)
	}
}

func TestSummarize_SchemaViolatingResponse(t *testing.T) {
	model := &fakeModel{response: "I could not produce JSON, sorry"}
	svc, meetings := newTestGateway(t, model, &fakeTranscriber{})
	before, _ := meetings.Get(context.Background(), "mtg-1")

	if _, err := svc.Summarize(context.Background(), "mtg-1"); err == nil {
		t.Fatal("expected error for schema-violating response")
	}

	after, _ := meetings.Get(context.Background(), "mtg-1")
	if after.Summary != before.Summary {
		t.Fatal("summary changed despite adapter failure")
	}
}

func TestSuggestActionItems_Precondition(t *testing.T) {
	model := &fakeModel{response: `[]`}
	svc, _ := newTestGateway(t, model, &fakeTranscriber{})

	_, err := svc.SuggestActionItems(context.Background(), "mtg-2")
	if !errors.Is(err, entities.ErrNothingToAnalyze) {
		t.Fatalf("expected ErrNothingToAnalyze, got %v", err)
	}
	if model.calls != 0 {
		t.Fatal("model must not be invoked when notes are empty")
	}
}

func TestSuggestActionItems_DropsUnresolvableAssignees(t *testing.T) {
	model := &fakeModel{response: `[
		{"item": "Send invoice", "assignee": "Maria Garcia"},
		{"item": "Ping legal", "assignee": "Nonexistent Name"},
		{"item": "Book venue", "assignee": "Kenji Tanaka", "deadline": "Friday"}
	]`}
	svc, _ := newTestGateway(t, model, &fakeTranscriber{})

	suggestions, err := svc.SuggestActionItems(context.Background(), "mtg-1")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 resolved suggestions, got %d", len(suggestions))
	}
	if suggestions[0].AssigneeID != "user-2" {
		t.Fatalf("expected Maria Garcia resolved to user-2, got %q", suggestions[0].AssigneeID)
	}
	if suggestions[1].AssigneeID != "user-5" || suggestions[1].Deadline != "Friday" {
		t.Fatalf("unexpected suggestion %+v", suggestions[1])
	}
}

func TestSuggestActionItems_NothingPersisted(t *testing.T) {
	model := &fakeModel{response: `[{"item": "Send invoice", "assignee": "Maria Garcia"}]`}
	svc, meetings := newTestGateway(t, model, &fakeTranscriber{})

	if _, err := svc.SuggestActionItems(context.Background(), "mtg-1"); err != nil {
		t.Fatalf("suggest: %v", err)
	}

	m, _ := meetings.Get(context.Background(), "mtg-1")
	if len(m.ActionItems) != 2 {
		t.Fatalf("suggestions must not be persisted; action items now %d", len(m.ActionItems))
	}
}
