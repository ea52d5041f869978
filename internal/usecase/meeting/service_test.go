package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/johnquangdev/meetscribe/internal/adapter/repository"
	"github.com/johnquangdev/meetscribe/internal/domain/entities"
)

type recordingPublisher struct {
	events []string
}

func (r *recordingPublisher) PublishMeetingEvent(kind, meetingID string) {
	r.events = append(r.events, kind+":"+meetingID)
}

func newTestService(t *testing.T) (Service, *repository.MemoryMeetingRepository, *recordingPublisher) {
	t.Helper()
	participants := repository.NewMemoryParticipantRepository(repository.SeedParticipants())
	meetings := repository.NewMemoryMeetingRepository()
	all, err := participants.List(context.Background())
	if err != nil {
		t.Fatalf("list participants: %v", err)
	}
	if err := repository.SeedMeetings(context.Background(), meetings, all); err != nil {
		t.Fatalf("seed: %v", err)
	}
	pub := &recordingPublisher{}
	return NewService(meetings, participants, pub, nil), meetings, pub
}

func validInput() CreateInput {
	return CreateInput{
		Title:          "Standup",
		Date:           time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		Agenda:         "Daily team sync and blockers review",
		ParticipantIDs: []string{"user-1"},
	}
}

func TestCreate_ValidationFailuresLeaveStoreUnchanged(t *testing.T) {
	svc, meetings, _ := newTestService(t)
	before, _ := meetings.Count(context.Background())

	cases := []struct {
		name  string
		mut   func(*CreateInput)
		field string
	}{
		{"short title", func(in *CreateInput) { in.Title = "ab" }, "title"},
		{"short agenda", func(in *CreateInput) { in.Agenda = "too short" }, "agenda"},
		{"empty date", func(in *CreateInput) { in.Date = "" }, "date"},
		{"unparseable date", func(in *CreateInput) { in.Date = "next tuesday" }, "date"},
		{"no participants", func(in *CreateInput) { in.ParticipantIDs = nil }, "participants"},
		{"unknown participant", func(in *CreateInput) { in.ParticipantIDs = []string{"user-99"} }, "participants"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mut(&in)

			_, err := svc.Create(context.Background(), in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if _, ok := verr.Fields[tc.field]; !ok {
				t.Fatalf("expected field %q in error map, got %v", tc.field, verr.Fields)
			}

			after, _ := meetings.Count(context.Background())
			if after != before {
				t.Fatalf("store changed on validation failure: %d -> %d", before, after)
			}
		})
	}
}

func TestCreate_Success(t *testing.T) {
	svc, _, pub := newTestService(t)

	m, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(m.Participants) != 1 || m.Participants[0].ID != "user-1" || m.Participants[0].Name != "Alex Johnson" {
		t.Fatalf("unexpected participants %v", m.Participants)
	}
	if m.Notes != "" || m.Summary != "" || len(m.ActionItems) != 0 {
		t.Fatalf("new meeting not empty: notes=%q summary=%q items=%d", m.Notes, m.Summary, len(m.ActionItems))
	}

	list, _ := svc.ListMeetings(context.Background())
	if list[0].ID != m.ID {
		t.Fatalf("expected new meeting at index 0, got %s", list[0].ID)
	}

	if len(pub.events) != 1 || pub.events[0] != "created:"+m.ID {
		t.Fatalf("expected a created event, got %v", pub.events)
	}
}

func TestCreate_ParticipantsSnapshotInInputOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := validInput()
	in.ParticipantIDs = []string{"user-3", "user-1", "user-5"}

	m, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	want := []string{"user-3", "user-1", "user-5"}
	for i, id := range want {
		if m.Participants[i].ID != id {
			t.Fatalf("participant %d: got %s, want %s", i, m.Participants[i].ID, id)
		}
	}
}

func TestUpdateNotes_LastWriteWins(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.UpdateNotes(context.Background(), "mtg-2", "first draft"); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.UpdateNotes(context.Background(), "mtg-2", "final notes"); err != nil {
		t.Fatalf("update: %v", err)
	}

	m, _ := svc.Get(context.Background(), "mtg-2")
	if m.Notes != "final notes" {
		t.Fatalf("expected exact notes back, got %q", m.Notes)
	}
}

func TestUpdateNotes_MissingMeeting(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateNotes(context.Background(), "mtg-missing", "notes")
	if !errors.Is(err, entities.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestAppendTranscript_NewlineSeparator(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Empty notes: no separator.
	m, err := svc.AppendTranscript(context.Background(), "mtg-2", "hello world")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if m.Notes != "hello world" {
		t.Fatalf("unexpected notes %q", m.Notes)
	}

	// Non-empty notes: newline separator.
	m, err = svc.AppendTranscript(context.Background(), "mtg-2", "second part")
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if m.Notes != "hello world\nsecond part" {
		t.Fatalf("unexpected notes %q", m.Notes)
	}
}

func TestAddActionItem_TwiceDistinctIDs(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := AddActionItemInput{Item: "Send invoice", AssigneeID: "user-2"}
	first, err := svc.AddActionItem(context.Background(), "mtg-2", in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	second, err := svc.AddActionItem(context.Background(), "mtg-2", in)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %s", first.ID)
	}
	if first.Completed || second.Completed {
		t.Fatal("new action items must start incomplete")
	}

	m, _ := svc.Get(context.Background(), "mtg-2")
	if len(m.ActionItems) != 2 {
		t.Fatalf("expected 2 action items, got %d", len(m.ActionItems))
	}
}

func TestAddActionItem_UnknownAssignee(t *testing.T) {
	svc, meetings, _ := newTestService(t)
	before, _ := meetings.Count(context.Background())

	_, err := svc.AddActionItem(context.Background(), "mtg-2", AddActionItemInput{Item: "Task", AssigneeID: "user-99"})
	if !errors.Is(err, entities.ErrParticipantNotFound) {
		t.Fatalf("expected ErrParticipantNotFound, got %v", err)
	}

	after, _ := meetings.Count(context.Background())
	if after != before {
		t.Fatal("store changed on failed add")
	}
}

func TestToggleActionItem_DoubleToggleRestores(t *testing.T) {
	svc, _, _ := newTestService(t)

	item, err := svc.ToggleActionItem(context.Background(), "mtg-1", "ai-1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !item.Completed {
		t.Fatal("expected completed after first toggle")
	}

	item, err = svc.ToggleActionItem(context.Background(), "mtg-1", "ai-1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if item.Completed {
		t.Fatal("expected original value after double toggle")
	}
}

func TestToggleActionItem_NotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.ToggleActionItem(context.Background(), "mtg-1", "ai-missing")
	if !errors.Is(err, entities.ErrActionItemNotFound) {
		t.Fatalf("expected ErrActionItemNotFound, got %v", err)
	}

	_, err = svc.ToggleActionItem(context.Background(), "mtg-missing", "ai-1")
	if !errors.Is(err, entities.ErrMeetingNotFound) {
		t.Fatalf("expected ErrMeetingNotFound, got %v", err)
	}
}

func TestMutationsPublishUpdatedEvents(t *testing.T) {
	svc, _, pub := newTestService(t)

	if _, err := svc.SetSummary(context.Background(), "mtg-1", "short summary"); err != nil {
		t.Fatalf("set summary: %v", err)
	}
	if len(pub.events) != 1 || pub.events[0] != "updated:mtg-1" {
		t.Fatalf("expected updated event for mtg-1, got %v", pub.events)
	}
}
