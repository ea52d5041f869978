package repository

import (
	"context"
	"sync"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
	"github.com/johnquangdev/meetscribe/internal/domain/repositories"
)

// MemoryMeetingRepository holds the canonical meeting collection in process
// memory. Reads hand out deep copies and writes replace whole records under
// the lock, so concurrent mutations of the same meeting settle as
// last-write-wins without data races. Nothing survives a restart.
type MemoryMeetingRepository struct {
	mu       sync.RWMutex
	meetings []*entities.Meeting
}

// NewMemoryMeetingRepository creates an empty in-memory meeting store
func NewMemoryMeetingRepository() *MemoryMeetingRepository {
	return &MemoryMeetingRepository{
		meetings: make([]*entities.Meeting, 0),
	}
}

var _ repositories.MeetingRepository = (*MemoryMeetingRepository)(nil)

// Insert adds the meeting at the front of the collection
func (r *MemoryMeetingRepository) Insert(ctx context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.meetings = append([]*entities.Meeting{copyMeeting(meeting)}, r.meetings...)
	return nil
}

// FindByID retrieves a copy of the meeting with the given id
func (r *MemoryMeetingRepository) FindByID(ctx context.Context, id string) (*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.meetings {
		if m.ID == id {
			return copyMeeting(m), nil
		}
	}
	return nil, entities.ErrMeetingNotFound
}

// List retrieves copies of all meetings, newest created first
func (r *MemoryMeetingRepository) List(ctx context.Context) ([]*entities.Meeting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.Meeting, len(r.meetings))
	for i, m := range r.meetings {
		out[i] = copyMeeting(m)
	}
	return out, nil
}

// Update replaces the stored meeting with the same id
func (r *MemoryMeetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.meetings {
		if m.ID == meeting.ID {
			r.meetings[i] = copyMeeting(meeting)
			return nil
		}
	}
	return entities.ErrMeetingNotFound
}

// Count returns the number of stored meetings
func (r *MemoryMeetingRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.meetings), nil
}

// copyMeeting deep-copies a meeting so callers never share slices with the store
func copyMeeting(m *entities.Meeting) *entities.Meeting {
	c := *m
	c.Participants = make([]entities.Participant, len(m.Participants))
	copy(c.Participants, m.Participants)
	c.ActionItems = make([]entities.ActionItem, len(m.ActionItems))
	for i, ai := range m.ActionItems {
		c.ActionItems[i] = ai
		if ai.Deadline != nil {
			d := *ai.Deadline
			c.ActionItems[i].Deadline = &d
		}
	}
	return &c
}
