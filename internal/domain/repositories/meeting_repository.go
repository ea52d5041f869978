package repositories

import (
	"context"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// The canonical implementation is an in-memory store; the interface keeps the
// seam a persistent backend would plug into without touching calling code.
type MeetingRepository interface {
	// Insert adds a new meeting at the front of the collection, so the most
	// recently created meeting is always listed first
	Insert(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its id.
	// Returns entities.ErrMeetingNotFound when no meeting has that id.
	FindByID(ctx context.Context, id string) (*entities.Meeting, error)

	// List retrieves all meetings in insertion order (newest created first)
	List(ctx context.Context) ([]*entities.Meeting, error)

	// Update replaces the stored meeting with the same id.
	// Returns entities.ErrMeetingNotFound when the meeting is absent.
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Count returns the number of stored meetings
	Count(ctx context.Context) (int, error)
}
