package repositories

import (
	"context"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
)

// ParticipantRepository defines read access to the seeded participant set.
// Participants are never created or removed after startup.
type ParticipantRepository interface {
	// FindByID retrieves a participant by id; returns nil when absent
	FindByID(ctx context.Context, id string) (*entities.Participant, error)

	// FindByIDs resolves all ids, preserving input order.
	// Returns entities.ErrParticipantNotFound if any id is unknown.
	FindByIDs(ctx context.Context, ids []string) ([]entities.Participant, error)

	// FindByName retrieves a participant by exact display name; nil when absent
	FindByName(ctx context.Context, name string) (*entities.Participant, error)

	// List retrieves all participants in seed order
	List(ctx context.Context) ([]entities.Participant, error)
}
