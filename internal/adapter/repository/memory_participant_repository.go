package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
	"github.com/johnquangdev/meetscribe/internal/domain/repositories"
)

// MemoryParticipantRepository holds the seeded participant set.
// The set is fixed after construction, so reads need only a shared lock for
// consistency with the meeting store's discipline.
type MemoryParticipantRepository struct {
	mu           sync.RWMutex
	participants []entities.Participant
}

// NewMemoryParticipantRepository creates a participant store with the given seed
func NewMemoryParticipantRepository(seed []entities.Participant) *MemoryParticipantRepository {
	participants := make([]entities.Participant, len(seed))
	copy(participants, seed)
	return &MemoryParticipantRepository{participants: participants}
}

var _ repositories.ParticipantRepository = (*MemoryParticipantRepository)(nil)

// FindByID retrieves a participant by id; nil when absent
func (r *MemoryParticipantRepository) FindByID(ctx context.Context, id string) (*entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.participants {
		if p.ID == id {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

// FindByIDs resolves all ids in input order
func (r *MemoryParticipantRepository) FindByIDs(ctx context.Context, ids []string) ([]entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	resolved := make([]entities.Participant, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, p := range r.participants {
			if p.ID == id {
				resolved = append(resolved, p)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", entities.ErrParticipantNotFound, id)
		}
	}
	return resolved, nil
}

// FindByName retrieves a participant by exact display name; nil when absent
func (r *MemoryParticipantRepository) FindByName(ctx context.Context, name string) (*entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.participants {
		if p.Name == name {
			c := p
			return &c, nil
		}
	}
	return nil, nil
}

// List retrieves all participants in seed order
func (r *MemoryParticipantRepository) List(ctx context.Context) ([]entities.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entities.Participant, len(r.participants))
	copy(out, r.participants)
	return out, nil
}
