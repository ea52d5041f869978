package repository

import (
	"context"
	"time"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
)

// SeedParticipants returns the fixed participant set the store starts with
func SeedParticipants() []entities.Participant {
	return []entities.Participant{
		{ID: "user-1", Name: "Alex Johnson", AvatarURL: "https://picsum.photos/seed/user1/40/40"},
		{ID: "user-2", Name: "Maria Garcia", AvatarURL: "https://picsum.photos/seed/user2/40/40"},
		{ID: "user-3", Name: "James Smith", AvatarURL: "https://picsum.photos/seed/user3/40/40"},
		{ID: "user-4", Name: "Priya Patel", AvatarURL: "https://picsum.photos/seed/user4/40/40"},
		{ID: "user-5", Name: "Kenji Tanaka", AvatarURL: "https://picsum.photos/seed/user5/40/40"},
	}
}

// SeedMeetings inserts the fixed demo meetings into an empty store.
// Dates are relative to startup so the dashboard always shows one past and
// two upcoming meetings. Seed ids are stable, unlike generated ids.
func SeedMeetings(ctx context.Context, repo *MemoryMeetingRepository, participants []entities.Participant) error {
	now := time.Now()

	kickoff := &entities.Meeting{
		ID:           "mtg-1",
		Title:        "Q3 Project Kick-off",
		Date:         now.Add(-48 * time.Hour),
		Participants: []entities.Participant{participants[0], participants[1], participants[2]},
		Agenda:       "1. Review Q2 Performance\n2. Outline Q3 Goals\n3. Define Project Scope\n4. Assign Initial Tasks",
		Notes:        "Meeting started with a review of Q2 successes. Q3 goals were set, focusing on market expansion. The new project scope was detailed, and initial tasks were assigned to team members.",
		Summary:      "The Q3 Project Kick-off successfully established the direction for the upcoming quarter. Key discussion points included analyzing Q2 performance, setting ambitious but achievable goals for Q3, and clearly defining the scope of our new project. Initial tasks have been distributed to get the project underway.",
		ActionItems: []entities.ActionItem{
			{ID: "ai-1", Item: "Finalize Q3 budget proposal", AssigneeID: "user-1", Deadline: timePtr(now.Add(5 * 24 * time.Hour)), Completed: false, CreatedAt: now},
			{ID: "ai-2", Item: "Develop initial design mockups", AssigneeID: "user-2", Deadline: timePtr(now.Add(7 * 24 * time.Hour)), Completed: false, CreatedAt: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	marketing := &entities.Meeting{
		ID:           "mtg-2",
		Title:        "Marketing Strategy Session",
		Date:         now.Add(3 * 24 * time.Hour),
		Participants: []entities.Participant{participants[0], participants[3], participants[4]},
		Agenda:       "1. Analyze competitor campaigns\n2. Brainstorm new marketing channels\n3. Plan social media calendar",
		ActionItems:  []entities.ActionItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	feedback := &entities.Meeting{
		ID:           "mtg-3",
		Title:        "User Feedback Review",
		Date:         now.Add(7 * 24 * time.Hour),
		Participants: []entities.Participant{participants[1], participants[2], participants[4]},
		Agenda:       "1. Discuss latest user survey results\n2. Identify key pain points\n3. Prioritize feature requests",
		ActionItems:  []entities.ActionItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Insert prepends, so insert in reverse of the desired listing order
	for _, m := range []*entities.Meeting{feedback, marketing, kickoff} {
		if err := repo.Insert(ctx, m); err != nil {
			return err
		}
	}
	return nil
}

func timePtr(t time.Time) *time.Time {
	return &t
}
