package entities

// Participant represents a person who can be invited to meetings.
// Participants are seeded once at startup and are immutable afterwards;
// meetings reference them by snapshotting the resolved objects.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}
