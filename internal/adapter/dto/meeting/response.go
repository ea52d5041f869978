package meeting

import "time"

// ParticipantResponse represents a participant in responses
type ParticipantResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// ActionItemResponse represents an action item in responses
type ActionItemResponse struct {
	ID         string     `json:"id"`
	Item       string     `json:"item"`
	AssigneeID string     `json:"assignee_id"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Completed  bool       `json:"completed"`
	CreatedAt  time.Time  `json:"created_at"`
}

// MeetingResponse represents a meeting in responses
type MeetingResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Date         time.Time             `json:"date"`
	Participants []ParticipantResponse `json:"participants"`
	Agenda       string                `json:"agenda"`
	Notes        string                `json:"notes"`
	Summary      string                `json:"summary"`
	ActionItems  []ActionItemResponse  `json:"action_items"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// TranscriptionResponse carries the transcribed text back to the caller
type TranscriptionResponse struct {
	Transcript string `json:"transcript"`
}

// SummaryResponse carries the generated summary back to the caller
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// SuggestionResponse represents one model-suggested action item.
// AssigneeID is always resolved; unresolvable suggestions are dropped
// before the response is built.
type SuggestionResponse struct {
	Item       string `json:"item"`
	Assignee   string `json:"assignee"`
	AssigneeID string `json:"assignee_id"`
	Deadline   string `json:"deadline,omitempty"`
}
