package meeting

import "time"

// CreateMeetingRequest represents the request to create a meeting.
// Field bounds are enforced by the meeting service, which returns the
// field-keyed error map the client renders next to each form field.
type CreateMeetingRequest struct {
	Title          string   `json:"title"`
	Date           string   `json:"date"`
	Agenda         string   `json:"agenda"`
	ParticipantIDs []string `json:"participant_ids"`
}

// UpdateNotesRequest represents the request to overwrite a meeting's notes.
// Empty notes are allowed; the overwrite is unconditional.
type UpdateNotesRequest struct {
	Notes string `json:"notes"`
}

// AddActionItemRequest represents the request to record an action item
type AddActionItemRequest struct {
	Item       string     `json:"item" validate:"required,min=1"`
	AssigneeID string     `json:"assignee_id" validate:"required"`
	Deadline   *time.Time `json:"deadline,omitempty"`
}

// TranscribeRequest carries the audio payload as a base64 data URI
type TranscribeRequest struct {
	AudioDataURI string `json:"audio_data_uri" validate:"required"`
}
