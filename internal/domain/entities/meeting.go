package entities

import (
	"time"

	"github.com/google/uuid"
)

// Meeting represents a scheduled meeting and everything captured during it.
// The participants slice is a snapshot of the resolved Participant objects at
// creation time, in the order the ids were supplied; membership never changes
// afterwards.
type Meeting struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Date         time.Time     `json:"date"`
	Participants []Participant `json:"participants"`
	Agenda       string        `json:"agenda"`
	Notes        string        `json:"notes"`
	Summary      string        `json:"summary"`
	ActionItems  []ActionItem  `json:"action_items"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewMeeting creates a meeting with empty notes, summary and action items
func NewMeeting(title string, date time.Time, agenda string, participants []Participant) *Meeting {
	now := time.Now()
	return &Meeting{
		ID:           NewMeetingID(),
		Title:        title,
		Date:         date,
		Participants: participants,
		Agenda:       agenda,
		Notes:        "",
		Summary:      "",
		ActionItems:  []ActionItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AppendNotes concatenates text onto the existing notes, separated by a
// newline when notes are already non-empty
func (m *Meeting) AppendNotes(text string) {
	if m.Notes != "" {
		m.Notes = m.Notes + "\n" + text
		return
	}
	m.Notes = text
}

// FindActionItem returns the action item with the given id, or nil
func (m *Meeting) FindActionItem(actionItemID string) *ActionItem {
	for i := range m.ActionItems {
		if m.ActionItems[i].ID == actionItemID {
			return &m.ActionItems[i]
		}
	}
	return nil
}

// HasNotes reports whether the meeting has any non-whitespace notes
func (m *Meeting) HasNotes() bool {
	for _, r := range m.Notes {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

// NewMeetingID generates a unique meeting id.
// Same prefix-plus-uuid scheme as action item ids.
func NewMeetingID() string {
	return "mtg-" + uuid.NewString()
}
