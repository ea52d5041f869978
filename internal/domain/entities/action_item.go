package entities

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem represents a task recorded against a meeting.
// Items are append-only: they are created, toggled, never deleted.
type ActionItem struct {
	ID         string     `json:"id"`
	Item       string     `json:"item"`
	AssigneeID string     `json:"assignee_id"`
	Deadline   *time.Time `json:"deadline,omitempty"`
	Completed  bool       `json:"completed"`
	CreatedAt  time.Time  `json:"created_at"`
}

// NewActionItem creates an incomplete action item with a fresh id
func NewActionItem(item, assigneeID string, deadline *time.Time) *ActionItem {
	return &ActionItem{
		ID:         NewActionItemID(),
		Item:       item,
		AssigneeID: assigneeID,
		Deadline:   deadline,
		Completed:  false,
		CreatedAt:  time.Now(),
	}
}

// Toggle flips the completion flag in place
func (a *ActionItem) Toggle() {
	a.Completed = !a.Completed
}

// NewActionItemID generates a unique action item id.
// The "ai-" prefix is kept for continuity with existing clients; the uuid
// suffix makes same-millisecond creations collision-free.
func NewActionItemID() string {
	return "ai-" + uuid.NewString()
}
