package entities

// ActionItemSuggestion is a model-proposed action item. Assignee is the
// participant's display name as the model produced it; AssigneeID is filled
// in after resolution against the known participants. Suggestions are never
// persisted until the caller explicitly accepts one.
type ActionItemSuggestion struct {
	Item       string `json:"item"`
	Assignee   string `json:"assignee"`
	AssigneeID string `json:"assignee_id,omitempty"`
	Deadline   string `json:"deadline,omitempty"`
}
