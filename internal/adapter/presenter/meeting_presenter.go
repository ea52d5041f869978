package presenter

import (
	meetingdto "github.com/johnquangdev/meetscribe/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meetscribe/internal/domain/entities"
)

// ToParticipantResponse converts a Participant entity to its response shape
func ToParticipantResponse(p entities.Participant) meetingdto.ParticipantResponse {
	return meetingdto.ParticipantResponse{
		ID:        p.ID,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
	}
}

// ToParticipantResponses converts a slice of participants
func ToParticipantResponses(ps []entities.Participant) []meetingdto.ParticipantResponse {
	out := make([]meetingdto.ParticipantResponse, len(ps))
	for i, p := range ps {
		out[i] = ToParticipantResponse(p)
	}
	return out
}

// ToActionItemResponse converts an ActionItem entity to its response shape
func ToActionItemResponse(a entities.ActionItem) meetingdto.ActionItemResponse {
	return meetingdto.ActionItemResponse{
		ID:         a.ID,
		Item:       a.Item,
		AssigneeID: a.AssigneeID,
		Deadline:   a.Deadline,
		Completed:  a.Completed,
		CreatedAt:  a.CreatedAt,
	}
}

// ToMeetingResponse converts a Meeting entity to its response shape
func ToMeetingResponse(m *entities.Meeting) *meetingdto.MeetingResponse {
	if m == nil {
		return nil
	}

	items := make([]meetingdto.ActionItemResponse, len(m.ActionItems))
	for i, a := range m.ActionItems {
		items[i] = ToActionItemResponse(a)
	}

	return &meetingdto.MeetingResponse{
		ID:           m.ID,
		Title:        m.Title,
		Date:         m.Date,
		Participants: ToParticipantResponses(m.Participants),
		Agenda:       m.Agenda,
		Notes:        m.Notes,
		Summary:      m.Summary,
		ActionItems:  items,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMeetingResponses converts a slice of meetings
func ToMeetingResponses(ms []*entities.Meeting) []*meetingdto.MeetingResponse {
	out := make([]*meetingdto.MeetingResponse, len(ms))
	for i, m := range ms {
		out[i] = ToMeetingResponse(m)
	}
	return out
}

// ToSuggestionResponses converts model suggestions to their response shape
func ToSuggestionResponses(ss []entities.ActionItemSuggestion) []meetingdto.SuggestionResponse {
	out := make([]meetingdto.SuggestionResponse, len(ss))
	for i, s := range ss {
		out[i] = meetingdto.SuggestionResponse{
			Item:       s.Item,
			Assignee:   s.Assignee,
			AssigneeID: s.AssigneeID,
			Deadline:   s.Deadline,
		}
	}
	return out
}
