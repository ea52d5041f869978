package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meetscribe/errors"
	meetingdto "github.com/johnquangdev/meetscribe/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meetscribe/internal/adapter/presenter"
	meetinguse "github.com/johnquangdev/meetscribe/internal/usecase/meeting"
)

// MeetingController handles meeting CRUD and mutation endpoints
type MeetingController struct {
	svc    meetinguse.Service
	logger *zap.Logger
}

// NewMeetingController creates a new meeting controller
func NewMeetingController(svc meetinguse.Service, logger *zap.Logger) *MeetingController {
	return &MeetingController{svc: svc, logger: logger}
}

// ListParticipants returns the participant roster
// @Summary      List participants
// @Description  Returns every known participant in the workspace
// @Tags         Participants
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Participant list"
// @Router       /participants [get]
func (mc *MeetingController) ListParticipants(c echo.Context) error {
	participants, err := mc.svc.ListParticipants(c.Request().Context())
	if err != nil {
		return HandleError(mc.logger, c, err)
	}
	return HandleSuccess(mc.logger, c, presenter.ToParticipantResponses(participants))
}

// ListMeetings returns every meeting, newest first
// @Summary      List meetings
// @Description  Returns all meetings ordered newest first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "Meeting list"
// @Router       /meetings [get]
func (mc *MeetingController) ListMeetings(c echo.Context) error {
	meetings, err := mc.svc.ListMeetings(c.Request().Context())
	if err != nil {
		return HandleError(mc.logger, c, err)
	}
	return HandleSuccess(mc.logger, c, presenter.ToMeetingResponses(meetings))
}

// GetMeeting returns a single meeting by id
// @Summary      Get meeting
// @Description  Returns one meeting with its notes, summary and action items
// @Tags         Meetings
// @Produce      json
// @Param        id   path      string                  true  "Meeting ID"
// @Success      200  {object}  map[string]interface{}  "Meeting"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (mc *MeetingController) GetMeeting(c echo.Context) error {
	meetingID := c.Param("id")
	meeting, err := mc.svc.Get(c.Request().Context(), meetingID)
	if err != nil {
		return HandleError(mc.logger, c, mapMeetingError(err, map[string]string{"meeting_id": meetingID}))
	}
	return HandleSuccess(mc.logger, c, presenter.ToMeetingResponse(meeting))
}

// CreateMeeting creates a new meeting
// @Summary      Create meeting
// @Description  Creates a meeting after validating title, date, agenda and participants
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.CreateMeetingRequest  true  "Meeting payload"
// @Success      201      {object}  map[string]interface{}        "Created meeting"
// @Failure      400      {object}  map[string]interface{}        "Validation failed"
// @Router       /meetings [post]
func (mc *MeetingController) CreateMeeting(c echo.Context) error {
	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}

	meeting, err := mc.svc.Create(c.Request().Context(), meetinguse.CreateInput{
		Title:          req.Title,
		Date:           req.Date,
		Agenda:         req.Agenda,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		return HandleError(mc.logger, c, mapMeetingError(err, nil))
	}

	return HandleCreated(mc.logger, c, presenter.ToMeetingResponse(meeting))
}

// UpdateNotes replaces a meeting's notes
// @Summary      Update notes
// @Description  Replaces the meeting notes wholesale
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Meeting ID"
// @Param        request  body      meeting.UpdateNotesRequest true  "Notes payload"
// @Success      200      {object}  map[string]interface{}     "Updated meeting"
// @Failure      404      {object}  map[string]interface{}     "Meeting not found"
// @Router       /meetings/{id}/notes [put]
func (mc *MeetingController) UpdateNotes(c echo.Context) error {
	meetingID := c.Param("id")
	var req meetingdto.UpdateNotesRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}

	meeting, err := mc.svc.UpdateNotes(c.Request().Context(), meetingID, req.Notes)
	if err != nil {
		return HandleError(mc.logger, c, mapMeetingError(err, map[string]string{"meeting_id": meetingID}))
	}

	return HandleSuccess(mc.logger, c, presenter.ToMeetingResponse(meeting))
}

// AddActionItem appends an action item to a meeting
// @Summary      Add action item
// @Description  Appends a new incomplete action item assigned to a known participant
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Meeting ID"
// @Param        request  body      meeting.AddActionItemRequest  true  "Action item payload"
// @Success      201      {object}  map[string]interface{}        "Created action item"
// @Failure      400      {object}  map[string]interface{}        "Invalid payload"
// @Failure      404      {object}  map[string]interface{}        "Meeting or assignee not found"
// @Router       /meetings/{id}/action-items [post]
func (mc *MeetingController) AddActionItem(c echo.Context) error {
	meetingID := c.Param("id")
	var req meetingdto.AddActionItemRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(mc.logger, c, errors.ErrInvalidArgument("Item and assignee_id are required"))
	}

	item, err := mc.svc.AddActionItem(c.Request().Context(), meetingID, meetinguse.AddActionItemInput{
		Item:       req.Item,
		AssigneeID: req.AssigneeID,
		Deadline:   req.Deadline,
	})
	if err != nil {
		return HandleError(mc.logger, c, mapMeetingError(err, map[string]string{
			"meeting_id":     meetingID,
			"participant_id": req.AssigneeID,
		}))
	}

	return HandleCreated(mc.logger, c, presenter.ToActionItemResponse(*item))
}

// ToggleActionItem flips an action item's completion flag
// @Summary      Toggle action item
// @Description  Flips the completion status of one action item
// @Tags         Meetings
// @Produce      json
// @Param        id      path      string                  true  "Meeting ID"
// @Param        itemID  path      string                  true  "Action item ID"
// @Success      200     {object}  map[string]interface{}  "Updated action item"
// @Failure      404     {object}  map[string]interface{}  "Meeting or action item not found"
// @Router       /meetings/{id}/action-items/{itemID}/toggle [patch]
func (mc *MeetingController) ToggleActionItem(c echo.Context) error {
	meetingID := c.Param("id")
	itemID := c.Param("itemID")

	item, err := mc.svc.ToggleActionItem(c.Request().Context(), meetingID, itemID)
	if err != nil {
		return HandleError(mc.logger, c, mapMeetingError(err, map[string]string{
			"meeting_id":     meetingID,
			"action_item_id": itemID,
		}))
	}

	return HandleSuccess(mc.logger, c, presenter.ToActionItemResponse(*item))
}
