package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meetscribe/errors"
	meetingdto "github.com/johnquangdev/meetscribe/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meetscribe/internal/adapter/presenter"
	"github.com/johnquangdev/meetscribe/internal/domain/entities"
	aiuse "github.com/johnquangdev/meetscribe/internal/usecase/ai"
	pkgai "github.com/johnquangdev/meetscribe/pkg/ai"
)

// AIController handles the AI gateway endpoints
type AIController struct {
	svc    aiuse.Service
	logger *zap.Logger
}

// NewAIController creates a new AI controller
func NewAIController(svc aiuse.Service, logger *zap.Logger) *AIController {
	return &AIController{svc: svc, logger: logger}
}

// Transcribe converts uploaded audio to text and appends it to the notes
// @Summary      Transcribe audio
// @Description  Transcribes a base64 audio data URI and appends the transcript to the meeting notes
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Meeting ID"
// @Param        request  body      meeting.TranscribeRequest  true  "Audio payload"
// @Success      200      {object}  map[string]interface{}     "Transcript"
// @Failure      400      {object}  map[string]interface{}     "Malformed audio payload"
// @Failure      404      {object}  map[string]interface{}     "Meeting not found"
// @Failure      500      {object}  map[string]interface{}     "Transcription failed"
// @Router       /ai/meetings/{id}/transcription [post]
func (ac *AIController) Transcribe(c echo.Context) error {
	meetingID := c.Param("id")
	var req meetingdto.TranscribeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("audio_data_uri is required"))
	}

	transcript, err := ac.svc.Transcribe(c.Request().Context(), meetingID, req.AudioDataURI)
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrMeetingNotFound):
			return HandleError(ac.logger, c, errors.ErrMeetingNotFound(meetingID))
		case stdErrors.Is(err, pkgai.ErrInvalidDataURI):
			return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
		default:
			return HandleError(ac.logger, c, errors.ErrAITranscriptionFailed(err))
		}
	}

	return HandleSuccess(ac.logger, c, meetingdto.TranscriptionResponse{Transcript: transcript})
}

// Summarize generates and stores a summary of the meeting notes
// @Summary      Summarize notes
// @Description  Generates a summary of the meeting notes and persists it on the meeting
// @Tags         AI
// @Produce      json
// @Param        id   path      string                  true  "Meeting ID"
// @Success      200  {object}  map[string]interface{}  "Summary"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      412  {object}  map[string]interface{}  "Notes are empty"
// @Failure      500  {object}  map[string]interface{}  "Summary generation failed"
// @Router       /ai/meetings/{id}/summary [post]
func (ac *AIController) Summarize(c echo.Context) error {
	meetingID := c.Param("id")

	summary, err := ac.svc.Summarize(c.Request().Context(), meetingID)
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrMeetingNotFound):
			return HandleError(ac.logger, c, errors.ErrMeetingNotFound(meetingID))
		case stdErrors.Is(err, entities.ErrNothingToSummarize):
			return HandleError(ac.logger, c, errors.ErrEmptyNotes("No notes to summarize"))
		default:
			return HandleError(ac.logger, c, errors.ErrAISummaryFailed(err))
		}
	}

	return HandleSuccess(ac.logger, c, meetingdto.SummaryResponse{Summary: summary})
}

// SuggestActionItems proposes action items extracted from the meeting notes
// @Summary      Suggest action items
// @Description  Proposes action items from the meeting notes; nothing is persisted until the client accepts one
// @Tags         AI
// @Produce      json
// @Param        id   path      string                  true  "Meeting ID"
// @Success      200  {object}  map[string]interface{}  "Suggestions"
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Failure      412  {object}  map[string]interface{}  "Notes are empty"
// @Failure      500  {object}  map[string]interface{}  "Suggestion generation failed"
// @Router       /ai/meetings/{id}/suggestions [post]
func (ac *AIController) SuggestActionItems(c echo.Context) error {
	meetingID := c.Param("id")

	suggestions, err := ac.svc.SuggestActionItems(c.Request().Context(), meetingID)
	if err != nil {
		switch {
		case stdErrors.Is(err, entities.ErrMeetingNotFound):
			return HandleError(ac.logger, c, errors.ErrMeetingNotFound(meetingID))
		case stdErrors.Is(err, entities.ErrNothingToAnalyze):
			return HandleError(ac.logger, c, errors.ErrEmptyNotes("No notes to analyze for action items"))
		default:
			return HandleError(ac.logger, c, errors.ErrAISuggestionFailed(err))
		}
	}

	return HandleSuccess(ac.logger, c, presenter.ToSuggestionResponses(suggestions))
}
