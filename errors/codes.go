package errors

// ErrorCode identifies a class of application error in responses and logs
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1003
	ErrorCode_VALIDATION       ErrorCode = 1004

	// Meeting domain
	ErrorCode_MEETING_NOT_FOUND     ErrorCode = 2000
	ErrorCode_ACTION_ITEM_NOT_FOUND ErrorCode = 2001
	ErrorCode_PARTICIPANT_NOT_FOUND ErrorCode = 2002

	// AI gateway
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3001
	ErrorCode_AI_SUGGESTION_FAILED    ErrorCode = 3002
	ErrorCode_AI_EMPTY_NOTES          ErrorCode = 3003
)

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_VALIDATION:
		return "VALIDATION"
	case ErrorCode_MEETING_NOT_FOUND:
		return "MEETING_NOT_FOUND"
	case ErrorCode_ACTION_ITEM_NOT_FOUND:
		return "ACTION_ITEM_NOT_FOUND"
	case ErrorCode_PARTICIPANT_NOT_FOUND:
		return "PARTICIPANT_NOT_FOUND"
	case ErrorCode_AI_TRANSCRIPTION_FAILED:
		return "AI_TRANSCRIPTION_FAILED"
	case ErrorCode_AI_SUMMARY_FAILED:
		return "AI_SUMMARY_FAILED"
	case ErrorCode_AI_SUGGESTION_FAILED:
		return "AI_SUGGESTION_FAILED"
	case ErrorCode_AI_EMPTY_NOTES:
		return "AI_EMPTY_NOTES"
	default:
		return "UNKNOWN"
	}
}
