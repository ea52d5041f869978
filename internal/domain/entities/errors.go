package entities

import "errors"

// Domain errors
var (
	// Store errors
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrActionItemNotFound  = errors.New("action item not found")
	ErrParticipantNotFound = errors.New("participant not found")

	// AI gateway preconditions
	ErrNothingToSummarize = errors.New("no notes to summarize")
	ErrNothingToAnalyze   = errors.New("no notes to analyze for action items")
)
