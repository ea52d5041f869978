package ai

import (
	"fmt"
	"strings"
)

// buildSummaryPrompt formats the summarizer prompt from the meeting notes
func buildSummaryPrompt(meetingNotes string) string {
	return fmt.Sprintf(`You are an expert meeting summarizer.

Please provide a concise summary of the meeting based on the following notes:
%s

Respond with a JSON object of the form {"summary": "<your summary>"} and nothing else.`, meetingNotes)
}

// buildSuggestionsPrompt formats the action item suggestion prompt from the
// transcript and the participant display names
func buildSuggestionsPrompt(meetingTranscript string, participants []string) string {
	var names strings.Builder
	for _, p := range participants {
		names.WriteString("- ")
		names.WriteString(p)
		names.WriteString("\n")
	}

	return fmt.Sprintf(`Based on the following meeting transcript, suggest action items with assignees and deadlines (if applicable). The action items should be specific and actionable. Use the participants list to assign the action items.

Meeting Transcript:
%s

Participants:
%s
Format the output as a JSON array of objects with 'item', 'assignee', and optional 'deadline' fields, and output nothing else.`, meetingTranscript, names.String())
}
