package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/meetscribe/internal/domain/entities"
)

// Parser handles parsing and validation of model responses.
// Each adapter's output schema is fixed; anything that does not match it is
// an adapter failure, never a partial success.
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// ParseSummaryResponse parses the model's summary output.
// Expected schema: {"summary": string} with a non-empty summary.
func (p *Parser) ParseSummaryResponse(content string) (string, error) {
	content = extractJSON(content)
	if content == "" {
		return "", fmt.Errorf("empty model response")
	}

	var result summaryResponse
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return "", fmt.Errorf("failed to parse summary response: %w", err)
	}
	if strings.TrimSpace(result.Summary) == "" {
		return "", fmt.Errorf("missing summary in response")
	}
	return result.Summary, nil
}

type suggestionResponse struct {
	Item     string `json:"item"`
	Assignee string `json:"assignee"`
	Deadline string `json:"deadline,omitempty"`
}

// ParseSuggestionsResponse parses the model's action item suggestions.
// Expected schema: a JSON array of {item, assignee, deadline?}; item is
// required on every entry.
func (p *Parser) ParseSuggestionsResponse(content string) ([]entities.ActionItemSuggestion, error) {
	content = extractJSON(content)
	if content == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var raw []suggestionResponse
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions response: %w", err)
	}

	suggestions := make([]entities.ActionItemSuggestion, 0, len(raw))
	for i, r := range raw {
		if strings.TrimSpace(r.Item) == "" {
			return nil, fmt.Errorf("missing item in suggestion %d", i)
		}
		suggestions = append(suggestions, entities.ActionItemSuggestion{
			Item:     r.Item,
			Assignee: r.Assignee,
			Deadline: r.Deadline,
		})
	}
	return suggestions, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
